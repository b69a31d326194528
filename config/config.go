package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUsage marks a command-line error whose message and usage text have
// already been written to stderr by the flag package
var ErrUsage = errors.New("usage error")

// Config holds the options for one run. Immutable after Parse
type Config struct {
	TwentyFourHour bool
	ShowSeconds    bool
	Color          tcell.Color
	HasColor       bool
}

// Interval returns the redraw tick period: half a second when seconds are
// shown so the display never lags a visible unit, a full second otherwise
func (c Config) Interval() time.Duration {
	if c.ShowSeconds {
		return 500 * time.Millisecond
	}
	return time.Second
}

// Parse reads the command line. It returns flag.ErrHelp when help was
// requested, ErrUsage for unknown flags, and a plain error for a
// malformed colour value
func Parse(args []string) (Config, error) {
	var cfg Config
	var colorArg string

	fs := flag.NewFlagSet("segclock", flag.ContinueOnError)
	fs.BoolVar(&cfg.TwentyFourHour, "24", false, "display the time in 24-hour format")
	fs.BoolVar(&cfg.ShowSeconds, "seconds", false, "display seconds")
	fs.StringVar(&colorArg, "c", "", "foreground `colour`: #RRGGBB or a standard colour name")
	fs.StringVar(&colorArg, "color", "", "alias for -c")
	fs.StringVar(&colorArg, "colour", "", "alias for -c")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, err
		}
		return Config{}, ErrUsage
	}

	if colorArg != "" {
		color, err := ParseColor(colorArg)
		if err != nil {
			return Config{}, err
		}
		cfg.Color = color
		cfg.HasColor = true
	}
	return cfg, nil
}

// namedColors are the eight standard ANSI palette colours accepted by name
var namedColors = map[string]tcell.Color{
	"black":   tcell.PaletteColor(0),
	"red":     tcell.PaletteColor(1),
	"green":   tcell.PaletteColor(2),
	"yellow":  tcell.PaletteColor(3),
	"blue":    tcell.PaletteColor(4),
	"magenta": tcell.PaletteColor(5),
	"cyan":    tcell.PaletteColor(6),
	"white":   tcell.PaletteColor(7),
}

// ParseColor accepts "#RRGGBB" hex or one of the eight standard colour
// names (black, red, green, yellow, blue, magenta, cyan, white)
func ParseColor(s string) (tcell.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 7 && strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown colour %q", s)
}
