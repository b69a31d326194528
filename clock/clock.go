package clock

import (
	"fmt"
	"time"
)

// Layout selects one of the four fixed time formats
type Layout uint8

const (
	TwelveHour Layout = iota // h:mm AM/PM
	TwelveHourSeconds        // h:mm:ss AM/PM
	TwentyFourHour           // HH:mm
	TwentyFourHourSeconds    // HH:mm:ss
)

// layouts holds the Go reference layout for each variant
var layouts = map[Layout]string{
	TwelveHour:            "3:04 PM",
	TwelveHourSeconds:     "3:04:05 PM",
	TwentyFourHour:        "15:04",
	TwentyFourHourSeconds: "15:04:05",
}

// LayoutFor returns the layout matching the two configuration switches
func LayoutFor(twentyFourHour, showSeconds bool) Layout {
	switch {
	case twentyFourHour && showSeconds:
		return TwentyFourHourSeconds
	case twentyFourHour:
		return TwentyFourHour
	case showSeconds:
		return TwelveHourSeconds
	default:
		return TwelveHour
	}
}

// Format renders t according to the layout
func (l Layout) Format(t time.Time) (string, error) {
	ref, ok := layouts[l]
	if !ok {
		return "", fmt.Errorf("unknown time layout %d", l)
	}
	return t.Format(ref), nil
}

// Source produces formatted readings of the local wall clock. The now
// function is replaceable in tests and defaults to time.Now
type Source struct {
	layout Layout
	now    func() time.Time
}

// NewSource creates a source formatting per the given layout
func NewSource(layout Layout) *Source {
	return &Source{
		layout: layout,
		now:    time.Now,
	}
}

// Render formats the current local time. Called fresh on every redraw;
// the result is never cached across frames
func (s *Source) Render() (string, error) {
	return s.layout.Format(s.now())
}
