// FILE: main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/segclock/app"
	"github.com/lixenwraith/segclock/config"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, config.ErrUsage):
		// message and usage text already on stderr
		os.Exit(2)
	case err != nil:
		fmt.Fprintf(os.Stderr, "segclock: %v\n", err)
		os.Exit(2)
	}

	if err := app.New(cfg).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "segclock: %v\n", err)
		os.Exit(1)
	}
}
