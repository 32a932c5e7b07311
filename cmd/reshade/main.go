package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idursun/reshade/internal/config"
	"github.com/idursun/reshade/internal/layout"
	"github.com/idursun/reshade/internal/ui/preview"
	"github.com/muesli/termenv"
)

func main() {
	configPath := flag.String("config", "", "layout document (TOML); the built-in demo when empty")
	dump := flag.Bool("dump", false, "print the computed layout and exit")
	width := flag.Int("width", 80, "available width for -dump")
	height := flag.Int("height", 24, "available height for -dump")
	x := flag.Float64("x", 0, "query point x for -dump")
	y := flag.Float64("y", 0, "query point y for -dump")
	flag.Parse()

	if err := run(*configPath, *dump, layout.V(float64(*width), float64(*height)), queryPoint(*x, *y)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// queryPoint returns nil unless -x or -y was given.
func queryPoint(x, y float64) *layout.Vec {
	var p *layout.Vec
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "x" || f.Name == "y" {
			v := layout.V(x, y)
			p = &v
		}
	})
	return p
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func run(configPath string, dump bool, size layout.Vec, point *layout.Vec) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if dump {
		return runDump(os.Stdout, cfg, size, point)
	}

	if path := os.Getenv("RESHADE_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "reshade")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	lipgloss.SetColorProfile(termenv.EnvColorProfile())

	ui, err := preview.NewUI(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(preview.New(ui), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running preview: %w", err)
	}
	return nil
}
