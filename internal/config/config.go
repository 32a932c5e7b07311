package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/idursun/reshade/internal/layout"
	"github.com/idursun/reshade/internal/shade"
)

// Config is the top-level document read from a TOML file.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Reshade  Reshade  `toml:"reshade"`
	Layout   NodeSpec `toml:"layout"`
}

// Viewport fixes the viewport size. Zero values mean "use the host's size".
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Reshade struct {
	CoalesceRatio float64 `toml:"coalesce_ratio"`
}

// NodeSpec declares one layout node and, for rows and columns, its children.
type NodeSpec struct {
	Kind     string     `toml:"kind"`
	Name     string     `toml:"name"`
	Size     [2]string  `toml:"size"`
	Min      []float64  `toml:"min"`
	Justify  string     `toml:"justify"`
	Align    string     `toml:"align"`
	Drawable *bool      `toml:"drawable"`
	Partial  bool       `toml:"partial"`
	Children []NodeSpec `toml:"children"`
}

// NodeMeta carries the per-node settings that are not layout geometry.
type NodeMeta struct {
	Name     string
	Drawable bool
	Partial  bool
}

const defaultDocument = `
[reshade]
coalesce_ratio = 0.98

[layout]
kind = "column"
name = "window"
size = ["100 %", "100 %"]
drawable = false

[[layout.children]]
kind = "leaf"
name = "header"
size = ["100 %", "3 px"]

[[layout.children]]
kind = "row"
name = "body"
size = ["100 %", "1 f"]
partial = true

[[layout.children.children]]
kind = "leaf"
name = "sidebar"
size = ["25 %", "100 %"]
min = [16, 0]

[[layout.children.children]]
kind = "leaf"
name = "content"
size = ["1 f", "100 %"]
partial = true

[[layout.children]]
kind = "leaf"
name = "status"
size = ["100 %", "1 px"]
`

// Default returns the built-in document: a header, a sidebar/content body
// and a status line.
func Default() *Config {
	c, err := Decode(defaultDocument)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads and decodes the document at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses a TOML document and fills in defaults.
func Decode(data string) (*Config, error) {
	c := &Config{Reshade: Reshade{CoalesceRatio: shade.DefaultCoalesceRatio}}
	if _, err := toml.Decode(data, c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if c.Reshade.CoalesceRatio <= 0 || c.Reshade.CoalesceRatio > 1 {
		return nil, fmt.Errorf("reshade.coalesce_ratio must be in (0, 1], got %g", c.Reshade.CoalesceRatio)
	}
	if c.Layout.Kind == "" {
		return nil, fmt.Errorf("layout: missing kind")
	}
	return c, nil
}

// ViewportOr returns the configured viewport, falling back to fallback on
// each axis left at zero.
func (c *Config) ViewportOr(fallback layout.Vec) layout.Vec {
	v := fallback
	if c.Viewport.Width > 0 {
		v.X = c.Viewport.Width
	}
	if c.Viewport.Height > 0 {
		v.Y = c.Viewport.Height
	}
	return v
}
