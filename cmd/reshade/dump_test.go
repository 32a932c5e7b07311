package main

import (
	"strings"
	"testing"

	"github.com/idursun/reshade/internal/config"
	"github.com/idursun/reshade/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDump(t *testing.T) {
	var out strings.Builder
	require.NoError(t, runDump(&out, config.Default(), layout.V(80, 24), nil))

	assert.Contains(t, out.String(), "Column[x=100% y=100%")
	assert.Contains(t, out.String(), "Column[x=0 y=0 w=80 h=24]")
	assert.Contains(t, out.String(), "Leaf[x=20 y=3 w=60 h=20]")
	assert.NotContains(t, out.String(), "reshade at")
}

func TestRunDump_Point(t *testing.T) {
	var out strings.Builder
	p := layout.V(10, 10)
	require.NoError(t, runDump(&out, config.Default(), layout.V(80, 24), &p))

	assert.Contains(t, out.String(), "reshade at (10, 10):\n"+
		"  body [Rect(10, 10, 1, 1) Rect(0, 3, 20, 20)]\n"+
		"  sidebar full\n")
}

func TestRunDump_UnnamedNodes(t *testing.T) {
	cfg, err := config.Decode("[layout]\nkind = \"leaf\"\nsize = [\"10 px\", \"10 px\"]")
	require.NoError(t, err)

	var out strings.Builder
	p := layout.V(1, 1)
	require.NoError(t, runDump(&out, cfg, layout.V(20, 20), &p))
	assert.Contains(t, out.String(), "  #0 full\n")
}

func TestRunDump_BuildError(t *testing.T) {
	cfg, err := config.Decode("[layout]\nkind = \"grid\"")
	require.NoError(t, err)
	assert.Error(t, runDump(&strings.Builder{}, cfg, layout.V(20, 20), nil))
}

func TestLoadConfig(t *testing.T) {
	c, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "window", c.Layout.Name)

	_, err = loadConfig("does-not-exist.toml")
	assert.Error(t, err)
}
