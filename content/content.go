// Package content embeds the stock EcoHero game pack.
package content

import (
	"embed"
	"fmt"

	"github.com/nathoo/ecohero/engine/state"
	"github.com/nathoo/ecohero/loader"
)

// FS holds the embedded Lua sources.
//
//go:embed eco/*.lua
var FS embed.FS

// Dir is the pack directory inside FS.
const Dir = "eco"

// Defaults loads the embedded pack.
func Defaults() (*state.Defs, error) {
	defs, err := loader.LoadFS(FS, Dir)
	if err != nil {
		return nil, fmt.Errorf("loading embedded content: %w", err)
	}
	return defs, nil
}

// Load loads content from dir, or the embedded pack when dir is empty.
func Load(dir string) (*state.Defs, error) {
	if dir == "" {
		return Defaults()
	}
	return loader.Load(dir)
}
