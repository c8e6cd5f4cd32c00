// Package assets embeds the shipped game data.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed configs
var configFS embed.FS

// Configs returns the config tree rooted at configs/
func Configs() (fs.FS, error) {
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return sub, nil
}
