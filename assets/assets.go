// Package assets embeds the data files the game ships with.
package assets

import "embed"

//go:embed data/*.csv
var FS embed.FS
