package data

import (
	resource "github.com/quasilyte/ebitengine-resource"
)

// Resource IDs
const (
	_ resource.RawID = iota
	RawEnemiesCSV
	RawSquadsCSV
	RawStagesCSV
)
