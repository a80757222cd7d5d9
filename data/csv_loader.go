package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	"shooter-ebiten/core"
)

// readRecords skips the header and hands each well-formed row to fn.
// Rows with fewer than minColumns cells are logged and skipped.
func readRecords(r io.Reader, name string, minColumns int, log zerolog.Logger, fn func(record []string)) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	if _, err := reader.Read(); err != nil {
		return fmt.Errorf("failed to read header from %s: %w", name, err)
	}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			log.Warn().Err(err).Str("file", name).Msg("error reading record")
			continue
		}
		if len(record) < minColumns {
			log.Warn().Str("file", name).Strs("record", record).Msg("skipping malformed record (not enough columns)")
			continue
		}
		fn(record)
	}
}

// ParseEnemies reads enemies.csv:
// id,killTime,sizeInArea,moveSpeedInArea,health,texture,color,pattern,shotSpeed,shotInterval,ways,shotDamage
func ParseEnemies(r io.Reader, log zerolog.Logger) ([]core.EnemyData, error) {
	var enemies []core.EnemyData
	err := readRecords(r, "enemies.csv", 12, log, func(record []string) {
		enemies = append(enemies, core.EnemyData{
			ID:              record[0],
			KillTime:        parseFloat(record[1], 1),
			SizeInArea:      parseFloat(record[2], 0.05),
			MoveSpeedInArea: parseFloat(record[3], 0.2),
			Health:          max(1, parseFloat(record[4], 1)),
			Texture:         core.TextureMeta{Name: record[5], Color: record[6]},
			Shot: core.ShotData{
				Pattern:        core.PatternKind(record[7]),
				Speed:          parseFloat(record[8], 0.4),
				IntervalFrames: parseInt(record[9], 30),
				Ways:           parseInt(record[10], 1),
				Damage:         parseFloat(record[11], 1),
			},
		})
	})
	return enemies, err
}

// ParseSquads reads squads.csv:
// id,enemyId,moveType,overTime,killTime,activateTime,activateInOtherSideOfPlayer
func ParseSquads(r io.Reader, log zerolog.Logger) ([]core.SquadData, error) {
	var squads []core.SquadData
	err := readRecords(r, "squads.csv", 7, log, func(record []string) {
		squads = append(squads, core.SquadData{
			ID:                          record[0],
			EnemyID:                     record[1],
			MoveType:                    core.MoveType(record[2]),
			OverTime:                    parseFloat(record[3], 0),
			KillTime:                    parseFloat(record[4], 1),
			ActivateTime:                parseFloat(record[5], 1),
			ActivateInOtherSideOfPlayer: parseBool(record[6]),
		})
	})
	return squads, err
}

// ParseStages reads stages.csv, one entry per row: stageId,entry,candidates
// candidates is a "|" separated list of squad ids. Entries are ordered by their index.
func ParseStages(r io.Reader, log zerolog.Logger) ([]core.StageData, error) {
	type row struct {
		index      int
		candidates []string
	}
	rows := make(map[string][]row)
	var order []string
	err := readRecords(r, "stages.csv", 3, log, func(record []string) {
		id := record[0]
		if _, ok := rows[id]; !ok {
			order = append(order, id)
		}
		rows[id] = append(rows[id], row{index: parseInt(record[1], len(rows[id])), candidates: splitList(record[2])})
	})
	if err != nil {
		return nil, err
	}

	stages := make([]core.StageData, 0, len(order))
	for _, id := range order {
		entries := rows[id]
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].index < entries[j].index })
		st := core.StageData{ID: id}
		for _, e := range entries {
			st.Entries = append(st.Entries, core.StageEntry{Candidates: e.candidates})
		}
		stages = append(stages, st)
	}
	return stages, nil
}
