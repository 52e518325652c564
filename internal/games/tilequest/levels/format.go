package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tile-quest/internal/games/tilequest/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Countdown float64           `yaml:"countdown,omitempty"`
	Rows      []string          `yaml:"rows"` // One letter per tile: R G B Y P O
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s has no rows", yl.ID)
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Height:    len(yl.Rows),
		Countdown: yl.Countdown,
		Metadata:  yl.Metadata,
		Rows:      make([][]core.Color, len(yl.Rows)),
	}
	if level.Name == "" {
		level.Name = yl.ID
	}

	for y, line := range yl.Rows {
		row, err := parseRow(line)
		if err != nil {
			return Level{}, fmt.Errorf("level %s row %d: %w", yl.ID, y, err)
		}
		if y == 0 {
			level.Width = len(row)
		}
		if len(row) != level.Width {
			return Level{}, fmt.Errorf("level %s row %d: %d tiles, expected %d", yl.ID, y, len(row), level.Width)
		}
		level.Rows[y] = row
	}
	return level, nil
}

// parseRow accepts "RGB", "R G B" or "red green blue".
func parseRow(line string) ([]core.Color, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 1 {
		tokens = strings.Split(tokens[0], "")
	}

	row := make([]core.Color, 0, len(tokens))
	for _, tok := range tokens {
		c, ok := core.ParseColor(tok)
		if !ok {
			return nil, fmt.Errorf("unknown color %q", tok)
		}
		row = append(row, c)
	}
	return row, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
