package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure of a goal import file.
type ImportSchema struct {
	Goals []GoalImport `json:"goals"`
}

// GoalImport is one goal plus the progress already logged against it.
// Ref only labels the goal in validation messages.
type GoalImport struct {
	Ref                 string           `json:"ref,omitempty"`
	Title               string           `json:"title"`
	Description         string           `json:"description,omitempty"`
	TargetMinutesPerDay int              `json:"target_minutes_per_day"`
	StartDate           string           `json:"start_date"`
	EndDate             *string          `json:"end_date,omitempty"`
	Tags                []string         `json:"tags,omitempty"`
	Progress            []ProgressImport `json:"progress,omitempty"`
}

type ProgressImport struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
	Note    string `json:"note,omitempty"`
}

// LoadImportSchema reads and parses a goal import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

func ParseImportSchema(data []byte) (*ImportSchema, error) {
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
