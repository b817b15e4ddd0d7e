package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_BuildsGoalsAndProgress(t *testing.T) {
	schema := &ImportSchema{
		Goals: []GoalImport{
			{
				Title:               "Read",
				TargetMinutesPerDay: 30,
				StartDate:           "2024-01-01",
				EndDate:             ptrStr("2024-12-31"),
				Tags:                []string{"Books", "books ", "fiction"},
				Progress: []ProgressImport{
					{Date: "2024-10-01", Minutes: 30},
					{Date: "2024-10-03", Minutes: 25, Note: "short"},
				},
			},
			{Title: "Run", TargetMinutesPerDay: 20, StartDate: "2024-03-01"},
		},
	}
	require.Empty(t, ValidateImportSchema(schema))

	out, err := Convert(schema, "user-1")
	require.NoError(t, err)
	require.Len(t, out.Goals, 2)
	require.Len(t, out.Progress, 2)

	read := out.Goals[0]
	assert.NotEmpty(t, read.ID)
	assert.Equal(t, "user-1", read.UserID)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), read.StartDate)
	require.NotNil(t, read.EndDate)
	assert.Equal(t, []string{"books", "fiction"}, read.Tags)
	assert.NoError(t, read.Validate())

	assert.True(t, out.Goals[0].CreatedAt.Before(out.Goals[1].CreatedAt), "file order is preserved")

	assert.Equal(t, read.ID, out.Progress[0].GoalID)
	assert.True(t, out.Progress[0].TargetMet)
	assert.False(t, out.Progress[1].TargetMet)
	assert.Equal(t, "short", out.Progress[1].Note)
}

func TestLoadImportSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goals.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"goals": [
			{"ref": "read", "title": "Read", "target_minutes_per_day": 30, "start_date": "2024-01-01",
			 "progress": [{"date": "2024-10-01", "minutes": 45}]}
		]
	}`), 0o644))

	schema, err := LoadImportSchema(path)
	require.NoError(t, err)
	require.Len(t, schema.Goals, 1)
	assert.Equal(t, "read", schema.Goals[0].Ref)
	assert.Equal(t, 45, schema.Goals[0].Progress[0].Minutes)
}

func TestLoadImportSchema_Errors(t *testing.T) {
	_, err := LoadImportSchema(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = ParseImportSchema([]byte(`{"goals": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing import file")
}
