package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }

func validMinimalSchema() *ImportSchema {
	return &ImportSchema{
		Goals: []GoalImport{
			{Title: "Read", TargetMinutesPerDay: 30, StartDate: "2024-01-01"},
		},
	}
}

func errorStrings(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

func TestValidateImportSchema_ValidMinimal(t *testing.T) {
	assert.Empty(t, ValidateImportSchema(validMinimalSchema()))
}

func TestValidateImportSchema_ValidFull(t *testing.T) {
	schema := &ImportSchema{
		Goals: []GoalImport{
			{
				Ref:                 "read",
				Title:               "Read",
				Description:         "fiction and non-fiction",
				TargetMinutesPerDay: 30,
				StartDate:           "2024-01-01",
				EndDate:             ptrStr("2024-12-31"),
				Tags:                []string{"books"},
				Progress: []ProgressImport{
					{Date: "2024-10-01", Minutes: 30},
					{Date: "2024-10-02", Minutes: 0, Note: "rest day"},
				},
			},
			{Ref: "run", Title: "Run", TargetMinutesPerDay: 20, StartDate: "2024-03-01"},
		},
	}
	assert.Empty(t, ValidateImportSchema(schema))
}

func TestValidateImportSchema_NoGoals(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one goal")
}

func TestValidateImportSchema_CollectsAllErrors(t *testing.T) {
	schema := &ImportSchema{
		Goals: []GoalImport{
			{
				Ref:                 "bad",
				TargetMinutesPerDay: 0,
				StartDate:           "2024-13-01",
				Tags:                []string{" "},
				Progress: []ProgressImport{
					{Date: "", Minutes: -1},
					{Date: "yesterday", Minutes: 2000},
				},
			},
		},
	}

	errs := ValidateImportSchema(schema)
	all := errorStrings(errs)
	assert.Len(t, errs, 8, all)
	assert.Contains(t, all, "goals[0] (bad).title is required")
	assert.Contains(t, all, "target_minutes_per_day must be positive")
	assert.Contains(t, all, `start_date: invalid date "2024-13-01"`)
	assert.Contains(t, all, "tags[0] must not be empty")
	assert.Contains(t, all, "progress[0].date is required")
	assert.Contains(t, all, "progress[0].minutes must be non-negative")
	assert.Contains(t, all, `progress[1].date: invalid date "yesterday"`)
	assert.Contains(t, all, "progress[1].minutes must be at most 1440")
}

func TestValidateImportSchema_EndBeforeStart(t *testing.T) {
	schema := validMinimalSchema()
	schema.Goals[0].EndDate = ptrStr("2023-12-31")

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "must not be before start_date")
}

func TestValidateImportSchema_MissingStartDate(t *testing.T) {
	schema := validMinimalSchema()
	schema.Goals[0].StartDate = ""
	schema.Goals[0].EndDate = ptrStr("2024-02-01")

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "goals[0].start_date is required")
}

func TestValidateImportSchema_DuplicateRef(t *testing.T) {
	schema := &ImportSchema{
		Goals: []GoalImport{
			{Ref: "g", Title: "A", TargetMinutesPerDay: 10, StartDate: "2024-01-01"},
			{Ref: "g", Title: "B", TargetMinutesPerDay: 10, StartDate: "2024-01-01"},
		},
	}

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `duplicate ref "g"`)
}

func TestValidateImportSchema_TargetTooLarge(t *testing.T) {
	schema := validMinimalSchema()
	schema.Goals[0].TargetMinutesPerDay = 1441

	errs := ValidateImportSchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "must be at most 1440")
}
