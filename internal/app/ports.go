package app

import (
	"context"

	"github.com/alexanderramin/goaltrack/internal/analytics"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/importer"
)

type MonthlySummaryUseCase interface {
	Monthly(ctx context.Context, req MonthlySummaryRequest) (*analytics.MonthlyProgressReport, error)
}

type YearlySummaryUseCase interface {
	Yearly(ctx context.Context, req YearlySummaryRequest) (*analytics.YearlySummary, error)
}

type RecordProgressUseCase interface {
	Record(ctx context.Context, userID string, p *domain.ProgressEntry) error
}

type ImportResult struct {
	Goals         []*domain.Goal
	ProgressCount int
}

type ImportGoalsUseCase interface {
	ImportFile(ctx context.Context, userID, filePath string) (*ImportResult, error)
	ImportSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (*ImportResult, error)
}
