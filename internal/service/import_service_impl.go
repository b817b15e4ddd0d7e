package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/goaltrack/internal/app"
	"github.com/alexanderramin/goaltrack/internal/db"
	"github.com/alexanderramin/goaltrack/internal/domain"
	"github.com/alexanderramin/goaltrack/internal/importer"
	"github.com/alexanderramin/goaltrack/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) ImportFile(ctx context.Context, userID, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, userID, schema)
}

// ImportSchema writes every goal and entry in one transaction; a failure
// part-way leaves nothing behind.
func (s *importService) ImportSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"goals": len(schema.Goals)}
	defer func() {
		observe(ctx, s.observer, "goals.import", startedAt, fields, err)
	}()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema, userID)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txProgress := repository.NewSQLiteProgressRepo(tx)

		for _, g := range generated.Goals {
			if err := txGoals.Create(ctx, g); err != nil {
				return fmt.Errorf("creating goal %q: %w", g.Title, err)
			}
		}
		for _, p := range generated.Progress {
			if err := txProgress.Create(ctx, p); err != nil {
				return fmt.Errorf("creating progress entry for %s: %w", p.Date.Format(domain.DateLayout), err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["progress"] = len(generated.Progress)
	return &app.ImportResult{
		Goals:         generated.Goals,
		ProgressCount: len(generated.Progress),
	}, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
