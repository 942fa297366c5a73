package locationcsv

import (
	"context"
	"log/slog"

	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/pkg/errors"
)

// Result counts what an import did.
type Result struct {
	Inserted int
	Skipped  int // Codes already present in the tree.
	Failed   int
}

// Importer inserts CSV records through the location usecase so the same hierarchy rules apply.
type Importer struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewImporter creates an importer.
func NewImporter(locationUC usecase.LocationUsecase, logger *slog.Logger) *Importer {
	return &Importer{locationUC: locationUC, logger: logger}
}

// Import orders records parents first and inserts them one by one. Duplicate codes are skipped;
// other failures are logged and counted, and the import continues unless ctx is cancelled.
func (im *Importer) Import(ctx context.Context, records []Record) (Result, error) {
	Order(records)

	var result Result
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}

		_, err := im.locationUC.InsertLocation(ctx, usecase.InsertLocationInput{
			ParentCode: record.ParentCode,
			Code:       record.Code,
			Name:       record.Name,
			Type:       record.Type,
		})
		switch {
		case err == nil:
			result.Inserted++
		case errors.Is(err, domainerrors.ErrDuplicateCode):
			result.Skipped++
		default:
			result.Failed++
			im.logger.Warn("Location row rejected",
				slog.Int("line", record.Line),
				slog.String("code", record.Code),
				slog.Any("error", err),
			)
		}
	}

	return result, nil
}
