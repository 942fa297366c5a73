package locationcsv

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	mockUsecase "bookstore/internal/mocks/usecase"
	"bookstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestImporter_Import(t *testing.T) {
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	importer := NewImporter(locationUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	records := []Record{
		{Line: 2, Code: "0102", Name: "Nyarugenge", Type: entity.LocationDistrict, ParentCode: "01"},
		{Line: 3, Code: "01", Name: "Kigali City", Type: entity.LocationProvince},
		{Line: 4, Code: "0103", Name: "Gasabo", Type: entity.LocationDistrict, ParentCode: "01"},
	}

	var order []string
	locationUC.EXPECT().
		InsertLocation(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, input usecase.InsertLocationInput) (*entity.Location, error) {
			order = append(order, input.Code)
			switch input.Code {
			case "01":
				return nil, domainerrors.ErrDuplicateCode
			case "0103":
				return nil, domainerrors.ErrInvalidHierarchy
			default:
				return &entity.Location{Code: input.Code, Type: input.Type}, nil
			}
		}).
		Times(3)

	result, err := importer.Import(ctx, records)

	require.NoError(t, err)
	assert.Equal(t, []string{"01", "0102", "0103"}, order)
	assert.Equal(t, Result{Inserted: 1, Skipped: 1, Failed: 1}, result)
}

func TestImporter_Import_Cancelled(t *testing.T) {
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	importer := NewImporter(locationUC, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := importer.Import(ctx, []Record{{Code: "01", Name: "Kigali City", Type: entity.LocationProvince}})

	assert.ErrorIs(t, err, context.Canceled)
}
