package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"
	mockRepo "bookstore/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Location: &config.LocationConfig{
			PathSeparator: " / ",
		},
		Pagination: &config.PaginationConfig{
			DefaultSize: 20,
			MaxSize:     100,
		},
	}
}

// kigaliTree is a small slice of the administrative hierarchy shared by the location tests.
type kigaliTree struct {
	province, district, otherDistrict, sector, cell, village *entity.Location
}

func newNode(code, name string, locationType entity.LocationType, parent *entity.Location) *entity.Location {
	node := &entity.Location{ID: uuid.New(), Code: code, Name: name, Type: locationType}
	if parent != nil {
		parentID := parent.ID
		node.ParentID = &parentID
	}

	return node
}

func buildKigali() kigaliTree {
	province := newNode("K1", "Kigali City", entity.LocationProvince, nil)
	district := newNode("K1-D1", "Gasabo", entity.LocationDistrict, province)
	otherDistrict := newNode("K1-D2", "Kicukiro", entity.LocationDistrict, province)
	sector := newNode("K1-D1-S1", "Remera", entity.LocationSector, district)
	cell := newNode("K1-D1-S1-C1", "Rukiri I", entity.LocationCell, sector)
	village := newNode("K1-D1-S1-C1-V1", "Amahoro", entity.LocationVillage, cell)

	return kigaliTree{province, district, otherDistrict, sector, cell, village}
}

func (k kigaliTree) all() []*entity.Location {
	return []*entity.Location{k.province, k.district, k.otherDistrict, k.sector, k.cell, k.village}
}

// txFixture routes TransactionManager.Execute into a mocked RepositoryFactory.
type txFixture struct {
	factory *mockRepo.MockRepositoryFactory
	books   *mockRepo.MockBookRepository
	carts   *mockRepo.MockCartRepository
	orders  *mockRepo.MockOrderRepository
	pays    *mockRepo.MockPaymentRepository
}

func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager) *txFixture {
	t.Helper()

	tx := &txFixture{
		factory: mockRepo.NewMockRepositoryFactory(t),
		books:   mockRepo.NewMockBookRepository(t),
		carts:   mockRepo.NewMockCartRepository(t),
		orders:  mockRepo.NewMockOrderRepository(t),
		pays:    mockRepo.NewMockPaymentRepository(t),
	}
	tx.factory.EXPECT().NewBookRepository().Return(tx.books).Maybe()
	tx.factory.EXPECT().NewCartRepository().Return(tx.carts).Maybe()
	tx.factory.EXPECT().NewOrderRepository().Return(tx.orders).Maybe()
	tx.factory.EXPECT().NewPaymentRepository().Return(tx.pays).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(tx.factory)
		}).
		Once()

	return tx
}
