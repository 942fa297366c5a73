//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB starts a PostgreSQL container and returns a migrated connection.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("bookstore"),
		tcpostgres.WithUsername("bookstore"),
		tcpostgres.WithPassword("bookstore"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(connStr), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))

	return db
}

// seedKigali inserts K1 > K1-D1 > K1-D1-S1 > K1-D1-S1-C1 > K1-D1-S1-C1-V1 and a sibling district K1-D2.
func seedKigali(t *testing.T, repo repository.LocationRepository) map[string]*entity.Location {
	t.Helper()
	ctx := context.Background()

	nodes := map[string]*entity.Location{}
	add := func(code, name string, locationType entity.LocationType, parentCode string) {
		node := &entity.Location{Code: code, Name: name, Type: locationType}
		if parentCode != "" {
			parentID := nodes[parentCode].ID
			node.ParentID = &parentID
		}
		require.NoError(t, repo.Create(ctx, node))
		nodes[code] = node
	}

	add("K1", "Kigali City", entity.LocationProvince, "")
	add("K1-D1", "Gasabo", entity.LocationDistrict, "K1")
	add("K1-D2", "Kicukiro", entity.LocationDistrict, "K1")
	add("K1-D1-S1", "Remera", entity.LocationSector, "K1-D1")
	add("K1-D1-S1-C1", "Rukiri I", entity.LocationCell, "K1-D1-S1")
	add("K1-D1-S1-C1-V1", "Amahoro", entity.LocationVillage, "K1-D1-S1-C1")

	return nodes
}

func TestLocationRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()
	nodes := seedKigali(t, repo)

	t.Run("duplicate code is rejected by the unique index", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Location{Code: "K1", Name: "Other", Type: entity.LocationProvince})
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateCode)
	})

	t.Run("concurrent duplicate inserts yield exactly one success", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make([]error, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = repo.Create(ctx, &entity.Location{Code: "RACE", Name: "Race", Type: entity.LocationProvince})
			}(i)
		}
		wg.Wait()

		successes := 0
		for _, err := range results {
			if err == nil {
				successes++

				continue
			}
			assert.ErrorIs(t, err, domainerrors.ErrDuplicateCode)
		}
		assert.Equal(t, 1, successes)
	})

	t.Run("ancestry is fetched with one query", func(t *testing.T) {
		chain, err := repo.FindAncestry(ctx, nodes["K1-D1-S1-C1-V1"].ID)
		require.NoError(t, err)
		assert.Len(t, chain, 5)
	})

	t.Run("subtree of the province covers all descendants", func(t *testing.T) {
		ids, err := repo.FindSubtreeIDs(ctx, []uuid.UUID{nodes["K1"].ID})
		require.NoError(t, err)
		assert.Len(t, ids, 6)
	})

	t.Run("match by name or code", func(t *testing.T) {
		byName, err := repo.FindByTypeAndMatch(ctx, entity.LocationProvince, "Kigali City", entity.MatchByAny)
		require.NoError(t, err)
		require.Len(t, byName, 1)

		byCode, err := repo.FindByTypeAndMatch(ctx, entity.LocationProvince, "K1", entity.MatchByCode)
		require.NoError(t, err)
		require.Len(t, byCode, 1)
		assert.Equal(t, byName[0].ID, byCode[0].ID)

		none, err := repo.FindByTypeAndMatch(ctx, entity.LocationProvince, "kigali city", entity.MatchByName)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("delete of a node with children is refused by the foreign key", func(t *testing.T) {
		err := repo.Delete(ctx, nodes["K1-D1"].ID)
		assert.ErrorIs(t, err, domainerrors.ErrHasChildren)
	})

	t.Run("childless delete then lookup is not found", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, nodes["K1-D2"].ID))
		_, err := repo.FindByID(ctx, nodes["K1-D2"].ID)
		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	})
}

func TestUserAndCommerceRepositories_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	nodes := seedKigali(t, NewLocationRepository(db))

	users := NewUserRepository(db)
	villageID := nodes["K1-D1-S1-C1-V1"].ID
	alice := &entity.User{FullName: "Alice", Email: "alice@example.com", PasswordHash: "hash", Role: entity.RoleCustomer, LocationID: &villageID}
	require.NoError(t, users.Create(ctx, alice))

	err := users.Create(ctx, &entity.User{FullName: "Copy", Email: "alice@example.com", PasswordHash: "hash", Role: entity.RoleCustomer})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	found, err := users.FindByLocationIDs(ctx, []uuid.UUID{villageID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.NotNil(t, found[0].Location)
	assert.Equal(t, "K1-D1-S1-C1-V1", found[0].Location.Code)

	category := &entity.Category{Name: "Fiction"}
	require.NoError(t, NewCategoryRepository(db).Create(ctx, category))

	books := NewBookRepository(db)
	book := &entity.Book{Title: "Things Fall Apart", Author: "Chinua Achebe", CategoryID: category.ID, Price: decimal.RequireFromString("12.50"), StockQuantity: 3}
	require.NoError(t, books.Create(ctx, book))

	t.Run("cart add merges quantities", func(t *testing.T) {
		cart := NewCartRepository(db)
		first := &entity.CartItem{UserID: alice.ID, BookID: book.ID, Quantity: 1}
		require.NoError(t, cart.AddItem(ctx, first))
		second := &entity.CartItem{UserID: alice.ID, BookID: book.ID, Quantity: 2}
		require.NoError(t, cart.AddItem(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 3, second.Quantity)
	})

	t.Run("stock cannot go negative", func(t *testing.T) {
		assert.ErrorIs(t, books.DecreaseStock(ctx, book.ID, 4), domainerrors.ErrInsufficientStock)
		require.NoError(t, books.DecreaseStock(ctx, book.ID, 3))
		assert.ErrorIs(t, books.DecreaseStock(ctx, book.ID, 1), domainerrors.ErrInsufficientStock)
		assert.ErrorIs(t, books.DecreaseStock(ctx, uuid.New(), 1), domainerrors.ErrBookNotFound)
	})

	t.Run("one review per user and book", func(t *testing.T) {
		reviews := NewReviewRepository(db)
		require.NoError(t, reviews.Create(ctx, &entity.Review{UserID: alice.ID, BookID: book.ID, Rating: 4}))
		err := reviews.Create(ctx, &entity.Review{UserID: alice.ID, BookID: book.ID, Rating: 5})
		assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)

		rating, err := reviews.RatingOf(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rating.Count)
		assert.InDelta(t, 4.0, rating.Average, 0.001)
	})

	t.Run("order total sums completed and delivered orders", func(t *testing.T) {
		orders := NewOrderRepository(db)
		for _, status := range []entity.OrderStatus{entity.OrderCompleted, entity.OrderDelivered, entity.OrderCancelled} {
			order := &entity.Order{
				UserID:    alice.ID,
				OrderDate: time.Now(),
				Status:    status,
				Details:   []*entity.OrderDetail{{BookID: book.ID, Quantity: 1, Price: book.Price}},
			}
			order.RecalculateTotal()
			require.NoError(t, orders.Create(ctx, order))
		}

		total, err := orders.SumTotalByUser(ctx, alice.ID, []entity.OrderStatus{entity.OrderCompleted, entity.OrderDelivered})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("25").Equal(total), "got %s", total)
	})

	t.Run("status update is refused once another writer moved the order", func(t *testing.T) {
		orders := NewOrderRepository(db)
		order := &entity.Order{
			UserID:    alice.ID,
			OrderDate: time.Now(),
			Status:    entity.OrderPending,
			Details:   []*entity.OrderDetail{{BookID: book.ID, Quantity: 1, Price: book.Price}},
		}
		order.RecalculateTotal()
		require.NoError(t, orders.Create(ctx, order))

		order.Status = entity.OrderCancelled
		require.NoError(t, orders.UpdateStatus(ctx, order, entity.OrderPending))

		order.Status = entity.OrderProcessing
		err := orders.UpdateStatus(ctx, order, entity.OrderPending)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

		stored, err := orders.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderCancelled, stored.Status)
	})

	t.Run("sales reports skip cancelled orders", func(t *testing.T) {
		orders := NewOrderRepository(db)
		spent := []entity.OrderStatus{entity.OrderCompleted, entity.OrderDelivered}

		counts, err := orders.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[entity.OrderStatus]int64{
			entity.OrderCompleted: 1,
			entity.OrderDelivered: 1,
			entity.OrderCancelled: 2,
		}, counts)

		sold, err := orders.QuantitySold(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), sold)

		top, err := orders.TopBookSales(ctx, 5)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, book.ID, top[0].BookID)
		assert.Equal(t, int64(2), top[0].QuantitySold)
		assert.True(t, decimal.RequireFromString("25").Equal(top[0].Revenue), "got %s", top[0].Revenue)

		window := entity.DateRange{From: time.Now().Add(-time.Hour), To: time.Now().Add(time.Hour)}
		revenue, err := orders.SumTotalBetween(ctx, spent, window)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("25").Equal(revenue), "got %s", revenue)

		past := entity.DateRange{From: window.From.AddDate(-1, 0, 0), To: window.From.AddDate(0, -1, 0)}
		revenue, err = orders.SumTotalBetween(ctx, spent, past)
		require.NoError(t, err)
		assert.True(t, revenue.IsZero())

		average, err := orders.AverageTotal(ctx, spent)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12.50").Equal(average), "got %s", average)

		subtree, err := NewLocationRepository(db).FindSubtreeIDs(ctx, []uuid.UUID{nodes["K1"].ID})
		require.NoError(t, err)
		_, total, err := orders.FindByUserLocations(ctx, subtree, entity.PageRequest{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)

		_, total, err = orders.FindByUserLocations(ctx, []uuid.UUID{nodes["K1-D2"].ID}, entity.PageRequest{Page: 0, Size: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("category reports whether books remain", func(t *testing.T) {
		categories := NewCategoryRepository(db)

		has, err := categories.HasBooks(ctx, category.ID)
		require.NoError(t, err)
		assert.True(t, has)

		empty := &entity.Category{Name: "Poetry"}
		require.NoError(t, categories.Create(ctx, empty))
		has, err = categories.HasBooks(ctx, empty.ID)
		require.NoError(t, err)
		assert.False(t, has)
	})
}
