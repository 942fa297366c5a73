package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	bookRepo repository.BookRepository
	now      func() time.Time
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	BookRepo repository.BookRepository
	Logger   *slog.Logger
}

// NewCartService creates a new cart service instance.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		bookRepo: params.BookRepo,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem merges quantity copies of a book into the cart. The merge happens in the store.
func (srv *cartService) AddItem(ctx context.Context, userID, bookID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	book, err := srv.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find book")
	}

	now := srv.now()
	item := &entity.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		Quantity:  quantity,
		AddedAt:   now,
		UpdatedAt: now,
	}
	if err := srv.cartRepo.AddItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}
	if item.Book == nil {
		item.Book = book
	}

	if item.Quantity > book.StockQuantity {
		srv.log(ctx).Debug("Cart quantity exceeds stock",
			slog.String("bookID", bookID.String()),
			slog.Int("quantity", item.Quantity),
			slog.Int("stock", book.StockQuantity),
		)
	}

	return item, nil
}

func (srv *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return items, nil
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.CartItem, error) {
	if quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
	}

	item, err := srv.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}
	item.Quantity = quantity
	item.UpdatedAt = srv.now()

	return item, nil
}

func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	if _, err := srv.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}

	if err := srv.cartRepo.RemoveItem(ctx, itemID); err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

func (srv *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// Summary totals the cart at current book prices.
func (srv *cartService) Summary(ctx context.Context, userID uuid.UUID) (*entity.CartSummary, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	return entity.SummarizeCart(userID, items), nil
}

// ownedItem loads a cart item and hides items of other users behind not found.
func (srv *cartService) ownedItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	item, err := srv.cartRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart item")
	}
	if item.UserID != userID {
		return nil, domainerrors.ErrCartItemNotFound
	}

	return item, nil
}
