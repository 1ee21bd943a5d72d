package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	appErrors "github.com/Rak-Code/swiftcart-backend/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartRepo struct {
	mu    sync.Mutex
	items map[string]*entity.CartItem
	seq   int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{items: make(map[string]*entity.CartItem)}
}

func (f *fakeCartRepo) FindByUserIDAndProductID(_ context.Context, userID, productID string) (*entity.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, nil
}

func (f *fakeCartRepo) FindByUserID(_ context.Context, userID string) ([]*entity.CartItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Create(_ context.Context, item *entity.CartItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID == "" {
		f.seq++
		item.ID = fmt.Sprintf("cart-%d", f.seq)
	}
	f.items[item.ID] = item
	return item.ID, nil
}

func (f *fakeCartRepo) Update(_ context.Context, item *entity.CartItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = item
	return nil
}

func (f *fakeCartRepo) DeleteByUserIDAndProductID(_ context.Context, userID, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeCartRepo) DeleteByUserID(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.items {
		if item.UserID == userID {
			delete(f.items, id)
		}
	}
	return nil
}

func newTestCartService(cartRepo *fakeCartRepo, reminderRepo *fakeReminderRepo) CartService {
	reminderSvc, _ := newTestReminderService(reminderRepo, newFakeUserRepo(), newFakeProductRepo(), &fakeNotifier{})
	return NewCartService(cartRepo, reminderSvc, testCfg, nopLogger{})
}

func TestAddToCartSchedulesReminder(t *testing.T) {
	cartRepo := newFakeCartRepo()
	reminderRepo := newFakeReminderRepo()
	svc := newTestCartService(cartRepo, reminderRepo)

	item, err := svc.AddToCart(context.Background(), "u1", "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 1, reminderRepo.pendingCount("u1", "p1", constant.ReminderTypeCart))
}

func TestAddToCartExistingItemIncrementsWithoutNewReminder(t *testing.T) {
	cartRepo := newFakeCartRepo()
	reminderRepo := newFakeReminderRepo()
	svc := newTestCartService(cartRepo, reminderRepo)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	item, err := svc.AddToCart(ctx, "u1", "p1", 3)
	require.NoError(t, err)

	assert.Equal(t, 4, item.Quantity)
	// Dedup holds even though AddToCart attempts to schedule only for new items.
	assert.Equal(t, 1, reminderRepo.pendingCount("u1", "p1", constant.ReminderTypeCart))
}

func TestAddToCartSucceedsWhenSchedulingFails(t *testing.T) {
	cartRepo := newFakeCartRepo()
	reminderRepo := newFakeReminderRepo()
	reminderRepo.createErr = errors.New("reminder store down")
	svc := newTestCartService(cartRepo, reminderRepo)

	// The cart mutation must succeed even when the reminder cannot be stored.
	item, err := svc.AddToCart(context.Background(), "u1", "p1", 1)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 0, reminderRepo.count())
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	svc := newTestCartService(newFakeCartRepo(), newFakeReminderRepo())

	_, err := svc.AddToCart(context.Background(), "u1", "p1", 0)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestUpdateQuantityMissingItem(t *testing.T) {
	svc := newTestCartService(newFakeCartRepo(), newFakeReminderRepo())

	_, err := svc.UpdateQuantity(context.Background(), "u1", "p1", 2)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestRemoveFromCartLeavesReminder(t *testing.T) {
	cartRepo := newFakeCartRepo()
	reminderRepo := newFakeReminderRepo()
	svc := newTestCartService(cartRepo, reminderRepo)
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, "u1", "p1", 1)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveFromCart(ctx, "u1", "p1"))

	items, err := svc.GetUserCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
	// Cancellation is caller-driven, not a side effect of removal.
	assert.Equal(t, 1, reminderRepo.pendingCount("u1", "p1", constant.ReminderTypeCart))
}
