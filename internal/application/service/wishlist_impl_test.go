package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
	appErrors "github.com/Rak-Code/swiftcart-backend/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWishlistRepo struct {
	mu    sync.Mutex
	items map[string]*entity.WishlistItem
	seq   int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[string]*entity.WishlistItem)}
}

func (f *fakeWishlistRepo) ExistsByUserIDAndProductID(_ context.Context, userID, productID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWishlistRepo) FindByUserID(_ context.Context, userID string) ([]*entity.WishlistItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.WishlistItem
	for _, item := range f.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeWishlistRepo) Create(_ context.Context, item *entity.WishlistItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID == "" {
		f.seq++
		item.ID = fmt.Sprintf("wish-%d", f.seq)
	}
	f.items[item.ID] = item
	return item.ID, nil
}

func (f *fakeWishlistRepo) DeleteByUserIDAndProductID(_ context.Context, userID, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			delete(f.items, id)
		}
	}
	return nil
}

func (f *fakeWishlistRepo) DeleteByUserID(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, item := range f.items {
		if item.UserID == userID {
			delete(f.items, id)
		}
	}
	return nil
}

func newTestWishlistService(wishlistRepo *fakeWishlistRepo, reminderRepo *fakeReminderRepo) WishlistService {
	reminderSvc, _ := newTestReminderService(reminderRepo, newFakeUserRepo(), newFakeProductRepo(), &fakeNotifier{})
	return NewWishlistService(wishlistRepo, reminderSvc, testCfg, nopLogger{})
}

func TestAddToWishlistSchedulesReminder(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	svc := newTestWishlistService(newFakeWishlistRepo(), reminderRepo)

	item, err := svc.AddToWishlist(context.Background(), "u1", "p1")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 1, reminderRepo.pendingCount("u1", "p1", constant.ReminderTypeWishlist))
}

func TestAddToWishlistDuplicate(t *testing.T) {
	reminderRepo := newFakeReminderRepo()
	svc := newTestWishlistService(newFakeWishlistRepo(), reminderRepo)
	ctx := context.Background()

	_, err := svc.AddToWishlist(ctx, "u1", "p1")
	require.NoError(t, err)

	_, err = svc.AddToWishlist(ctx, "u1", "p1")
	assert.ErrorIs(t, err, appErrors.ErrDuplicateWishlistItem)
	assert.Equal(t, 1, reminderRepo.count())
}

func TestRemoveFromWishlist(t *testing.T) {
	svc := newTestWishlistService(newFakeWishlistRepo(), newFakeReminderRepo())
	ctx := context.Background()

	_, err := svc.AddToWishlist(ctx, "u1", "p1")
	require.NoError(t, err)
	require.NoError(t, svc.RemoveFromWishlist(ctx, "u1", "p1"))

	exists, err := svc.IsInWishlist(ctx, "u1", "p1")
	require.NoError(t, err)
	assert.False(t, exists)
}
