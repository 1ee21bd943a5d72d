package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Rak-Code/swiftcart-backend/internal/domain/constant"
	"github.com/Rak-Code/swiftcart-backend/internal/domain/entity"
)

// fakeReminderRepo is an in-memory ReminderScheduleRepository. It stores
// copies so that a record mutated by the service is only visible after a
// successful Update, like a real store.
type fakeReminderRepo struct {
	mu      sync.Mutex
	records map[string]*entity.ReminderSchedule
	seq     int

	createErr error
	findErr   error
	updateErr error
	deleteErr error
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{records: make(map[string]*entity.ReminderSchedule)}
}

func (f *fakeReminderRepo) Create(_ context.Context, reminder *entity.ReminderSchedule) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	if reminder.ID == "" {
		f.seq++
		reminder.ID = fmt.Sprintf("rem-%d", f.seq)
	}
	cp := *reminder
	f.records[reminder.ID] = &cp
	return reminder.ID, nil
}

func (f *fakeReminderRepo) FindPending(_ context.Context, userID, productID string, reminderType constant.ReminderType) (*entity.ReminderSchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.records {
		if r.UserID == userID && r.ProductID == productID && r.Type == reminderType && r.Status == constant.ReminderStatusPending {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReminderRepo) FindDue(_ context.Context, before time.Time) ([]*entity.ReminderSchedule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	var due []*entity.ReminderSchedule
	for _, r := range f.records {
		if r.Status == constant.ReminderStatusPending && !r.ScheduledAt.After(before) {
			cp := *r
			due = append(due, &cp)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ScheduledAt.Before(due[j].ScheduledAt) })
	return due, nil
}

func (f *fakeReminderRepo) Update(_ context.Context, reminder *entity.ReminderSchedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *reminder
	f.records[reminder.ID] = &cp
	return nil
}

func (f *fakeReminderRepo) DeleteByKey(_ context.Context, userID, productID string, reminderType constant.ReminderType) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for id, r := range f.records {
		if r.UserID == userID && r.ProductID == productID && r.Type == reminderType {
			delete(f.records, id)
		}
	}
	return nil
}

func (f *fakeReminderRepo) get(id string) *entity.ReminderSchedule {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.records[id]
	if !ok {
		return nil
	}
	cp := *r
	return &cp
}

func (f *fakeReminderRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func (f *fakeReminderRepo) pendingCount(userID, productID string, reminderType constant.ReminderType) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.records {
		if r.UserID == userID && r.ProductID == productID && r.Type == reminderType && r.Status == constant.ReminderStatusPending {
			n++
		}
	}
	return n
}

type fakeUserRepo struct {
	mu      sync.Mutex
	users   map[string]*entity.User
	findErr error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.users, id)
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	findErr  error
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.products[id], nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products[product.ID] = product
	return product.ID, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, id)
	return nil
}

type notifierCall struct {
	userID    string
	productID string
}

// fakeNotifier records sends and can be told to fail.
type fakeNotifier struct {
	mu            sync.Mutex
	cartCalls     []notifierCall
	wishlistCalls []notifierCall
	sendErr       error
}

func (f *fakeNotifier) SendCartReminder(_ context.Context, user *entity.User, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.cartCalls = append(f.cartCalls, notifierCall{userID: user.ID, productID: product.ID})
	return nil
}

func (f *fakeNotifier) SendWishlistReminder(_ context.Context, user *entity.User, product *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.wishlistCalls = append(f.wishlistCalls, notifierCall{userID: user.ID, productID: product.ID})
	return nil
}

func (f *fakeNotifier) calls() (cart, wishlist int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cartCalls), len(f.wishlistCalls)
}

// nopLogger keeps test output quiet.
type nopLogger struct{}

func (nopLogger) Error(string, error) {}
func (nopLogger) Warn(string)         {}
func (nopLogger) Info(string)         {}
func (nopLogger) Debug(string)        {}

// testClock is a controllable clock for the scheduler's now func.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
