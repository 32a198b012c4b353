package orders

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	orderRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/order"
	"github.com/tapcafe/TapCafe-SlotService/internal/service/orders/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeOrderRepo воспроизводит условную семантику хранилища: проверка статуса
// и переход выполняются под одной блокировкой, как в условном UPDATE
type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order

	cancelErr  error
	confirmErr error

	// readBarrier задерживает GetByID до тех пор, пока все участники
	// не прочитают заказ - так обе конкурентные отмены видят его активным
	readBarrier *sync.WaitGroup
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[int64]*domain.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	f.mu.Lock()
	o, ok := f.orders[id]
	if !ok {
		f.mu.Unlock()
		return nil, orderRepo.ErrOrderNotFound
	}
	copied := *o
	f.mu.Unlock()

	if f.readBarrier != nil {
		f.readBarrier.Done()
		f.readBarrier.Wait()
	}
	return &copied, nil
}

func (f *fakeOrderRepo) GetByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			copied := *o
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) Cancel(ctx context.Context, id int64, status domain.OrderStatus, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cancelErr != nil {
		return f.cancelErr
	}
	o, ok := f.orders[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	if !o.CanBeCancelled() {
		return orderRepo.ErrOrderNotCancellable
	}
	o.Status = status
	o.CancellationReason = &reason
	return nil
}

func (f *fakeOrderRepo) ConfirmPayment(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.confirmErr != nil {
		return f.confirmErr
	}
	o, ok := f.orders[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	if o.Status != domain.StatusPending || o.PaymentStatus != domain.PaymentPending {
		return orderRepo.ErrPaymentAlreadyProcessed
	}
	o.Status = domain.StatusConfirmed
	o.PaymentStatus = domain.PaymentPaid
	return nil
}

type fakeBooking struct {
	mu       sync.Mutex
	releases []int64
	err      error
}

func (f *fakeBooking) Release(ctx context.Context, slotID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.releases = append(f.releases, slotID)
	return nil
}

func pendingOrder(id, userID, slotID int64) *domain.Order {
	return &domain.Order{
		ID:            id,
		UserID:        userID,
		CafeID:        1,
		SlotID:        slotID,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
	svc := NewService(repo, &fakeBooking{}, nopLogger{})

	t.Run("owner sees own order", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 10, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 11, false)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("staff sees any order", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, 11, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, 10, false)
		require.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("user cancel releases slot once", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		booking := &fakeBooking{}
		svc := NewService(repo, booking, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{
			UserID:             10,
			CancellationReason: "передумал",
		})
		require.NoError(t, err)

		assert.Equal(t, []int64{100}, booking.releases)
		assert.Equal(t, domain.StatusCancelledByUser, repo.orders[1].Status)
		require.NotNil(t, repo.orders[1].CancellationReason)
		assert.Equal(t, "передумал", *repo.orders[1].CancellationReason)
	})

	t.Run("staff cancel uses staff status", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		booking := &fakeBooking{}
		svc := NewService(repo, booking, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{
			UserID:        99,
			StaffOverride: true,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByStaff, repo.orders[1].Status)
		assert.Equal(t, []int64{100}, booking.releases)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		booking := &fakeBooking{}
		svc := NewService(repo, booking, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{UserID: 11})
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, booking.releases)
	})

	t.Run("already cancelled order is rejected without release", func(t *testing.T) {
		o := pendingOrder(1, 10, 100)
		o.Status = domain.StatusCancelledByUser
		repo := newFakeOrderRepo(o)
		booking := &fakeBooking{}
		svc := NewService(repo, booking, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{UserID: 10})
		require.ErrorIs(t, err, ErrCannotCancel)
		assert.Empty(t, booking.releases)
	})

	t.Run("completed order cannot be cancelled", func(t *testing.T) {
		o := pendingOrder(1, 10, 100)
		o.Status = domain.StatusCompleted
		repo := newFakeOrderRepo(o)
		svc := NewService(repo, &fakeBooking{}, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{UserID: 10})
		require.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("repository failure does not release", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		repo.cancelErr = errors.New("connection reset")
		booking := &fakeBooking{}
		svc := NewService(repo, booking, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{UserID: 10})
		require.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, booking.releases)
	})

	t.Run("concurrent cancels release the slot once", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		booking := &fakeBooking{}
		svc := NewService(repo, booking, nopLogger{})

		// Обе отмены читают заказ до того, как хоть одна его отменит
		var barrier sync.WaitGroup
		barrier.Add(2)
		repo.readBarrier = &barrier

		requests := []*models.CancelOrderRequest{
			{UserID: 10, CancellationReason: "передумал"},
			{UserID: 99, StaffOverride: true, CancellationReason: "кафе закрыто"},
		}

		var wg sync.WaitGroup
		results := make(chan error, len(requests))
		for _, req := range requests {
			wg.Add(1)
			go func(req *models.CancelOrderRequest) {
				defer wg.Done()
				results <- svc.Cancel(context.Background(), 1, req)
			}(req)
		}
		wg.Wait()
		close(results)

		cancelled, rejected := 0, 0
		for err := range results {
			switch {
			case err == nil:
				cancelled++
			case errors.Is(err, ErrCannotCancel):
				rejected++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}

		assert.Equal(t, 1, cancelled)
		assert.Equal(t, 1, rejected)
		assert.Equal(t, []int64{100}, booking.releases)
	})

	t.Run("release failure is surfaced but cancel stays", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		booking := &fakeBooking{err: errors.New("connection reset")}
		svc := NewService(repo, booking, nopLogger{})

		err := svc.Cancel(context.Background(), 1, &models.CancelOrderRequest{UserID: 10})
		require.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, domain.StatusCancelledByUser, repo.orders[1].Status)
	})
}

func TestService_ConfirmPayment(t *testing.T) {
	t.Run("pending order becomes confirmed and paid", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		svc := NewService(repo, &fakeBooking{}, nopLogger{})

		err := svc.ConfirmPayment(context.Background(), 1, 10, false)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.orders[1].Status)
		assert.Equal(t, domain.PaymentPaid, repo.orders[1].PaymentStatus)
	})

	t.Run("second confirmation is rejected", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		svc := NewService(repo, &fakeBooking{}, nopLogger{})

		require.NoError(t, svc.ConfirmPayment(context.Background(), 1, 10, false))
		err := svc.ConfirmPayment(context.Background(), 1, 10, false)
		require.ErrorIs(t, err, ErrPaymentAlreadyProcessed)
	})

	t.Run("cancelled order cannot be paid", func(t *testing.T) {
		o := pendingOrder(1, 10, 100)
		o.Status = domain.StatusCancelledByUser
		repo := newFakeOrderRepo(o)
		svc := NewService(repo, &fakeBooking{}, nopLogger{})

		err := svc.ConfirmPayment(context.Background(), 1, 10, false)
		require.ErrorIs(t, err, ErrPaymentAlreadyProcessed)
	})

	t.Run("stranger is denied, staff is not", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		svc := NewService(repo, &fakeBooking{}, nopLogger{})

		err := svc.ConfirmPayment(context.Background(), 1, 11, false)
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, domain.StatusPending, repo.orders[1].Status)

		require.NoError(t, svc.ConfirmPayment(context.Background(), 1, 11, true))
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := newFakeOrderRepo()
		svc := NewService(repo, &fakeBooking{}, nopLogger{})

		err := svc.ConfirmPayment(context.Background(), 99, 10, false)
		require.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		repo := newFakeOrderRepo(pendingOrder(1, 10, 100))
		repo.confirmErr = errors.New("connection reset")
		svc := NewService(repo, &fakeBooking{}, nopLogger{})

		err := svc.ConfirmPayment(context.Background(), 1, 10, false)
		require.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_GetUserOrders(t *testing.T) {
	repo := newFakeOrderRepo(
		pendingOrder(1, 10, 100),
		pendingOrder(2, 10, 101),
		pendingOrder(3, 11, 102),
	)
	svc := NewService(repo, &fakeBooking{}, nopLogger{})

	resp, err := svc.GetUserOrders(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, resp.Orders, 2)

	resp, err = svc.GetUserOrders(context.Background(), 12)
	require.NoError(t, err)
	assert.Empty(t, resp.Orders)
}
