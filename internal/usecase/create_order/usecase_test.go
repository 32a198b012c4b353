package create_order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/internal/integrations/payments"
	"github.com/tapcafe/TapCafe-SlotService/internal/service/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeBooking struct {
	books    []int64
	releases []int64

	bookErr    error
	releaseErr error
}

func (f *fakeBooking) Book(ctx context.Context, slotID int64) error {
	if f.bookErr != nil {
		return f.bookErr
	}
	f.books = append(f.books, slotID)
	return nil
}

func (f *fakeBooking) Release(ctx context.Context, slotID int64) error {
	if f.releaseErr != nil {
		return f.releaseErr
	}
	f.releases = append(f.releases, slotID)
	return nil
}

type fakeOrderRepo struct {
	created *domain.Order
	err     error
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	created := *o
	created.ID = 1
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

type fakePayments struct {
	lastAmount   int64
	lastCurrency string
	lastReceipt  string
	err          error
}

func (f *fakePayments) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payments.GatewayOrder, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastAmount = amount
	f.lastCurrency = currency
	f.lastReceipt = receipt
	return &payments.GatewayOrder{
		ID:       "order_gw_1",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func validRequest(t *testing.T) *Request {
	t.Helper()
	return &Request{
		UserID:      10,
		CafeID:      1,
		SlotID:      100,
		SlotDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SlotTime:    "10:00",
		Items:       []ItemRequest{{ItemName: "Капучино", UnitPrice: 180, Quantity: 2}},
		Subtotal:    360,
		TaxAmount:   18,
		TotalAmount: 378,
	}
}

func newTestUseCase(bk *fakeBooking, repo *fakeOrderRepo, gw *fakePayments) *UseCase {
	return NewUseCase(bk, repo, gw, passthroughTxManager{}, nopLogger{})
}

func TestUseCase_Execute_HappyPath(t *testing.T) {
	bk := &fakeBooking{}
	repo := &fakeOrderRepo{}
	gw := &fakePayments{}
	uc := newTestUseCase(bk, repo, gw)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.Equal(t, []int64{100}, bk.books)
	assert.Empty(t, bk.releases)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.PaymentStatus)
	assert.Equal(t, "order_gw_1", resp.GatewayOrderID)
	assert.NotEmpty(t, resp.Reference)

	// Сумма в шлюз уходит в минорных единицах
	assert.Equal(t, int64(37800), gw.lastAmount)
	assert.Equal(t, "INR", gw.lastCurrency)
	assert.Equal(t, resp.Reference, gw.lastReceipt)

	require.NotNil(t, repo.created)
	require.Len(t, repo.created.Items, 1)
	assert.Equal(t, float64(360), repo.created.Items[0].TotalPrice)
}

func TestUseCase_Execute_BookFailures(t *testing.T) {
	tests := []struct {
		name    string
		bookErr error
		wantErr error
	}{
		{name: "slot not found", bookErr: booking.ErrSlotNotFound, wantErr: ErrSlotNotFound},
		{name: "slot full", bookErr: booking.ErrSlotFull, wantErr: ErrSlotNotAvailable},
		{name: "slot blocked", bookErr: booking.ErrSlotBlocked, wantErr: ErrSlotNotAvailable},
		{name: "coordinator failure", bookErr: booking.ErrInternal, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bk := &fakeBooking{bookErr: tt.bookErr}
			uc := newTestUseCase(bk, &fakeOrderRepo{}, &fakePayments{})

			_, err := uc.Execute(context.Background(), validRequest(t))
			require.ErrorIs(t, err, tt.wantErr)

			// Book не прошел - компенсировать нечего
			assert.Empty(t, bk.releases)
		})
	}
}

func TestUseCase_Execute_GatewayFailureReleasesSlot(t *testing.T) {
	bk := &fakeBooking{}
	gw := &fakePayments{err: payments.ErrGatewayRejected}
	uc := newTestUseCase(bk, &fakeOrderRepo{}, gw)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrPaymentGateway)

	assert.Equal(t, []int64{100}, bk.books)
	assert.Equal(t, []int64{100}, bk.releases)
}

func TestUseCase_Execute_PersistFailureReleasesSlot(t *testing.T) {
	bk := &fakeBooking{}
	repo := &fakeOrderRepo{err: errors.New("connection reset")}
	uc := newTestUseCase(bk, repo, &fakePayments{})

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrInternal)

	assert.Equal(t, []int64{100}, bk.releases)
}

func TestUseCase_Execute_CompensationFailureKeepsOriginalError(t *testing.T) {
	bk := &fakeBooking{releaseErr: errors.New("connection reset")}
	gw := &fakePayments{err: payments.ErrGatewayRejected}
	uc := newTestUseCase(bk, &fakeOrderRepo{}, gw)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.ErrorIs(t, err, ErrPaymentGateway)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing user", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "missing slot", mutate: func(r *Request) { r.SlotID = 0 }},
		{name: "no items", mutate: func(r *Request) { r.Items = nil }},
		{name: "zero quantity", mutate: func(r *Request) { r.Items[0].Quantity = 0 }},
		{name: "zero total", mutate: func(r *Request) { r.TotalAmount = 0 }},
		{name: "negative discount", mutate: func(r *Request) { r.DiscountAmount = -1 }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			bk := &fakeBooking{}
			uc := newTestUseCase(bk, &fakeOrderRepo{}, &fakePayments{})

			req := validRequest(t)
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)

			// Валидация идет до бронирования
			assert.Empty(t, bk.books)
		})
	}
}
