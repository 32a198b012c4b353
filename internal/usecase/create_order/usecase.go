package create_order

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/internal/service/booking"
)

// defaultCurrency валюта платежного шлюза
const defaultCurrency = "INR"

// UseCase use case создания заказа
//
// Сага с ручной компенсацией (не двухфазный коммит):
//  1. Book слота - атомарный условный инкремент в журнале доступности
//  2. Создание заказа в платежном шлюзе
//  3. Запись заказа и позиций в одной транзакции БД
//
// Любой отказ после успешного Book компенсируется ровно одним Release.
// Таймаут-освобождения нет: если процесс упадет между Book и Release,
// одно место останется занятым до ручной корректировки - известное ограничение
type UseCase struct {
	booking   BookingCoordinator
	orderRepo OrderRepository
	payments  PaymentsClient
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingCoordinator BookingCoordinator,
	orderRepo OrderRepository,
	paymentsClient PaymentsClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		booking:   bookingCoordinator,
		orderRepo: orderRepo,
		payments:  paymentsClient,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case создания заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: user=%d, cafe=%d, slot=%d, date=%s, time=%s",
		req.UserID, req.CafeID, req.SlotID, req.SlotDate.Format(domain.DateFormat), req.SlotTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Занимаем место в слоте ДО создания заказа
	if err := uc.booking.Book(ctx, req.SlotID); err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotNotFound):
			return nil, ErrSlotNotFound
		case errors.Is(err, booking.ErrSlotFull), errors.Is(err, booking.ErrSlotBlocked):
			return nil, ErrSlotNotAvailable
		default:
			uc.logger.Error("CreateOrder: book failed for slot=%d: %v", req.SlotID, err)
			return nil, fmt.Errorf("%w: failed to book slot: %v", ErrInternal, err)
		}
	}

	// С этого момента любой отказ обязан освободить занятое место
	result, err := uc.createAfterBook(ctx, req)
	if err != nil {
		uc.compensate(ctx, req.SlotID)
		return nil, err
	}

	uc.logger.Info("CreateOrder: created order id=%d reference=%s for user=%d",
		result.ID, result.Reference, req.UserID)

	return result, nil
}

func (uc *UseCase) createAfterBook(ctx context.Context, req *Request) (*Response, error) {
	reference := uuid.NewString()

	// 3. Создаем заказ в платежном шлюзе (сумма в минорных единицах)
	amountMinor := int64(math.Round(req.TotalAmount * 100))
	gatewayOrder, err := uc.payments.CreateOrder(ctx, amountMinor, defaultCurrency, reference)
	if err != nil {
		uc.logger.Error("CreateOrder: gateway order failed for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItem{
			MenuItemID: item.MenuItemID,
			ItemName:   item.ItemName,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: item.UnitPrice * float64(item.Quantity),
		}
	}

	order := &domain.Order{
		Reference:      reference,
		UserID:         req.UserID,
		CafeID:         req.CafeID,
		SlotID:         req.SlotID,
		SlotDate:       req.SlotDate,
		SlotTime:       req.SlotTime,
		Status:         domain.StatusPending,
		Subtotal:       req.Subtotal,
		DiscountAmount: req.DiscountAmount,
		CouponCode:     req.CouponCode,
		TaxAmount:      req.TaxAmount,
		TotalAmount:    req.TotalAmount,
		PaymentStatus:  domain.PaymentPending,
		GatewayOrderID: &gatewayOrder.ID,
		Notes:          req.Notes,
		Items:          items,
	}

	// 4. Записываем заказ и позиции атомарно
	var created *domain.Order
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = uc.orderRepo.Create(txCtx, order)
		return txErr
	})
	if err != nil {
		uc.logger.Error("CreateOrder: persist failed for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: failed to persist order: %v", ErrInternal, err)
	}

	return &Response{
		ID:             created.ID,
		Reference:      created.Reference,
		UserID:         created.UserID,
		CafeID:         created.CafeID,
		SlotID:         created.SlotID,
		SlotDate:       created.SlotDate,
		SlotTime:       created.SlotTime,
		Status:         string(created.Status),
		TotalAmount:    created.TotalAmount,
		PaymentStatus:  string(created.PaymentStatus),
		GatewayOrderID: gatewayOrder.ID,
		CreatedAt:      created.CreatedAt,
	}, nil
}

// compensate освобождает место, занятое неудавшимся созданием заказа
// Вызывается ровно один раз на успешный Book; ошибка компенсации только
// логируется - исходная причина отказа важнее для вызывающего
func (uc *UseCase) compensate(ctx context.Context, slotID int64) {
	if err := uc.booking.Release(ctx, slotID); err != nil {
		uc.logger.Error("CreateOrder: compensating release failed for slot=%d: %v", slotID, err)
	}
}
