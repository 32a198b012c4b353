package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	orderRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/order"
	"github.com/tapcafe/TapCafe-SlotService/internal/service/orders/models"
)

// Service сервис для чтения и отмены заказов
type Service struct {
	orderRepo OrderRepository
	booking   BookingCoordinator
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(orderRepo OrderRepository, booking BookingCoordinator, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		booking:   booking,
		logger:    logger,
	}
}

// GetByID получает заказ по ID
// Пользователь видит только свои заказы; персонал кафе - любые
func (s *Service) GetByID(ctx context.Context, id, userID int64, staff bool) (*models.OrderResponse, error) {
	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !staff && o.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to order id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainOrder(o), nil
}

// GetUserOrders получает историю заказов пользователя
func (s *Service) GetUserOrders(ctx context.Context, userID int64) (*models.OrderListResponse, error) {
	list, err := s.orderRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserOrders: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserOrders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserOrders: fetched %d orders for user=%d", len(list), userID)
	return models.FromDomainOrderList(list), nil
}

// Cancel отменяет заказ и освобождает место в слоте
// Release вызывается ровно один раз на успешную отмену - это компенсирующее
// действие к Book, выполненному при создании заказа
func (s *Service) Cancel(ctx context.Context, orderID int64, req *models.CancelOrderRequest) error {
	s.logger.Info("CancelOrder: order=%d, user=%d, staff=%t", orderID, req.UserID, req.StaffOverride)

	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("CancelOrder: order id=%d not found", orderID)
			return ErrOrderNotFound
		}
		s.logger.Error("CancelOrder: repository error for order id=%d: %v", orderID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !req.StaffOverride && o.UserID != req.UserID {
		s.logger.Warn("CancelOrder: access denied for user=%d to order id=%d", req.UserID, orderID)
		return ErrAccessDenied
	}

	if !o.CanBeCancelled() {
		s.logger.Warn("CancelOrder: order id=%d cannot be cancelled, status=%s", orderID, o.Status)
		return ErrCannotCancel
	}

	status := domain.StatusCancelledByUser
	if req.StaffOverride {
		status = domain.StatusCancelledByStaff
	}

	if err := s.orderRepo.Cancel(ctx, orderID, status, req.CancellationReason); err != nil {
		switch {
		case errors.Is(err, orderRepo.ErrOrderNotFound):
			return ErrOrderNotFound
		case errors.Is(err, orderRepo.ErrOrderNotCancellable):
			// Конкурентная отмена успела раньше: слот освободила она
			s.logger.Warn("CancelOrder: order id=%d is no longer cancellable", orderID)
			return ErrCannotCancel
		default:
			s.logger.Error("CancelOrder: repository error for order id=%d: %v", orderID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	// Компенсирующее освобождение слота. Release вызывается только после
	// успешного условного UPDATE, поэтому на один заказ приходится ровно
	// одно освобождение. Заказ уже отменен, поэтому ошибку освобождения
	// не маскируем, но и статус отмены не откатываем
	if err := s.booking.Release(ctx, o.SlotID); err != nil {
		s.logger.Error("CancelOrder: failed to release slot=%d for order id=%d: %v", o.SlotID, orderID, err)
		return fmt.Errorf("%w: Cancel - release slot: %v", ErrInternal, err)
	}

	s.logger.Info("CancelOrder: cancelled order id=%d with status=%s, slot=%d released", orderID, status, o.SlotID)
	return nil
}

// ConfirmPayment отмечает заказ оплаченным и переводит его в confirmed
// Место в слоте остается занятым - оно было забронировано при создании заказа
func (s *Service) ConfirmPayment(ctx context.Context, orderID, userID int64, staff bool) error {
	s.logger.Info("ConfirmPayment: order=%d, user=%d, staff=%t", orderID, userID, staff)

	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("ConfirmPayment: order id=%d not found", orderID)
			return ErrOrderNotFound
		}
		s.logger.Error("ConfirmPayment: repository error for order id=%d: %v", orderID, err)
		return fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
	}

	if !staff && o.UserID != userID {
		s.logger.Warn("ConfirmPayment: access denied for user=%d to order id=%d", userID, orderID)
		return ErrAccessDenied
	}

	if err := s.orderRepo.ConfirmPayment(ctx, orderID); err != nil {
		switch {
		case errors.Is(err, orderRepo.ErrOrderNotFound):
			return ErrOrderNotFound
		case errors.Is(err, orderRepo.ErrPaymentAlreadyProcessed):
			s.logger.Warn("ConfirmPayment: order id=%d already processed, status=%s, payment=%s",
				orderID, o.Status, o.PaymentStatus)
			return ErrPaymentAlreadyProcessed
		default:
			s.logger.Error("ConfirmPayment: repository error for order id=%d: %v", orderID, err)
			return fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("ConfirmPayment: order id=%d confirmed and marked paid", orderID)
	return nil
}
