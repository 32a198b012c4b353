package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/pkg/dbmetrics"
	"github.com/tapcafe/TapCafe-SlotService/pkg/psqlbuilder"
)

var orderColumns = []string{
	"id",
	"reference",
	"user_id",
	"cafe_id",
	"slot_id",
	"slot_date",
	"slot_time",
	"status",
	"subtotal",
	"discount_amount",
	"coupon_code",
	"tax_amount",
	"total_amount",
	"payment_status",
	"gateway_order_id",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заказами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает заказ вместе с позициями
// Вызывается внутри транзакции (через transaction manager), чтобы заказ
// и его позиции записывались атомарно
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"reference",
			"user_id",
			"cafe_id",
			"slot_id",
			"slot_date",
			"slot_time",
			"status",
			"subtotal",
			"discount_amount",
			"coupon_code",
			"tax_amount",
			"total_amount",
			"payment_status",
			"gateway_order_id",
			"notes",
		).
		Values(
			o.Reference,
			o.UserID,
			o.CafeID,
			o.SlotID,
			o.SlotDate.Format(domain.DateFormat),
			o.SlotTime,
			o.Status,
			o.Subtotal,
			o.DiscountAmount,
			o.CouponCode,
			o.TaxAmount,
			o.TotalAmount,
			o.PaymentStatus,
			o.GatewayOrderID,
			o.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	for i := range o.Items {
		if err := r.createItem(ctx, executor, o.ID, &o.Items[i]); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (r *Repository) createItem(ctx context.Context, executor DBExecutor, orderID int64, item *domain.OrderItem) error {
	query, args, err := psqlbuilder.Insert("order_items").
		Columns(
			"order_id",
			"menu_item_id",
			"item_name",
			"unit_price",
			"quantity",
			"total_price",
		).
		Values(
			orderID,
			item.MenuItemID,
			item.ItemName,
			item.UnitPrice,
			item.Quantity,
			item.TotalPrice,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: createItem - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return fmt.Errorf("%w: createItem - execute insert: %v", ErrExecQuery, err)
	}

	item.OrderID = orderID
	return nil
}

// GetByID получает заказ по ID вместе с позициями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	o, err := r.scanOrder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	items, err := r.getItems(ctx, executor, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return o, nil
}

// GetByUserID получает заказы пользователя, отсортированные от новых к старым
// Позиции заказов не загружаются - список используется для истории заказов
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return orders, nil
}

// Cancel отменяет заказ с указанием причины
// Условный UPDATE: срабатывает только для еще не отмененных заказов,
// поэтому из двух конкурентных отмен одного заказа проходит ровно одна
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.OrderStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": domain.CancellableOrderStatuses,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 1 {
		return nil
	}

	// UPDATE не прошел: выясняем, нет заказа или он уже не подлежит отмене
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrOrderNotCancellable
}

// ConfirmPayment отмечает заказ оплаченным и переводит его в confirmed
// Условный UPDATE: срабатывает только для заказов, ожидающих оплаты,
// поэтому повторное подтверждение и подтверждение отмененного заказа не проходят
func (r *Repository) ConfirmPayment(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("orders").
		Set("payment_status", domain.PaymentPaid).
		Set("status", domain.StatusConfirmed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":             id,
			"payment_status": domain.PaymentPending,
			"status":         domain.StatusPending,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 1 {
		return nil
	}

	// UPDATE не прошел: выясняем, нет заказа или он уже не в ожидании оплаты
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrPaymentAlreadyProcessed
}

func (r *Repository) getItems(ctx context.Context, executor DBExecutor, orderID int64) ([]domain.OrderItem, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"order_id",
		"menu_item_id",
		"item_name",
		"unit_price",
		"quantity",
		"total_price",
	).
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.ItemName,
			&item.UnitPrice,
			&item.Quantity,
			&item.TotalPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getItems - scan row: %v", ErrScanRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.Reference,
		&o.UserID,
		&o.CafeID,
		&o.SlotID,
		&o.SlotDate,
		&o.SlotTime,
		&o.Status,
		&o.Subtotal,
		&o.DiscountAmount,
		&o.CouponCode,
		&o.TaxAmount,
		&o.TotalAmount,
		&o.PaymentStatus,
		&o.GatewayOrderID,
		&o.Notes,
		&o.CancellationReason,
		&o.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
