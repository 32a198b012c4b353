package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/pkg/dbmetrics"
	"github.com/tapcafe/TapCafe-SlotService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const pgUniqueViolation = "23505"

// insertChunkSize максимум строк в одном batch insert
// Ограничивает размер одного выражения; при конфликте любого чанка
// вызывающий код отбрасывает всю вставку и перечитывает строки
const insertChunkSize = 50

var availabilityColumns = []string{
	"id",
	"cafe_id",
	"template_id",
	"slot_date",
	"slot_time",
	"max_orders",
	"booked_count",
	"is_blocked",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с журналом доступности слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает строку доступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SlotAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("slot_availability").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	slot, err := r.scanSlot(row)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetByCafeAndDate получает все строки доступности кафе на дату,
// отсортированные по времени слота
func (r *Repository) GetByCafeAndDate(ctx context.Context, cafeID int64, date time.Time) ([]*domain.SlotAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From("slot_availability").
		Where(squirrel.Eq{
			"cafe_id":   cafeID,
			"slot_date": date.Format(domain.DateFormat),
		}).
		OrderBy("slot_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCafeAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCafeAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// BatchInsert вставляет строки доступности чанками по insertChunkSize
// При нарушении уникальности (конкурентная материализация) возвращает ErrDuplicateSlot:
// частично вставленные чанки остаются в БД, но это безопасно - вызывающий код
// перечитывает все строки на дату и возвращает их, дубликатов не возникает
func (r *Repository) BatchInsert(ctx context.Context, slots []*domain.SlotAvailability) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	for start := 0; start < len(slots); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(slots) {
			end = len(slots)
		}

		insertBuilder := psqlbuilder.Insert("slot_availability").
			Columns(
				"cafe_id",
				"template_id",
				"slot_date",
				"slot_time",
				"max_orders",
				"booked_count",
				"is_blocked",
			)

		for _, slot := range slots[start:end] {
			insertBuilder = insertBuilder.Values(
				slot.CafeID,
				slot.TemplateID,
				slot.SlotDate.Format(domain.DateFormat),
				slot.SlotTime,
				slot.MaxOrders,
				slot.BookedCount,
				slot.IsBlocked,
			)
		}

		query, args, err := insertBuilder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: BatchInsert - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateSlot
			}
			return fmt.Errorf("%w: BatchInsert - execute insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// Book атомарно занимает одно место в слоте
// Единственный условный UPDATE: инкремент проходит только если слот не заблокирован
// и есть свободные места. Никакого read-then-write - инвариант
// booked_count <= max_orders обеспечивается самим условием обновления.
// При отказе выполняется дополнительное чтение, чтобы различить причину
// (не найден / заблокирован / занят) - оно нужно только для качества ошибки
// и не участвует в гарантии атомарности
func (r *Repository) Book(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_availability").
		Set("booked_count", squirrel.Expr("booked_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_blocked": false}).
		Where(squirrel.Expr("booked_count < max_orders")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Book - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Book - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Book - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 1 {
		return nil
	}

	// Условие не выполнилось - выясняем причину отдельным чтением
	slot, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("%w: Book - classify failure: %v", ErrExecQuery, err)
	}

	if slot.IsBlocked {
		return ErrSlotBlocked
	}
	return ErrSlotFull
}

// Release атомарно освобождает одно место в слоте
// Декремент с полом на нуле: повторные вызовы никогда не уводят booked_count
// в минус. Флаг is_blocked не изменяется.
func (r *Repository) Release(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_availability").
		Set("booked_count", squirrel.Expr("booked_count - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("booked_count > 0")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 1 {
		return nil
	}

	// Либо строки нет, либо booked_count уже 0 - второе не ошибка
	if _, err := r.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		return fmt.Errorf("%w: Release - classify failure: %v", ErrExecQuery, err)
	}

	return nil
}

// SetBlocked выставляет флаг ручной блокировки слота
// Административная операция, отдельная от пути бронирования;
// booked_count при этом не изменяется
func (r *Repository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_availability").
		Set("is_blocked", blocked).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetBlocked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetBlocked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetBlocked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSlot(row rowScanner) (*domain.SlotAvailability, error) {
	var slot domain.SlotAvailability
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.CafeID,
		&slot.TemplateID,
		&slot.SlotDate,
		&slot.SlotTime,
		&slot.MaxOrders,
		&slot.BookedCount,
		&slot.IsBlocked,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

// scanSlots сканирует результаты запроса в слайс строк доступности
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.SlotAvailability, error) {
	slots := make([]*domain.SlotAvailability, 0)

	for rows.Next() {
		slot, err := r.scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
