package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/pkg/dbmetrics"
	"github.com/tapcafe/TapCafe-SlotService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const pgUniqueViolation = "23505"

// UpdateParams параметры частичного обновления шаблона
// nil-поля не изменяются
type UpdateParams struct {
	MaxOrders *int
	IsActive  *bool
}

// Repository репозиторий для работы с шаблонами слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый шаблон слота
// Уникальность (cafe_id, slot_time) обеспечивается ограничением БД:
// при нарушении возвращается ErrDuplicateTemplate
func (r *Repository) Create(ctx context.Context, tmpl *domain.SlotTemplate) (*domain.SlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pickup_slot_templates").
		Columns(
			"cafe_id",
			"slot_time",
			"max_orders",
			"is_active",
		).
		Values(
			tmpl.CafeID,
			tmpl.SlotTime,
			tmpl.MaxOrders,
			tmpl.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tmpl.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateTemplate
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	tmpl.CreatedAt = createdAt.Time
	tmpl.UpdatedAt = updatedAt.Time

	return tmpl, nil
}

// GetByID получает шаблон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"cafe_id",
		"slot_time",
		"max_orders",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("pickup_slot_templates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var tmpl domain.SlotTemplate
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&tmpl.ID,
		&tmpl.CafeID,
		&tmpl.SlotTime,
		&tmpl.MaxOrders,
		&tmpl.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan template: %v", ErrScanRow, err)
	}

	tmpl.CreatedAt = createdAt.Time
	tmpl.UpdatedAt = updatedAt.Time

	return &tmpl, nil
}

// ListByCafe получает шаблоны кафе, отсортированные по времени слота
// Если onlyActive = true, возвращаются только активные шаблоны
func (r *Repository) ListByCafe(ctx context.Context, cafeID int64, onlyActive bool) ([]*domain.SlotTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"cafe_id",
		"slot_time",
		"max_orders",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("pickup_slot_templates").
		Where(squirrel.Eq{"cafe_id": cafeID}).
		OrderBy("slot_time ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCafe - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCafe - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTemplates(rows)
}

// CountByCafe возвращает количество шаблонов кафе (включая неактивные)
// Используется bulk-инициализацией, чтобы не создавать сетку повторно
func (r *Repository) CountByCafe(ctx context.Context, cafeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("pickup_slot_templates").
		Where(squirrel.Eq{"cafe_id": cafeID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByCafe - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByCafe - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update частично обновляет шаблон (max_orders и/или is_active)
func (r *Repository) Update(ctx context.Context, id int64, params UpdateParams) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("pickup_slot_templates").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if params.MaxOrders != nil {
		updateBuilder = updateBuilder.Set("max_orders", *params.MaxOrders)
	}
	if params.IsActive != nil {
		updateBuilder = updateBuilder.Set("is_active", *params.IsActive)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// Delete удаляет шаблон
// Удаление не каскадирует на уже материализованные строки slot_availability:
// они хранят собственную копию capacity и остаются без изменений
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pickup_slot_templates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

// scanTemplates сканирует результаты запроса в слайс шаблонов
func (r *Repository) scanTemplates(rows *sql.Rows) ([]*domain.SlotTemplate, error) {
	templates := make([]*domain.SlotTemplate, 0)

	for rows.Next() {
		var tmpl domain.SlotTemplate
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&tmpl.ID,
			&tmpl.CafeID,
			&tmpl.SlotTime,
			&tmpl.MaxOrders,
			&tmpl.IsActive,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanTemplates - scan row: %v", ErrScanRow, err)
		}

		tmpl.CreatedAt = createdAt.Time
		tmpl.UpdatedAt = updatedAt.Time

		templates = append(templates, &tmpl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTemplates - rows error: %v", ErrScanRow, err)
	}

	return templates, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation
}
