package sale

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalePlannerService/pkg/psqlbuilder"
)

// saleColumns колонки таблицы sales в порядке сканирования
var saleColumns = []string{
	"id",
	"product_id",
	"platform_id",
	"start_date",
	"end_date",
	"kind",
	"title",
	"discount_percent",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с распродажами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория распродаж
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую распродажу.
// Если в контексте передана активная транзакция, использует её —
// размещение с проверкой конфликтов полосы должно идти в одной
// сериализуемой транзакции с выборкой соседей.
func (r *Repository) Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sales").
		Columns(
			"product_id",
			"platform_id",
			"start_date",
			"end_date",
			"kind",
			"title",
			"discount_percent",
			"notes",
		).
		Values(
			sale.ProductID,
			sale.PlatformID,
			sale.StartDate.String(),
			sale.EndDate.String(),
			sale.Kind,
			sale.Title,
			sale.DiscountPercent,
			sale.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sale.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	sale.CreatedAt = createdAt.Time
	sale.UpdatedAt = updatedAt.Time

	return sale, nil
}

// GetByID получает распродажу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(saleColumns...).
		From("sales").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	sale, err := r.scanSale(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan sale: %v", ErrScanRow, err)
	}

	return sale, nil
}

// GetByProductWithFilter получает распродажи товара с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Площадке (PlatformID) - опционально; вместе с ProductID задает полосу планирования
// - Периоду (From, To) - опционально, по пересечению с занятым интервалом
//
// Внутри транзакции выборка полосы (указан PlatformID) блокируется через
// FOR UPDATE: перемещение и размещение распродаж на одной полосе
// сериализуются, чтобы параллельные правки не дали противоречивый календарь.
func (r *Repository) GetByProductWithFilter(ctx context.Context, filter domain.ProductSalesFilter) ([]*domain.Sale, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(saleColumns...).
		From("sales").
		Where(squirrel.Eq{"product_id": filter.ProductID})

	// Фильтрация по площадке (если указана)
	if filter.PlatformID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"platform_id": *filter.PlatformID})
	}

	// Фильтрация по периоду: берем распродажи, чей занятый интервал
	// пересекается с [From, To]
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": filter.From.String()})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": filter.To.String()})
	}

	selectBuilder = selectBuilder.OrderBy("start_date ASC, id ASC")

	// Блокировка полосы для сериализации конкурентных правок
	if dbmetrics.IsInTransaction(ctx) && filter.PlatformID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProductWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProductWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSales(rows)
}

// UpdateDates обновляет позицию распродажи в календаре.
// Вид и остальные атрибуты не меняются: движок планирования двигает
// распродажи, не переписывая их.
func (r *Repository) UpdateDates(ctx context.Context, id int64, start, end dateonly.Date) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("sales").
		Set("start_date", start.String()).
		Set("end_date", end.String()).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDates - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDates - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDates - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// Delete удаляет распродажу
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sales").
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
		return ErrSaleNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSale сканирует одну распродажу
func (r *Repository) scanSale(row rowScanner) (*domain.Sale, error) {
	var sale domain.Sale
	var startDate, endDate time.Time
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&sale.ID,
		&sale.ProductID,
		&sale.PlatformID,
		&startDate,
		&endDate,
		&sale.Kind,
		&sale.Title,
		&sale.DiscountPercent,
		&sale.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Единственная точка преобразования дат из БД: DATE-колонки приходят
	// как полночь UTC, нормализуем их в календарные дни
	sale.StartDate = dateonly.FromTime(startDate)
	sale.EndDate = dateonly.FromTime(endDate)
	sale.CreatedAt = createdAt.Time
	sale.UpdatedAt = updatedAt.Time

	return &sale, nil
}

// scanSales сканирует результаты запроса в слайс распродаж
func (r *Repository) scanSales(rows *sql.Rows) ([]*domain.Sale, error) {
	sales := make([]*domain.Sale, 0)

	for rows.Next() {
		sale, err := r.scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSales - scan row: %v", ErrScanRow, err)
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSales - rows error: %v", ErrScanRow, err)
	}

	return sales, nil
}
