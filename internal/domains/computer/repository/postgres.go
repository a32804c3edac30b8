package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/computer/model"
	"catalog-backend/internal/shared/fault"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const computerColumns = `id, version, manufacturer, model, manufacture_date, price, color,
	       serial, created_at, updated_at`

func (r *postgresRepository) Insert(ctx context.Context, computer *model.Computer) error {
	now := time.Now()
	computer.CreatedAt = now
	computer.UpdatedAt = now

	query := `
		INSERT INTO computers (` + computerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		computer.ID, computer.Version, computer.Manufacturer, computer.Model,
		computer.ManufactureDate, computer.Price, computer.Color, computer.Serial,
		computer.CreatedAt, computer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert computer: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, computer *model.Computer) (int, error) {
	query := `
		UPDATE computers
		SET manufacturer = $1, model = $2, manufacture_date = $3, price = $4,
		    color = $5, serial = $6, version = version + 1, updated_at = $7
		WHERE id = $8 AND version = $9
		RETURNING version
	`

	var newVersion int
	err := r.pool.QueryRow(ctx, query,
		computer.Manufacturer, computer.Model, computer.ManufactureDate,
		computer.Price, computer.Color, computer.Serial, time.Now(),
		computer.ID, computer.Version,
	).Scan(&newVersion)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, &fault.VersionOutdated{ID: computer.ID.String(), Version: computer.Version}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update computer: %w", err)
	}

	return newVersion, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Computer, error) {
	query := `SELECT ` + computerColumns + ` FROM computers WHERE id = $1`

	var computer model.Computer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&computer.ID, &computer.Version, &computer.Manufacturer, &computer.Model,
		&computer.ManufactureDate, &computer.Price, &computer.Color,
		&computer.Serial, &computer.CreatedAt, &computer.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get computer: %w", err)
	}

	return &computer, nil
}

// naturalKeyColumns whitelists the fields the uniqueness checker may query.
var naturalKeyColumns = map[string]string{
	"manufacturer": "manufacturer",
	"serial":       "serial",
}

func (r *postgresRepository) FindByField(ctx context.Context, field, value string) ([]model.Computer, error) {
	column, ok := naturalKeyColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported lookup field: %s", field)
	}

	query := fmt.Sprintf(`SELECT %s FROM computers WHERE %s = $1`, computerColumns, column)
	return r.queryComputers(ctx, query, value)
}

func (r *postgresRepository) Find(ctx context.Context, filter model.ComputerFilter) ([]model.Computer, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIndex := 1

	if filter.Manufacturer != "" {
		conditions = append(conditions, fmt.Sprintf("manufacturer ILIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, filter.Manufacturer)
		argIndex++
	}
	if filter.Serial != "" {
		conditions = append(conditions, fmt.Sprintf("serial = $%d", argIndex))
		args = append(args, filter.Serial)
		argIndex++
	}

	clause := ""
	for i, condition := range conditions {
		if i > 0 {
			clause += " AND "
		}
		clause += condition
	}

	query := fmt.Sprintf(`SELECT %s FROM computers WHERE %s ORDER BY manufacturer, serial`, computerColumns, clause)
	return r.queryComputers(ctx, query, args...)
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM computers WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete computer: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) queryComputers(ctx context.Context, query string, args ...interface{}) ([]model.Computer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("computer query failed: %w", err)
	}
	defer rows.Close()

	var computers []model.Computer
	for rows.Next() {
		var computer model.Computer
		err := rows.Scan(
			&computer.ID, &computer.Version, &computer.Manufacturer, &computer.Model,
			&computer.ManufactureDate, &computer.Price, &computer.Color,
			&computer.Serial, &computer.CreatedAt, &computer.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("computer scan failed: %w", err)
		}
		computers = append(computers, computer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("computer rows error: %w", err)
	}

	return computers, nil
}
