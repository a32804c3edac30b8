package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-backend/internal/domains/book/model"
	"catalog-backend/internal/shared/fault"
	"catalog-backend/pkg/database"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, version, title, rating, kind, publisher, price, discount,
	       available, release_date, isbn, homepage, created_at, updated_at`

// Insert writes the book and its keywords in one transaction so a failed
// keyword insert never leaves a parent row behind.
func (r *postgresRepository) Insert(ctx context.Context, book *model.Book) error {
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO books (` + bookColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`
		_, err := tx.Exec(ctx, query,
			book.ID, book.Version, book.Title, book.Rating, book.Kind, book.Publisher,
			book.Price, book.Discount, book.Available, book.ReleaseDate, book.ISBN,
			book.Homepage, book.CreatedAt, book.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert book: %w", err)
		}

		for _, keyword := range book.Keywords {
			_, err := tx.Exec(ctx,
				`INSERT INTO book_keywords (id, book_id, value) VALUES ($1, $2, $3)`,
				keyword.ID, keyword.BookID, keyword.Value,
			)
			if err != nil {
				return fmt.Errorf("failed to insert keyword: %w", err)
			}
		}
		return nil
	})
}

// Update persists the merged snapshot. The WHERE clause pins the version the
// snapshot was loaded with, so a concurrent writer that committed in between
// makes this a no-op and the caller gets VersionOutdated.
func (r *postgresRepository) Update(ctx context.Context, book *model.Book) (int, error) {
	query := `
		UPDATE books
		SET title = $1, rating = $2, kind = $3, publisher = $4, price = $5,
		    discount = $6, available = $7, release_date = $8, isbn = $9,
		    homepage = $10, version = version + 1, updated_at = $11
		WHERE id = $12 AND version = $13
		RETURNING version
	`

	var newVersion int
	err := r.pool.QueryRow(ctx, query,
		book.Title, book.Rating, book.Kind, book.Publisher, book.Price,
		book.Discount, book.Available, book.ReleaseDate, book.ISBN,
		book.Homepage, time.Now(),
		book.ID, book.Version,
	).Scan(&newVersion)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, &fault.VersionOutdated{ID: book.ID.String(), Version: book.Version}
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update book: %w", err)
	}

	return newVersion, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var book model.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID, &book.Version, &book.Title, &book.Rating, &book.Kind,
		&book.Publisher, &book.Price, &book.Discount, &book.Available,
		&book.ReleaseDate, &book.ISBN, &book.Homepage,
		&book.CreatedAt, &book.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	keywords, err := r.loadKeywords(ctx, []uuid.UUID{book.ID})
	if err != nil {
		return nil, err
	}
	book.Keywords = keywords[book.ID]

	return &book, nil
}

// naturalKeyColumns whitelists the fields the uniqueness checker may query.
var naturalKeyColumns = map[string]string{
	"title": "title",
	"isbn":  "isbn",
}

func (r *postgresRepository) FindByField(ctx context.Context, field, value string) ([]model.Book, error) {
	column, ok := naturalKeyColumns[field]
	if !ok {
		return nil, fmt.Errorf("unsupported lookup field: %s", field)
	}

	query := fmt.Sprintf(`SELECT %s FROM books WHERE %s = $1`, bookColumns, column)
	return r.queryBooks(ctx, query, value)
}

func (r *postgresRepository) Find(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIndex := 1

	if filter.Title != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, filter.Title)
		argIndex++
	}
	if filter.ISBN != "" {
		conditions = append(conditions, fmt.Sprintf("isbn = $%d", argIndex))
		args = append(args, model.StripISBNDashes(filter.ISBN))
		argIndex++
	}

	query := fmt.Sprintf(`SELECT %s FROM books WHERE %s ORDER BY title`, bookColumns, joinAnd(conditions))
	books, err := r.queryBooks(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	if len(books) > 0 {
		ids := make([]uuid.UUID, len(books))
		for i, book := range books {
			ids[i] = book.ID
		}
		keywords, err := r.loadKeywords(ctx, ids)
		if err != nil {
			return nil, err
		}
		for i := range books {
			books[i].Keywords = keywords[books[i].ID]
		}
	}

	return books, nil
}

func (r *postgresRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		if _, err := tx.Exec(ctx, `DELETE FROM book_keywords WHERE book_id = $1`, id); err != nil {
			return 0, fmt.Errorf("failed to delete keywords: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return 0, fmt.Errorf("failed to delete book: %w", err)
		}
		return tag.RowsAffected(), nil
	})
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("book query failed: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var book model.Book
		err := rows.Scan(
			&book.ID, &book.Version, &book.Title, &book.Rating, &book.Kind,
			&book.Publisher, &book.Price, &book.Discount, &book.Available,
			&book.ReleaseDate, &book.ISBN, &book.Homepage,
			&book.CreatedAt, &book.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("book scan failed: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("book rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) loadKeywords(ctx context.Context, bookIDs []uuid.UUID) (map[uuid.UUID][]model.Keyword, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, book_id, value FROM book_keywords WHERE book_id = ANY($1) ORDER BY value`,
		bookIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("keyword query failed: %w", err)
	}
	defer rows.Close()

	keywords := make(map[uuid.UUID][]model.Keyword)
	for rows.Next() {
		var keyword model.Keyword
		if err := rows.Scan(&keyword.ID, &keyword.BookID, &keyword.Value); err != nil {
			return nil, fmt.Errorf("keyword scan failed: %w", err)
		}
		keywords[keyword.BookID] = append(keywords[keyword.BookID], keyword)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("keyword rows error: %w", err)
	}

	return keywords, nil
}

func joinAnd(conditions []string) string {
	clause := ""
	for i, condition := range conditions {
		if i > 0 {
			clause += " AND "
		}
		clause += condition
	}
	return clause
}
