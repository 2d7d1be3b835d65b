package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"book-inventory-backend/internal/domains/book"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, title, author, publication_year, genre, description, price, quantity, created_at, updated_at`

// buildListQuery constructs the SELECT for a (possibly empty) filter.
// Price bounds become one AND-ed WHERE clause; sortBy adds ORDER BY price,
// otherwise no sort key is set and rows come back in natural order.
func buildListQuery(filter *book.BookFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter != nil {
		if filter.MinPrice != nil {
			conditions = append(conditions, fmt.Sprintf("price >= $%d", argIndex))
			args = append(args, *filter.MinPrice)
			argIndex++
		}
		if filter.MaxPrice != nil {
			conditions = append(conditions, fmt.Sprintf("price <= $%d", argIndex))
			args = append(args, *filter.MaxPrice)
			argIndex++
		}
	}

	query := "SELECT " + bookColumns + " FROM books"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	if filter != nil {
		switch filter.Sort {
		case book.SortAsc:
			query += " ORDER BY price ASC"
		case book.SortDesc:
			query += " ORDER BY price DESC"
		}
	}

	return query, args
}

func (r *postgresRepository) ListBooks(ctx context.Context, filter *book.BookFilter) ([]book.Book, error) {
	query, args := buildListQuery(filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books query failed: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.PublicationYear, &b.Genre,
			&b.Description, &b.Price, &b.Quantity, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan book row failed: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) GetBookByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := "SELECT " + bookColumns + " FROM books WHERE id = $1"

	var b book.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.PublicationYear, &b.Genre,
		&b.Description, &b.Price, &b.Quantity, &b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, book.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get book failed: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) CreateBook(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (id, title, author, publication_year, genre, description, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID, b.Title, b.Author, b.PublicationYear, b.Genre,
		b.Description, b.Price, b.Quantity, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert book failed: %w", err)
	}

	return nil
}

// UpdateBook overwrites every data column from req. Nil fields become
// NULL (replace semantics, see the UpdateBookRequest doc).
func (r *postgresRepository) UpdateBook(ctx context.Context, id uuid.UUID, req *book.UpdateBookRequest, now time.Time) error {
	query := `
		UPDATE books
		SET title = $1, author = $2, publication_year = $3, genre = $4,
		    description = $5, price = $6, quantity = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := r.pool.Exec(ctx, query,
		req.Title, req.Author, req.PublicationYear, req.Genre,
		req.Description, req.Price, req.Quantity, now, id,
	)
	if err != nil {
		return fmt.Errorf("update book failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) DeleteBook(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete book failed: %w", err)
	}

	if result.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}
