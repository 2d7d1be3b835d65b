package book

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository is the persistence boundary for book records.
//
// Implementations map their "no such row" condition to ErrBookNotFound;
// any other error is a store failure and is returned wrapped.
type Repository interface {
	// ListBooks returns all records matching filter. A nil filter (or a
	// filter with no constraints) returns every record in natural order.
	// The result is never nil; an empty store yields an empty slice.
	ListBooks(ctx context.Context, filter *BookFilter) ([]Book, error)

	GetBookByID(ctx context.Context, id uuid.UUID) (*Book, error)

	CreateBook(ctx context.Context, b *Book) error

	// UpdateBook replaces every data column of the record with the values
	// in req (nil values become NULL). Returns ErrBookNotFound when no
	// record has the given id.
	UpdateBook(ctx context.Context, id uuid.UUID, req *UpdateBookRequest, now time.Time) error

	DeleteBook(ctx context.Context, id uuid.UUID) error
}
