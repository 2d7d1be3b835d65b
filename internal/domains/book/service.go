package book

import (
	"context"
)

// Service translates validated intents into store operations and
// normalized outcomes. Identifiers arrive as raw path-parameter strings;
// malformed ones resolve to ErrBookNotFound, never a crash.
type Service interface {
	ListBooks(ctx context.Context) ([]Book, error)
	GetBook(ctx context.Context, id string) (*Book, error)
	CreateBook(ctx context.Context, req *CreateBookRequest) (*Book, error)
	UpdateBook(ctx context.Context, id string, req *UpdateBookRequest) error
	DeleteBook(ctx context.Context, id string) error
	FilterBooks(ctx context.Context, filter *BookFilter) ([]Book, error)
}
