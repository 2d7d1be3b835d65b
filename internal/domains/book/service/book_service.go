package service

import (
	"context"
	"time"

	"book-inventory-backend/internal/domains/book"
	"book-inventory-backend/pkg/cache"
	"book-inventory-backend/pkg/logger"

	"github.com/google/uuid"
)

const (
	bookCacheTTL = 10 * time.Minute
	listCacheKey = "books:all"
)

func bookCacheKey(id uuid.UUID) string {
	return "book:" + id.String()
}

type bookService struct {
	repo  book.Repository
	cache cache.Cache
}

func NewBookService(repo book.Repository, c cache.Cache) book.Service {
	return &bookService{
		repo:  repo,
		cache: c,
	}
}

// ListBooks returns every record. Read-through cached under books:all;
// cache trouble degrades to the database path, it never fails a request.
func (s *bookService) ListBooks(ctx context.Context) ([]book.Book, error) {
	var cached []book.Book
	found, err := s.cache.Get(ctx, listCacheKey, &cached)
	if err != nil {
		logger.Warn("cache read failed", err)
	}
	if found {
		return cached, nil
	}

	books, err := s.repo.ListBooks(ctx, nil)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, listCacheKey, books, bookCacheTTL); err != nil {
		logger.Warn("cache write failed", err)
	}

	return books, nil
}

// GetBook resolves a raw path-parameter id. An id the store would reject
// (not a UUID) is a normal not-found outcome, not a store failure.
func (s *bookService) GetBook(ctx context.Context, id string) (*book.Book, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, book.ErrBookNotFound
	}

	key := bookCacheKey(uid)

	var cached book.Book
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("cache read failed", err)
	}
	if found {
		return &cached, nil
	}

	b, err := s.repo.GetBookByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, b, bookCacheTTL); err != nil {
		logger.Warn("cache write failed", err)
	}

	return b, nil
}

// CreateBook validates the field bag, mints an id and persists the full
// record. Uniqueness of the id is the store's guarantee (primary key);
// the service does not detect collisions.
func (s *bookService) CreateBook(ctx context.Context, req *book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity := req.ToBook(uuid.New(), time.Now().UTC())

	if err := s.repo.CreateBook(ctx, entity); err != nil {
		return nil, err
	}

	s.invalidate(ctx, listCacheKey)

	return entity, nil
}

// UpdateBook passes the field bag through unvalidated: replace semantics,
// omitted fields null out the stored values (see UpdateBookRequest).
func (s *bookService) UpdateBook(ctx context.Context, id string, req *book.UpdateBookRequest) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return book.ErrBookNotFound
	}

	if err := s.repo.UpdateBook(ctx, uid, req, time.Now().UTC()); err != nil {
		return err
	}

	s.invalidate(ctx, bookCacheKey(uid), listCacheKey)

	return nil
}

func (s *bookService) DeleteBook(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return book.ErrBookNotFound
	}

	if err := s.repo.DeleteBook(ctx, uid); err != nil {
		return err
	}

	s.invalidate(ctx, bookCacheKey(uid), listCacheKey)

	return nil
}

// FilterBooks runs the filtered/sorted listing. Results are not cached:
// the bound/sort combinations fragment the key space for little gain.
func (s *bookService) FilterBooks(ctx context.Context, filter *book.BookFilter) ([]book.Book, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *bookService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("cache invalidation failed", err)
	}
}
