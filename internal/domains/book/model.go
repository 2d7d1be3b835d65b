package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is the canonical inventory record.
//
// Every data field is a pointer because PUT /bookChange has replace
// semantics: the whole record is overwritten from the request body and an
// omitted field is stored as NULL. The schema keeps all data columns
// nullable for the same reason (see migrations/0001_create_books.sql).
type Book struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           *string   `json:"title" db:"title"`
	Author          *string   `json:"author" db:"author"`
	PublicationYear *string   `json:"publication_year" db:"publication_year"`
	Genre           *string   `json:"genre" db:"genre"`
	Description     *string   `json:"description,omitempty" db:"description"`
	Price           *float64  `json:"price" db:"price"`
	Quantity        *int      `json:"quantity" db:"quantity"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// SortOrder selects the price ordering for filtered listings.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps the sortBy query parameter to a SortOrder.
// Anything other than "asc" or "desc" means store-natural order.
func ParseSortOrder(s string) SortOrder {
	switch s {
	case "asc":
		return SortAsc
	case "desc":
		return SortDesc
	}
	return SortNone
}

// BookFilter holds the optional constraints of a filtered listing.
// A nil bound means no constraint on that side; both bounds combine
// into a single AND-ed price range.
type BookFilter struct {
	MinPrice *int
	MaxPrice *int
	Sort     SortOrder
}
