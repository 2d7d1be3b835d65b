package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateBookRequest is the body of POST /newBook.
// Pointer fields distinguish "absent" from the zero value, which matters
// for numerics: a price of 0 is valid, a missing price is not.
type CreateBookRequest struct {
	Title           *string  `json:"title"`
	Author          *string  `json:"author"`
	PublicationYear *string  `json:"publication_year"`
	Genre           *string  `json:"genre"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Quantity        *int     `json:"quantity"`
}

// Validate enforces the create contract: all fields except description are
// required, text fields must be non-empty. Wrong primitive kinds (a string
// price, say) never reach this point, JSON binding rejects them first.
func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Author, validation.Required),
		validation.Field(&r.PublicationYear, validation.Required),
		validation.Field(&r.Genre, validation.Required),
		validation.Field(&r.Price, validation.NotNil),
		validation.Field(&r.Quantity, validation.NotNil),
	)
}

// ToBook builds the entity to persist, with a freshly minted id.
func (r CreateBookRequest) ToBook(id uuid.UUID, now time.Time) *Book {
	return &Book{
		ID:              id,
		Title:           r.Title,
		Author:          r.Author,
		PublicationYear: r.PublicationYear,
		Genre:           r.Genre,
		Description:     r.Description,
		Price:           r.Price,
		Quantity:        r.Quantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// UpdateBookRequest is the body of PUT /bookChange/:id.
//
// All fields are optional on the wire and there is no re-validation:
// the update replaces every data column with the supplied value, so an
// omitted field overwrites the stored value with NULL. Replace
// semantics, not partial update.
type UpdateBookRequest struct {
	Title           *string  `json:"title"`
	Author          *string  `json:"author"`
	PublicationYear *string  `json:"publication_year"`
	Genre           *string  `json:"genre"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Quantity        *int     `json:"quantity"`
}
