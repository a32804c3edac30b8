package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookKind represents valid book kinds
type BookKind string

const (
	BookKindPrint  BookKind = "print"
	BookKindKindle BookKind = "kindle"
)

func (k BookKind) IsValid() bool {
	switch k {
	case BookKindPrint, BookKindKindle:
		return true
	}
	return false
}

func (k BookKind) String() string {
	return string(k)
}

// Publisher represents valid publishers
type Publisher string

const (
	PublisherFoo Publisher = "FOO_PRESS"
	PublisherBar Publisher = "BAR_PRESS"
)

func (p Publisher) IsValid() bool {
	switch p {
	case PublisherFoo, PublisherBar:
		return true
	}
	return false
}

func (p Publisher) String() string {
	return string(p)
}

// Keyword is a child record owned by exactly one book. Keywords are created
// together with their parent, deleted together with their parent, and never
// updated in place.
type Keyword struct {
	ID     uuid.UUID `json:"id" db:"id"`
	BookID uuid.UUID `json:"book_id" db:"book_id"`
	Value  string    `json:"value" db:"value"`
}

// Book represents the main book entity. ID, Version, CreatedAt and UpdatedAt
// are owned by the persistence layer and never taken from a client payload.
type Book struct {
	// Identity
	ID      uuid.UUID `json:"id" db:"id"`
	Version int       `json:"version" db:"version"`

	// Business attributes
	Title       string           `json:"title" db:"title"`
	Rating      *int             `json:"rating" db:"rating"`
	Kind        *BookKind        `json:"kind" db:"kind"`
	Publisher   Publisher        `json:"publisher" db:"publisher"`
	Price       *decimal.Decimal `json:"price" db:"price"`
	Discount    *decimal.Decimal `json:"discount" db:"discount"`
	Available   *bool            `json:"available" db:"available"`
	ReleaseDate *string          `json:"release_date" db:"release_date"`
	ISBN        string           `json:"isbn" db:"isbn"`
	Homepage    *string          `json:"homepage" db:"homepage"`

	// Child records
	Keywords []Keyword `json:"keywords"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StripISBNDashes normalizes an ISBN before persistence and uniqueness
// lookups, so "978-0-201-63361-0" and "9780201633610" are the same key.
func StripISBNDashes(isbn string) string {
	return strings.ReplaceAll(isbn, "-", "")
}

// ApplyUpdate overlays the incoming business attributes onto the stored
// snapshot. Identity, version, timestamps and keywords stay as stored: the
// version is bumped by the repository and keywords are only ever written
// alongside creation.
func ApplyUpdate(stored *Book, in Book) {
	stored.Title = in.Title
	stored.Rating = in.Rating
	stored.Kind = in.Kind
	stored.Publisher = in.Publisher
	stored.Price = in.Price
	stored.Discount = in.Discount
	stored.Available = in.Available
	stored.ReleaseDate = in.ReleaseDate
	stored.ISBN = in.ISBN
	stored.Homepage = in.Homepage
}
