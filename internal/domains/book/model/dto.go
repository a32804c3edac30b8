package model

import (
	"github.com/shopspring/decimal"
)

// BookRequest is the inbound payload for create and update. Identity, version
// and timestamps are deliberately absent: the server owns them.
type BookRequest struct {
	Title       string           `json:"title"`
	Rating      *int             `json:"rating"`
	Kind        *BookKind        `json:"kind"`
	Publisher   Publisher        `json:"publisher"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *decimal.Decimal `json:"discount"`
	Available   *bool            `json:"available"`
	ReleaseDate *string          `json:"release_date"`
	ISBN        string           `json:"isbn"`
	Homepage    *string          `json:"homepage"`
	Keywords    []string         `json:"keywords"`
}

// ToEntity builds a candidate Book from the payload. Keyword ids and the
// parent reference are assigned by the write pipeline on create.
func (r BookRequest) ToEntity() Book {
	keywords := make([]Keyword, len(r.Keywords))
	for i, value := range r.Keywords {
		keywords[i] = Keyword{Value: value}
	}

	return Book{
		Title:       r.Title,
		Rating:      r.Rating,
		Kind:        r.Kind,
		Publisher:   r.Publisher,
		Price:       r.Price,
		Discount:    r.Discount,
		Available:   r.Available,
		ReleaseDate: r.ReleaseDate,
		ISBN:        r.ISBN,
		Homepage:    r.Homepage,
		Keywords:    keywords,
	}
}

// BookFilter carries the supported read criteria: exact ISBN match and
// substring title match.
type BookFilter struct {
	Title string `form:"title"`
	ISBN  string `form:"isbn"`
}
