package model

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"catalog-backend/internal/shared/validate"
)

var titlePattern = regexp.MustCompile(`^\w.*`)

// Validate checks every business constraint of a candidate book in a single
// pass, so a client sees all offending fields at once. Rules within a field
// stop at the first failure, so each field contributes at most one message;
// the result is ordered by field name. An empty result means the book is
// valid.
func (b Book) Validate() []string {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.Title,
			validation.Required.Error("a book must have a title"),
			validation.Match(titlePattern).Error("a title must start with a letter, a digit or _"),
		),
		validation.Field(&b.Rating,
			validation.Min(0).Error("a rating must be at least 0"),
			validation.Max(5).Error("a rating must be at most 5"),
		),
		validation.Field(&b.Kind,
			validation.In(BookKindPrint, BookKindKindle).Error("the kind of a book must be print or kindle"),
		),
		validation.Field(&b.Publisher,
			validation.Required.Error("a book must have a publisher"),
			validation.In(PublisherFoo, PublisherBar).Error("the publisher must be FOO_PRESS or BAR_PRESS"),
		),
		validation.Field(&b.Price,
			validation.Required.Error("a book must have a price"),
			validation.By(nonNegativePrice),
		),
		validation.Field(&b.Discount,
			validation.By(discountRange),
		),
		validation.Field(&b.ReleaseDate,
			validation.Date("2006-01-02").Error("the release date must be in the format yyyy-mm-dd"),
		),
		validation.Field(&b.ISBN,
			validation.Required.Error("a book must have an ISBN"),
			validation.By(checkISBN),
		),
		validation.Field(&b.Homepage,
			is.URL.Error("the homepage must be a valid URL"),
		),
		validation.Field(&b.Keywords,
			validation.By(keywordsNotBlank),
		),
	)
	return validate.Messages(err)
}

func nonNegativePrice(value interface{}) error {
	price, ok := value.(*decimal.Decimal)
	if !ok || price == nil {
		return nil
	}
	if price.IsNegative() {
		return errors.New("the price must not be negative")
	}
	return nil
}

func discountRange(value interface{}) error {
	discount, ok := value.(*decimal.Decimal)
	if !ok || discount == nil {
		return nil
	}
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(1)) {
		return errors.New("the discount must be between 0 and 1")
	}
	return nil
}

func checkISBN(value interface{}) error {
	isbn, _ := value.(string)
	if isbn == "" {
		return nil
	}
	if !validate.ISBN(isbn) {
		return errors.New("the ISBN is not valid")
	}
	return nil
}

func keywordsNotBlank(value interface{}) error {
	keywords, _ := value.([]Keyword)
	for _, keyword := range keywords {
		if keyword.Value == "" {
			return errors.New("a keyword must not be blank")
		}
	}
	return nil
}
