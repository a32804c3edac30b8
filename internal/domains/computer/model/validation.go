package model

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"catalog-backend/internal/shared/validate"
)

var manufacturerPattern = regexp.MustCompile(`^\w.*`)

// Validate checks every business constraint of a candidate computer in a
// single pass, so a client sees all offending fields at once. Rules within a
// field stop at the first failure, so each field contributes at most one
// message; the result is ordered by field name.
func (c Computer) Validate() []string {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Manufacturer,
			validation.Required.Error("a computer must have a manufacturer"),
			validation.Match(manufacturerPattern).Error("a manufacturer must start with a letter, a digit or _"),
		),
		validation.Field(&c.Model,
			validation.In(ComputerModelDesktop, ComputerModelGaming).Error("the model must be desktop-pc or gaming-pc"),
		),
		validation.Field(&c.ManufactureDate,
			validation.Date("2006-01-02").Error("the manufacture date must be in the format yyyy-mm-dd"),
		),
		validation.Field(&c.Price,
			validation.Required.Error("a computer must have a price"),
			validation.By(nonNegativePrice),
		),
		validation.Field(&c.Color,
			validation.In(ColorRed, ColorBlack).Error("the color must be red or black"),
		),
		validation.Field(&c.Serial,
			validation.Required.Error("a computer must have a serial number"),
			validation.By(checkSerial),
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

func checkSerial(value interface{}) error {
	serial, _ := value.(string)
	if serial == "" {
		return nil
	}
	if !validate.SerialNumber(serial) {
		return errors.New("the serial number is not valid")
	}
	return nil
}
