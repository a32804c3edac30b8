package model

import (
	"github.com/shopspring/decimal"
)

// ComputerRequest is the inbound payload for create and update.
type ComputerRequest struct {
	Manufacturer    string           `json:"manufacturer"`
	Model           *ComputerModel   `json:"model"`
	ManufactureDate *string          `json:"manufacture_date"`
	Price           *decimal.Decimal `json:"price"`
	Color           *Color           `json:"color"`
	Serial          string           `json:"serial"`
}

func (r ComputerRequest) ToEntity() Computer {
	return Computer{
		Manufacturer:    r.Manufacturer,
		Model:           r.Model,
		ManufactureDate: r.ManufactureDate,
		Price:           r.Price,
		Color:           r.Color,
		Serial:          r.Serial,
	}
}

// ComputerFilter carries the supported read criteria: exact serial match and
// substring manufacturer match.
type ComputerFilter struct {
	Manufacturer string `form:"manufacturer"`
	Serial       string `form:"serial"`
}
