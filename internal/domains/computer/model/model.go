package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComputerModel represents valid computer models
type ComputerModel string

const (
	ComputerModelDesktop ComputerModel = "desktop-pc"
	ComputerModelGaming  ComputerModel = "gaming-pc"
)

func (m ComputerModel) IsValid() bool {
	switch m {
	case ComputerModelDesktop, ComputerModelGaming:
		return true
	}
	return false
}

func (m ComputerModel) String() string {
	return string(m)
}

// Color represents valid case colors
type Color string

const (
	ColorRed   Color = "red"
	ColorBlack Color = "black"
)

func (c Color) IsValid() bool {
	switch c {
	case ColorRed, ColorBlack:
		return true
	}
	return false
}

func (c Color) String() string {
	return string(c)
}

// Computer represents the computer entity. ID, Version, CreatedAt and
// UpdatedAt are owned by the persistence layer and never taken from a client
// payload.
type Computer struct {
	// Identity
	ID      uuid.UUID `json:"id" db:"id"`
	Version int       `json:"version" db:"version"`

	// Business attributes
	Manufacturer    string           `json:"manufacturer" db:"manufacturer"`
	Model           *ComputerModel   `json:"model" db:"model"`
	ManufactureDate *string          `json:"manufacture_date" db:"manufacture_date"`
	Price           *decimal.Decimal `json:"price" db:"price"`
	Color           *Color           `json:"color" db:"color"`
	Serial          string           `json:"serial" db:"serial"`

	// Timestamps
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ApplyUpdate overlays the incoming business attributes onto the stored
// snapshot; identity, version and timestamps stay as stored.
func ApplyUpdate(stored *Computer, in Computer) {
	stored.Manufacturer = in.Manufacturer
	stored.Model = in.Model
	stored.ManufactureDate = in.ManufactureDate
	stored.Price = in.Price
	stored.Color = in.Color
	stored.Serial = in.Serial
}
