package types

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNegativePrice is returned when a price would drop below zero.
var ErrNegativePrice = errors.New("price must not be negative")

// Price is a non-negative monetary amount in the store currency. The zero value is a
// valid price of 0.
type Price struct {
	amount decimal.Decimal
}

// NewPrice validates the amount and wraps it.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	return Price{amount: amount}, nil
}

// ParsePrice parses a decimal string such as "19.99".
func ParsePrice(value string) (Price, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, fmt.Errorf("parse price %q: %w", value, err)
	}
	return NewPrice(amount)
}

// MustPrice is ParsePrice for literals; it panics on invalid input.
func MustPrice(value string) Price {
	p, err := ParsePrice(value)
	if err != nil {
		panic(err)
	}
	return p
}

// Decimal exposes the underlying amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

func (p Price) IsPositive() bool {
	return p.amount.IsPositive()
}

func (p Price) Equal(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) LessThan(other Price) bool {
	return p.amount.LessThan(other.amount)
}

// Mul returns the line total for qty units.
func (p Price) Mul(qty int) Price {
	return Price{amount: p.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount)}
}

// Diff returns the absolute difference between two prices.
func (p Price) Diff(other Price) decimal.Decimal {
	return p.amount.Sub(other.amount).Abs()
}

// MinPrice returns the lower of the two prices.
func MinPrice(a, b Price) Price {
	if b.LessThan(a) {
		return b
	}
	return a
}

// String renders the amount with two decimal places.
func (p Price) String() string {
	return p.amount.StringFixed(2)
}

// MarshalJSON renders the price as a JSON string to avoid float rounding.
func (p Price) MarshalJSON() ([]byte, error) {
	return p.amount.MarshalJSON()
}

// UnmarshalJSON accepts both quoted and bare numbers and rejects negatives.
func (p *Price) UnmarshalJSON(data []byte) error {
	var amount decimal.Decimal
	if err := amount.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := NewPrice(amount)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer for numeric columns.
func (p Price) Value() (driver.Value, error) {
	return p.amount.Value()
}

// Scan implements sql.Scanner for numeric columns.
func (p *Price) Scan(value interface{}) error {
	var amount decimal.Decimal
	if err := amount.Scan(value); err != nil {
		return err
	}
	parsed, err := NewPrice(amount)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
