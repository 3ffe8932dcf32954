package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type State string

const (
	StateEditing   State = "editing"
	StateConfirmed State = "confirmed"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrAlreadyConfirmed = errors.New("order already confirmed")
)

const (
	FieldFullName = "fullname"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldAddress  = "address"
	FieldPayment  = "payment"
)

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// Billing holds the checkout form fields.
type Billing struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Payment  string
}

func (b Billing) Normalize() Billing {
	return Billing{
		FullName: strings.TrimSpace(b.FullName),
		Email:    strings.TrimSpace(b.Email),
		Phone:    strings.TrimSpace(b.Phone),
		Address:  strings.TrimSpace(b.Address),
		Payment:  strings.TrimSpace(b.Payment),
	}
}

// Validate reports the first empty required field in form order. The
// payment method is optional.
func (b Billing) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{FieldFullName, b.FullName},
		{FieldEmail, b.Email},
		{FieldPhone, b.Phone},
		{FieldAddress, b.Address},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

type ConfirmationLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Confirmation struct {
	OrderNumber string
	Billing     Billing
	Lines       []ConfirmationLine
	Total       decimal.Decimal
	ConfirmedAt time.Time
	Text        string
}
