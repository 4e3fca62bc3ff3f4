package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MIN_YEAR     = 0
	MAX_YEAR     = 2100
	DEFAULT_YEAR = 2023
)

var (
	ErrInvalidBook      = errors.New("invalid book")
	ErrBookNotFound     = errors.New("book not found")
	ErrMalformedLibrary = errors.New("malformed library document")
)

type Book struct {
	Title      string     `json:"Title" validate:"required"`
	Author     string     `json:"Author" validate:"required"`
	Year       int        `json:"Year" validate:"gte=0,lte=2100"`
	Genre      string     `json:"Genre"`
	ReadStatus ReadStatus `json:"Read Status" validate:"oneof=Read Unread"`
}

type ReadStatus string

const (
	Read   ReadStatus = "Read"
	Unread ReadStatus = "Unread"
)

// ReadStatuses lists the selectable values in display order
var ReadStatuses = []ReadStatus{Read, Unread}

// ParseReadStatus accepts exactly "Read" or "Unread"
func ParseReadStatus(s string) (ReadStatus, error) {
	switch ReadStatus(s) {
	case Read, Unread:
		return ReadStatus(s), nil
	}
	return "", fmt.Errorf("%w: read status must be %q or %q, got %q", ErrInvalidBook, Read, Unread, s)
}

// UnmarshalJSON rejects anything but the two known statuses
func (rs *ReadStatus) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: read status must be a string: %v", ErrInvalidBook, err)
	}
	parsed, err := ParseReadStatus(s)
	if err != nil {
		return err
	}
	*rs = parsed
	return nil
}

func (rs ReadStatus) String() string {
	return string(rs)
}

var validate = validator.New()

// Validate checks the fields a record needs before it may enter a library.
func (b *Book) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidBook, err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidBook, strings.Join(problems, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte", "lte":
		return fmt.Sprintf("%s must be between %d and %d", fe.Field(), MIN_YEAR, MAX_YEAR)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
}

// IsRead reports whether the book has been read
func (b Book) IsRead() bool {
	return b.ReadStatus == Read
}
