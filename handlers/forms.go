package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookshelf/models"
)

var (
	yearMessage   = fmt.Sprintf("Year must be between %d and %d.", models.MIN_YEAR, models.MAX_YEAR)
	statusMessage = fmt.Sprintf("Read Status must be %s or %s.", models.Read, models.Unread)
)

// bookForm is what the Add and Edit forms post.
type bookForm struct {
	Title      string `form:"title"`
	Author     string `form:"author"`
	Year       int    `form:"year" binding:"gte=0,lte=2100"`
	Genre      string `form:"genre"`
	ReadStatus string `form:"read_status" binding:"required,oneof=Read Unread"`
}

func defaultBookForm() bookForm {
	return bookForm{Year: models.DEFAULT_YEAR, ReadStatus: string(models.Read)}
}

func formFromBook(b models.Book) bookForm {
	return bookForm{
		Title:      b.Title,
		Author:     b.Author,
		Year:       b.Year,
		Genre:      b.Genre,
		ReadStatus: string(b.ReadStatus),
	}
}

func (f bookForm) missingRequired() bool {
	return f.Title == "" || f.Author == ""
}

func (f bookForm) book() models.Book {
	return models.Book{
		Title:      f.Title,
		Author:     f.Author,
		Year:       f.Year,
		Genre:      f.Genre,
		ReadStatus: models.ReadStatus(f.ReadStatus),
	}
}

// bindErrorMessage names only the fields that failed to bind.
func bindErrorMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Year is the only field parsed from text.
		return yearMessage
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Year":
			messages = append(messages, yearMessage)
		case "ReadStatus":
			messages = append(messages, statusMessage)
		default:
			messages = append(messages, fe.Error())
		}
	}
	return strings.Join(messages, " ")
}
