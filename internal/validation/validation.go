package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Domenick1991/ferrybooking/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^\+380\d{9}$`)
	datePattern  = regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`)
)

// Voyage years are two-digit and limited to the sailing season the line sells.
const (
	minVoyageYear = 24
	maxVoyageYear = 25
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("voyagedate", func(fl validator.FieldLevel) bool {
		return ValidDate(fl.Field().String())
	})
	return v
}

func ValidPhone(number string) bool {
	return phonePattern.MatchString(number)
}

// ValidDate accepts dd/mm/yy for years 24-25, checking the real month length.
func ValidDate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}

	parts := strings.Split(date, "/")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if year < minVoyageYear || year > maxVoyageYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth(month, year)
}

func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// ValidPrice reports whether price lies strictly inside the band of class.
func ValidPrice(class domain.CabinClass, price float64) bool {
	band, ok := domain.PriceBandFor(class)
	if !ok {
		return false
	}
	return band.Contains(price)
}

// Struct runs the tag rules of v. Failures wrap domain.ErrValidation.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "phone":
		return fmt.Sprintf("%s must match +380xxxxxxxxx", strings.ToLower(fe.Field()))
	case "voyagedate":
		return fmt.Sprintf("%s must be a dd/mm/yy date in 20%d-20%d", strings.ToLower(fe.Field()), minVoyageYear, maxVoyageYear)
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", strings.ToLower(fe.Field()), strings.ToLower(fe.Param()))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", strings.ToLower(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag())
	}
}
