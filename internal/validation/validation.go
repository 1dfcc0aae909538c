package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

var nonDigits = regexp.MustCompile(`\D`)

// Validator проверяет входные модели по тегам validate и собирает ошибки по полям
type Validator struct {
	validate *validator.Validate
}

// New создает валидатор с тегом phone и именами полей из json-тегов
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return PhoneDigits(fl.Field().String()) >= domain.MinPhoneDigits
	})
	return &Validator{validate: v}
}

// Struct проверяет структуру. Возвращает *domain.ValidationError или nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr := domain.NewValidationError()
		verr.Add("_", err.Error())
		return verr
	}

	verr := domain.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), message(fe))
	}
	return verr
}

// PhoneDigits возвращает количество цифр в номере телефона
func PhoneDigits(phone string) int {
	return len(nonDigits.ReplaceAllString(phone, ""))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return fmt.Sprintf("must contain at least %d digits", domain.MinPhoneDigits)
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
