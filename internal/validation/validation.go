// validation проверяет входные DTO по struct-тегам (go-playground/validator)
// и приводит результат к единому типу *Error, который транспорт отдаёт как 400.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError — ошибка конкретного поля (имя поля берётся из json-тега).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error — ошибка валидации входных данных.
type Error struct {
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string { return e.Message }

// New создаёт ошибку валидации с произвольным сообщением.
func New(msg string) *Error {
	return &Error{Message: msg}
}

// As извлекает *Error из цепочки ошибок.
func As(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}

	return nil, false
}

var (
	validate *validator.Validate
	once     sync.Once
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}

			return name
		})
	})

	return validate
}

// Struct проверяет структуру по тегам `validate:"..."`.
// Возвращает nil или *Error с перечнем полей.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return New("validation failed")
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		f := FieldError{Field: fe.Field(), Message: describe(fe)}
		out.Fields = append(out.Fields, f)
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	out.Message = strings.Join(msgs, "; ")

	return out
}

// MissingFields сообщает, что среди ошибок есть только отсутствующие обязательные поля.
func (e *Error) MissingFields() bool {
	if len(e.Fields) == 0 {
		return false
	}

	for _, f := range e.Fields {
		if f.Message != "is required" {
			return false
		}
	}

	return true
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "url", "http_url":
		return "must be a valid URL"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "is invalid"
	}
}
