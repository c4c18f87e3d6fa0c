package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/onexocoder/Escova/internal/entity"

	"github.com/go-playground/validator/v10"
)

// Portuguese postal code, e.g. "1000-001".
var postalCodeRegexp = regexp.MustCompile(`^\d{4}-\d{3}$`)

// fieldMessages maps field+tag to the user-facing message shown on the order
// form. Every rule is evaluated independently so one response can carry all
// violations at once.
var fieldMessages = map[string]string{
	"name.required":          "Nome deve ter pelo menos 2 caracteres",
	"name.min":               "Nome deve ter pelo menos 2 caracteres",
	"phone.required":         "Telefone inválido",
	"phone.min":              "Telefone inválido",
	"address.required":       "Morada deve ter pelo menos 10 caracteres",
	"address.min":            "Morada deve ter pelo menos 10 caracteres",
	"postalCode.required":    "Código postal inválido (ex: 1000-001)",
	"postalCode.postal_code": "Código postal inválido (ex: 1000-001)",
	"quantity.required":      "Quantidade deve ser pelo menos 1",
	"quantity.gte":           "Quantidade deve ser pelo menos 1",
	"quantity.lte":           "Máximo 10 unidades por encomenda",
}

type Validator struct {
	validate *validator.Validate
}

func New() (*Validator, error) {
	const op = "validation.New"

	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("postal_code", func(fl validator.FieldLevel) bool {
		return postalCodeRegexp.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("%s: register postal_code: %w", op, err)
	}

	return &Validator{validate: validate}, nil
}

// ValidateOrder checks a candidate order against the schema rules. On failure
// it returns a *entity.ValidationError listing every violated field; the
// candidate is never partially accepted. No side effects.
func (v *Validator) ValidateOrder(order *entity.Order) error {
	const op = "validation.ValidateOrder"

	err := v.validate.Struct(order)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%s: %w", op, err)
	}

	fields := make([]entity.FieldError, 0, len(validationErrs))
	for _, ve := range validationErrs {
		fields = append(fields, entity.FieldError{
			Field:   ve.Field(),
			Message: messageFor(ve),
		})
	}

	return &entity.ValidationError{Fields: fields}
}

func messageFor(ve validator.FieldError) string {
	if msg, ok := fieldMessages[ve.Field()+"."+ve.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s must satisfy '%s'", ve.Field(), ve.Tag())
}
