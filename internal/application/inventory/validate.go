package inventory

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// DefaultUserPassword contraseña inicial cuando el formulario no la informa.
const DefaultUserPassword = "123456"

// ── Entradas de las mutaciones (vocabulario interno) ──────────────────────────

type ProductInput struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	MinimumStock int    `json:"minimum_stock" validate:"gte=0"`
}

// ProductPatch actualización parcial; nil = sin cambio.
type ProductPatch struct {
	Name         *string `json:"name" validate:"omitnil,min=1"`
	Description  *string `json:"description"`
	MinimumStock *int    `json:"minimum_stock" validate:"omitnil,gte=0"`
}

type MovementInput struct {
	ProductID string              `json:"product_id" validate:"required"`
	Type      entity.MovementType `json:"type" validate:"required,oneof=entry exit"`
	Quantity  int                 `json:"quantity" validate:"gt=0"`
	Note      string              `json:"note"`
}

type UserInput struct {
	Username string      `json:"username" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     entity.Role `json:"role" validate:"required,oneof=admin collaborator"`
	Setor    string      `json:"setor" validate:"required"`
}

type UserPatch struct {
	Username *string      `json:"username" validate:"omitnil,min=1"`
	Password *string      `json:"password" validate:"omitnil,min=1"`
	Role     *entity.Role `json:"role" validate:"omitnil,oneof=admin collaborator"`
	Setor    *string      `json:"setor" validate:"omitnil,min=1"`
}

// ValidationError entrada rechazada antes de llamar al backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// check valida las etiquetas del struct y traduce el primer error.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fe := errs[0]
		return &ValidationError{Field: fe.Field(), Message: validationMessage(fe)}
	}
	return &ValidationError{Message: err.Error()}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "campo obligatorio"
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	}
	return "valor inválido"
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
