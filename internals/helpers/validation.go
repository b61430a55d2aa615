package helper

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// issues report the JSON name, not the Go field name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs struct validation and turns the result into issues.
// A nil slice means the payload is valid.
func ValidateStruct(v any) []Issue {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []Issue{{Field: "", Message: err.Error()}}
	}
	out := make([]Issue, 0, len(ve))
	for _, fe := range ve {
		out = append(out, Issue{Field: fe.Field(), Message: issueMessage(fe)})
	}
	return out
}

// Normalizer is implemented by request DTOs that trim/lowercase input.
type Normalizer interface {
	Normalize()
}

// BindAndValidate parses the JSON body into dst, normalizes it and validates it.
// It writes the 400 response itself and returns handled=true when the
// caller must stop.
func BindAndValidate(c *fiber.Ctx, dst any) (handled bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return true, JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	if issues := ValidateStruct(dst); len(issues) > 0 {
		return true, JsonValidationError(c, issues)
	}
	return false, nil
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "url":
		return "URL inválida"
	case "uuid", "uuid4":
		return "identificador inválido"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("deve ter no mínimo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "len":
		return fmt.Sprintf("deve ter exatamente %s caracteres", fe.Param())
	case "oneof":
		return "valor deve ser um de: " + strings.Join(oneofValues(fe.Param()), ", ")
	case "hexcolor":
		return "cor hexadecimal inválida"
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	default:
		return "valor inválido"
	}
}

var oneofRe = regexp.MustCompile(`'[^']*'|\S+`)

// oneofValues splits a oneof param, honoring single-quoted values.
func oneofValues(param string) []string {
	vals := oneofRe.FindAllString(param, -1)
	for i, v := range vals {
		vals[i] = strings.Trim(v, "'")
	}
	return vals
}
