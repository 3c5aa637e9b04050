// Package validation registers the custom binding rules of the form payloads
// on gin's validator and turns validation failures into field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// Register installs the cnpj rule and reports JSON field names in errors.
// It is safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
			return ValidCNPJ(fl.Field().String())
		})
	})
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// ValidCNPJ checks the length and both check digits of a CNPJ, ignoring
// punctuation.
func ValidCNPJ(s string) bool {
	digits := make([]int, 0, 14)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	if len(digits) != 14 {
		return false
	}
	same := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}
	return checkDigit(digits[:12]) == digits[12] && checkDigit(digits[:13]) == digits[13]
}

func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) - 7
	for _, d := range digits {
		sum += d * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

// FieldErrors maps a binding error to field -> message. Errors that are not
// validation errors (malformed JSON) are reported under "body".
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "Corpo da requisição inválido."}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório."
	case "email":
		return "Formato de e-mail inválido."
	case "cnpj":
		return "O CNPJ informado não é válido."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Mínimo de %s caracteres.", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Selecione pelo menos %s.", fe.Param())
		}
		return fmt.Sprintf("O valor deve ser no mínimo %s.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Máximo de %s caracteres permitidos.", fe.Param())
		}
		return fmt.Sprintf("O valor deve ser no máximo %s.", fe.Param())
	case "gt":
		return "O valor deve ser maior que zero."
	case "gte":
		return "O valor deve ser zero ou maior."
	case "datetime":
		return "Data inválida (use AAAA-MM-DD)."
	case "len":
		return fmt.Sprintf("Deve conter %s itens.", fe.Param())
	default:
		return "Valor inválido."
	}
}
