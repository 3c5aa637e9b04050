package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("NOT_FOUND", "Projeto não encontrado", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound || e.Error() != "NOT_FOUND: Projeto não encontrado" {
			t.Fatalf("unexpected error: %+v", e)
		}
		body := e.ToHTTPError()
		if body.Code != "NOT_FOUND" || body.Fields != nil {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
	})

	t.Run("validation fields", func(t *testing.T) {
		e := NewValidationError(map[string]string{"cnpj": "invalid"}, http.StatusBadRequest)
		if e.ToHTTPError().Fields["cnpj"] != "invalid" || e.Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected validation error: %+v", e)
		}
	})
}
