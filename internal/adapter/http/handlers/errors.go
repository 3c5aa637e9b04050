package handlers

import (
	"net/http"

	"painel_incentivos/internal/adapter/http/validation"
	"painel_incentivos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON binds the body into dst and writes a 400 with the field messages
// when binding fails.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, pkg.NewValidationError(validation.FieldErrors(err), http.StatusBadRequest))
		return false
	}
	return true
}

func writeValidation(c *gin.Context, fields map[string]string) bool {
	if len(fields) == 0 {
		return false
	}
	writeError(c, pkg.NewValidationError(fields, http.StatusBadRequest))
	return true
}
