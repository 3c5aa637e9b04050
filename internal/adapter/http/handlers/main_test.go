package handlers

import (
	"os"
	"testing"

	"painel_incentivos/internal/adapter/http/validation"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validation.Register()
	os.Exit(m.Run())
}
