package handlers

import (
	"errors"
	"net/http"

	"painel_incentivos/internal/adapter/http/dto/request"
	"painel_incentivos/internal/adapter/http/dto/response"
	"painel_incentivos/internal/usecase"
	"painel_incentivos/pkg"

	"github.com/gin-gonic/gin"
)

// FormsHandler receives the registration and follow-up forms.
type FormsHandler struct {
	usecase usecase.IFormsUseCase
}

func NewFormsHandler(uc usecase.IFormsUseCase) *FormsHandler {
	return &FormsHandler{usecase: uc}
}

// SubmitRegistration godoc
// @Summary      Submit a registration form
// @Description  Creates a pending project together with its registration form.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RegistrationRequest  true  "Registration form"
// @Success      201      {object}  response.ProjectResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /forms/cadastro [post]
func (h *FormsHandler) SubmitRegistration(c *gin.Context) {
	var payload request.RegistrationRequest
	if !bindJSON(c, &payload) {
		return
	}
	if writeValidation(c, payload.Validate()) {
		return
	}

	p, err := h.usecase.SubmitRegistration(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapFormsError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

// SubmitFollowUp godoc
// @Summary      Submit a follow-up form
// @Description  Records a follow-up form and applies its changes to the state rollups.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        payload  body      request.FollowUpRequest  true  "Follow-up form"
// @Success      201      {object}  response.FollowUpFormResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /forms/acompanhamento [post]
func (h *FormsHandler) SubmitFollowUp(c *gin.Context) {
	var payload request.FollowUpRequest
	if !bindJSON(c, &payload) {
		return
	}
	if writeValidation(c, payload.Validate()) {
		return
	}

	f, err := h.usecase.SubmitFollowUp(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, mapFormsError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFollowUpForm(f))
}

func mapFormsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidUserID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Projeto não encontrado", http.StatusNotFound)
	default:
		return pkg.NewDomainError("FORM_SUBMISSION_FAILED", "Falha ao registrar o formulário.", err, http.StatusInternalServerError)
	}
}
