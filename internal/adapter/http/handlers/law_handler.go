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

type LawHandler struct {
	usecase usecase.ILawUseCase
}

func NewLawHandler(uc usecase.ILawUseCase) *LawHandler {
	return &LawHandler{usecase: uc}
}

// CreateLaw godoc
// @Summary  Register an incentive law
// @Tags     laws
// @Accept   json
// @Produce  json
// @Param    payload  body      request.LawRequest  true  "Law"
// @Success  201      {object}  response.LawResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /laws [post]
func (h *LawHandler) CreateLaw(c *gin.Context) {
	var payload request.LawRequest
	if !bindJSON(c, &payload) {
		return
	}
	l, err := h.usecase.Create(c.Request.Context(), payload.Nome, payload.Sigla)
	if err != nil {
		writeError(c, mapLawError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLaw(l))
}

// ListLaws godoc
// @Summary  List incentive laws
// @Tags     laws
// @Produce  json
// @Success  200  {array}  response.LawResponse
// @Router   /laws [get]
func (h *LawHandler) ListLaws(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapLawError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaws(list))
}

// GetLaw godoc
// @Summary  Get an incentive law
// @Tags     laws
// @Produce  json
// @Param    id   path      string  true  "Law ID"
// @Success  200  {object}  response.LawResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /laws/{id} [get]
func (h *LawHandler) GetLaw(c *gin.Context) {
	l, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapLawError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaw(l))
}

// UpdateLaw godoc
// @Summary  Update an incentive law
// @Tags     laws
// @Accept   json
// @Produce  json
// @Param    id       path      string              true  "Law ID"
// @Param    payload  body      request.LawRequest  true  "Law"
// @Success  200      {object}  response.LawResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /laws/{id} [put]
func (h *LawHandler) UpdateLaw(c *gin.Context) {
	var payload request.LawRequest
	if !bindJSON(c, &payload) {
		return
	}
	l, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.Nome, payload.Sigla)
	if err != nil {
		writeError(c, mapLawError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLaw(l))
}

// DeleteLaw godoc
// @Summary  Delete an incentive law
// @Tags     laws
// @Param    id   path  string  true  "Law ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /laws/{id} [delete]
func (h *LawHandler) DeleteLaw(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapLawError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLawError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLaw):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrLawNotFound):
		return pkg.NewDomainErrorSimple("LAW_NOT_FOUND", "Lei não encontrada", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
