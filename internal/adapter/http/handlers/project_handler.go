package handlers

import (
	"context"
	"errors"
	"net/http"

	"painel_incentivos/internal/adapter/http/dto/request"
	"painel_incentivos/internal/adapter/http/dto/response"
	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase"
	"painel_incentivos/pkg"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves the administrator project screens.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// ListProjects godoc
// @Summary  List projects, active first then by name
// @Tags     projects
// @Produce  json
// @Success  200  {array}   response.ProjectResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectViews(list))
}

// GetProject godoc
// @Summary  Get a project
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  response.ProjectResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	v, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjectView(v))
}

// ApproveProject godoc
// @Summary  Approve a project and schedule its follow-up reminders
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  response.ProjectResponse
// @Failure  404  {object}  pkg.HTTPError
// @Failure  500  {object}  pkg.HTTPError
// @Router   /projects/{id}/approve [patch]
func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	h.patchProject(c, h.usecase.Approve)
}

// RejectProject godoc
// @Summary  Reject a project
// @Tags     projects
// @Produce  json
// @Param    id   path      string  true  "Project ID"
// @Success  200  {object}  response.ProjectResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /projects/{id}/reject [patch]
func (h *ProjectHandler) RejectProject(c *gin.Context) {
	h.patchProject(c, h.usecase.Reject)
}

// SetActive godoc
// @Summary  Activate or deactivate a project
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    id       path      string                 true  "Project ID"
// @Param    payload  body      request.ActiveRequest  true  "Active flag"
// @Success  200      {object}  response.ProjectResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /projects/{id}/active [patch]
func (h *ProjectHandler) SetActive(c *gin.Context) {
	var payload request.ActiveRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.patchProject(c, func(ctx context.Context, id string) (entities.Project, error) {
		return h.usecase.SetActive(ctx, id, *payload.Ativo)
	})
}

// SetSponsors godoc
// @Summary  Replace the sponsors linked to a project
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    id       path      string                   true  "Project ID"
// @Param    payload  body      request.SponsorsRequest  true  "Sponsors"
// @Success  200      {object}  response.ProjectResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /projects/{id}/sponsors [put]
func (h *ProjectHandler) SetSponsors(c *gin.Context) {
	var payload request.SponsorsRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.patchProject(c, func(ctx context.Context, id string) (entities.Project, error) {
		return h.usecase.SetSponsors(ctx, id, payload.ToEntities())
	})
}

// DeleteProject godoc
// @Summary  Delete a project with its forms
// @Tags     projects
// @Param    id   path  string  true  "Project ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) patchProject(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Project, error),
) {
	p, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapProjectError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidSponsor):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Projeto não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAggregationFailed):
		return pkg.NewDomainError("AGGREGATION_FAILED", "Falha ao atualizar os dados dos estados.", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
