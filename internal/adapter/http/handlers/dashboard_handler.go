package handlers

import (
	"errors"
	"net/http"
	"strings"

	"painel_incentivos/internal/adapter/http/dto/response"
	"painel_incentivos/internal/usecase"
	"painel_incentivos/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the state rollups and the admin recompute.
type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
	engine    usecase.IRecomputeEngine
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, engine usecase.IRecomputeEngine) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, engine: engine}
}

// Overview godoc
// @Summary  Combined view of every state with projects
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.OverviewResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /dashboard/states [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	o, err := h.dashboard.Overview(c.Request.Context())
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOverview(o))
}

// GetState godoc
// @Summary  Rollup of one state
// @Tags     dashboard
// @Produce  json
// @Param    state  path      string  true  "State name or slug"
// @Success  200    {object}  response.StateRollupResponse
// @Failure  404    {object}  pkg.HTTPError
// @Router   /dashboard/states/{state} [get]
func (h *DashboardHandler) GetState(c *gin.Context) {
	r, err := h.dashboard.GetState(c.Request.Context(), c.Param("state"))
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStateRollup(r))
}

// Municipalities godoc
// @Summary  Rollup built from the projects of the selected municipalities
// @Tags     dashboard
// @Produce  json
// @Param    m    query     []string  true  "Municipality (repeatable or comma separated)"
// @Success  200  {object}  response.StateRollupResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /dashboard/municipalities [get]
func (h *DashboardHandler) Municipalities(c *gin.Context) {
	var municipios []string
	for _, v := range c.QueryArray("m") {
		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				municipios = append(municipios, m)
			}
		}
	}

	r, err := h.dashboard.CombineMunicipalities(c.Request.Context(), municipios)
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStateRollup(r))
}

// Recompute godoc
// @Summary  Rebuild a state rollup from scratch
// @Tags     dashboard
// @Produce  json
// @Param    state  path      string  true  "State name or slug"
// @Success  200    {object}  response.StateRollupResponse
// @Failure  404    {object}  pkg.HTTPError
// @Failure  500    {object}  pkg.HTTPError
// @Router   /dashboard/states/{state}/recompute [post]
func (h *DashboardHandler) Recompute(c *gin.Context) {
	r, err := h.engine.RecomputeState(c.Request.Context(), c.Param("state"))
	if err != nil {
		writeError(c, mapDashboardError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStateRollup(r))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoMunicipalities):
		return pkg.NewValidationError(map[string]string{"m": "Selecione pelo menos um município."}, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownState):
		return pkg.NewDomainErrorSimple("UNKNOWN_STATE", "Estado desconhecido", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRollupNotFound):
		return pkg.NewDomainErrorSimple("ROLLUP_NOT_FOUND", "Dados do estado não encontrados", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
