package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"painel_incentivos/internal/adapter/http/handlers/mocks"
	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDashboardRouter(d usecase.IDashboardUseCase, e usecase.IRecomputeEngine) *gin.Engine {
	h := NewDashboardHandler(d, e)
	r := gin.New()
	r.GET("/v1/dashboard/states", h.Overview)
	r.GET("/v1/dashboard/states/:state", h.GetState)
	r.POST("/v1/dashboard/states/:state/recompute", h.Recompute)
	r.GET("/v1/dashboard/municipalities", h.Municipalities)
	return r
}

func TestDashboardHandler(t *testing.T) {
	t.Run("overview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIDashboardUseCase(ctrl)
		e := mocks.NewMockIRecomputeEngine(ctrl)
		d.EXPECT().Overview(gomock.Any()).Return(usecase.Overview{
			Rollup:            entities.StateRollup{NomeEstado: "Todos", QtdProjetos: 3},
			ProjetosPorEstado: map[string]int{"Acre": 1, "São Paulo": 2},
			EstadosAtendidos:  2,
		}, nil)

		w := doJSON(newDashboardRouter(d, e), http.MethodGet, "/v1/dashboard/states", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if res["nomeEstado"] != "Todos" || res["estadosAtendidos"] != float64(2) {
			t.Fatalf("unexpected body: %v", res)
		}
		if _, ok := res["municipiosRef"]; ok {
			t.Fatalf("reference counts must not be exposed")
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIDashboardUseCase(ctrl)
		e := mocks.NewMockIRecomputeEngine(ctrl)
		d.EXPECT().GetState(gomock.Any(), "atlantida").Return(entities.StateRollup{}, usecase.ErrUnknownState)

		w := doJSON(newDashboardRouter(d, e), http.MethodGet, "/v1/dashboard/states/atlantida", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing rollup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIDashboardUseCase(ctrl)
		e := mocks.NewMockIRecomputeEngine(ctrl)
		d.EXPECT().GetState(gomock.Any(), "acre").Return(entities.StateRollup{}, usecase.ErrRollupNotFound)

		w := doJSON(newDashboardRouter(d, e), http.MethodGet, "/v1/dashboard/states/acre", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("municipalities split and trimmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIDashboardUseCase(ctrl)
		e := mocks.NewMockIRecomputeEngine(ctrl)
		d.EXPECT().CombineMunicipalities(gomock.Any(), []string{"Campinas", "Santos", "Niterói"}).
			Return(entities.StateRollup{NomeEstado: "Campinas, Santos, Niterói", QtdProjetos: 2}, nil)

		w := doJSON(newDashboardRouter(d, e), http.MethodGet, "/v1/dashboard/municipalities?m=Campinas,%20Santos&m=Niter%C3%B3i", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("municipalities empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIDashboardUseCase(ctrl)
		e := mocks.NewMockIRecomputeEngine(ctrl)
		d.EXPECT().CombineMunicipalities(gomock.Any(), gomock.Nil()).Return(entities.StateRollup{}, usecase.ErrNoMunicipalities)

		w := doJSON(newDashboardRouter(d, e), http.MethodGet, "/v1/dashboard/municipalities", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("recompute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := mocks.NewMockIDashboardUseCase(ctrl)
		e := mocks.NewMockIRecomputeEngine(ctrl)
		e.EXPECT().RecomputeState(gomock.Any(), "sao_paulo").Return(entities.StateRollup{ID: "sao_paulo", NomeEstado: "São Paulo"}, nil)

		w := doJSON(newDashboardRouter(d, e), http.MethodPost, "/v1/dashboard/states/sao_paulo/recompute", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
