package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"painel_incentivos/internal/adapter/http/handlers/mocks"
	"painel_incentivos/internal/domain/entities"
	"painel_incentivos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProjectRouter(uc usecase.IProjectUseCase) *gin.Engine {
	h := NewProjectHandler(uc)
	r := gin.New()
	r.GET("/v1/projects", h.ListProjects)
	r.GET("/v1/projects/:id", h.GetProject)
	r.PATCH("/v1/projects/:id/approve", h.ApproveProject)
	r.PATCH("/v1/projects/:id/reject", h.RejectProject)
	r.PATCH("/v1/projects/:id/active", h.SetActive)
	r.PUT("/v1/projects/:id/sponsors", h.SetSponsors)
	r.DELETE("/v1/projects/:id", h.DeleteProject)
	return r
}

func TestProjectHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().List(gomock.Any()).Return([]usecase.ProjectView{
			{Project: entities.Project{ID: "p1", Nome: "A", Ativo: true}, LeiSigla: "LIE"},
		}, nil)

		w := doJSON(newProjectRouter(uc), http.MethodGet, "/v1/projects", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		if len(res) != 1 || res[0]["leiSigla"] != "LIE" {
			t.Fatalf("unexpected body: %v", res)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().Get(gomock.Any(), "nope").Return(usecase.ProjectView{}, usecase.ErrProjectNotFound)

		w := doJSON(newProjectRouter(uc), http.MethodGet, "/v1/projects/nope", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().Approve(gomock.Any(), "p1").Return(entities.Project{ID: "p1", Status: entities.ProjectStatusAprovado, Ativo: true}, nil)

		w := doJSON(newProjectRouter(uc), http.MethodPatch, "/v1/projects/p1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject with failed recompute", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().Reject(gomock.Any(), "p1").Return(entities.Project{}, usecase.ErrAggregationFailed)

		w := doJSON(newProjectRouter(uc), http.MethodPatch, "/v1/projects/p1/reject", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("set active requires flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)

		w := doJSON(newProjectRouter(uc), http.MethodPatch, "/v1/projects/p1/active", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set active false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().SetActive(gomock.Any(), "p1", false).Return(entities.Project{ID: "p1"}, nil)

		w := doJSON(newProjectRouter(uc), http.MethodPatch, "/v1/projects/p1/active", `{"ativo":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("sponsors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().SetSponsors(gomock.Any(), "p1", []entities.Sponsor{{Nome: "ACME", ValorAportado: 5000}}).
			Return(entities.Project{ID: "p1", Empresas: []entities.Sponsor{{Nome: "ACME", ValorAportado: 5000}}}, nil)

		w := doJSON(newProjectRouter(uc), http.MethodPut, "/v1/projects/p1/sponsors", `{"empresas":[{"nome":" ACME ","valorAportado":5000}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("sponsor without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)

		w := doJSON(newProjectRouter(uc), http.MethodPut, "/v1/projects/p1/sponsors", `{"empresas":[{"valorAportado":5000}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		uc.EXPECT().Delete(gomock.Any(), "p1").Return(nil)
		uc.EXPECT().Delete(gomock.Any(), "p2").Return(errors.New("db"))

		r := newProjectRouter(uc)
		if w := doJSON(r, http.MethodDelete, "/v1/projects/p1", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w := doJSON(r, http.MethodDelete, "/v1/projects/p2", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
