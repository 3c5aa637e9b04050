package routes

import (
	"painel_incentivos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathForms     = "/forms"
	PathProjects  = "/projects"
	PathDashboard = "/dashboard"
	PathLaws      = "/laws"
)

func addFormsRoutes(rg *gin.RouterGroup, h *handlers.FormsHandler) {
	forms := rg.Group(PathForms)
	{
		forms.POST("/cadastro", h.SubmitRegistration)
		forms.POST("/acompanhamento", h.SubmitFollowUp)
	}
}

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.GET("", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id/approve", h.ApproveProject)
		projects.PATCH("/:id/reject", h.RejectProject)
		projects.PATCH("/:id/active", h.SetActive)
		projects.PUT("/:id/sponsors", h.SetSponsors)
		projects.DELETE("/:id", h.DeleteProject)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/states", h.Overview)
		dashboard.GET("/states/:state", h.GetState)
		dashboard.POST("/states/:state/recompute", h.Recompute)
		dashboard.GET("/municipalities", h.Municipalities)
	}
}

func addLawRoutes(rg *gin.RouterGroup, h *handlers.LawHandler) {
	laws := rg.Group(PathLaws)
	{
		laws.POST("", h.CreateLaw)
		laws.GET("", h.ListLaws)
		laws.GET("/:id", h.GetLaw)
		laws.PUT("/:id", h.UpdateLaw)
		laws.DELETE("/:id", h.DeleteLaw)
	}
}
