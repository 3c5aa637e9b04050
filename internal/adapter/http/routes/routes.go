package routes

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	_ "painel_incentivos/docs" // swagger spec
	"painel_incentivos/internal/adapter/http/handlers"
	"painel_incentivos/internal/adapter/http/validation"
	"painel_incentivos/internal/app"
	"painel_incentivos/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "painel-incentivos"

const shutdownTimeout = 10 * time.Second

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, port int, a *app.App) error {
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(port),
		Handler: NewRouter(a),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][server] listening addr=%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Printf("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewRouter builds the engine with every route of the API.
func NewRouter(a *app.App) *gin.Engine {
	validation.Register()

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	formsHandler := handlers.NewFormsHandler(a.Forms)
	projectHandler := handlers.NewProjectHandler(a.Projects)
	dashboardHandler := handlers.NewDashboardHandler(a.Dashboard, a.Engine)
	lawHandler := handlers.NewLawHandler(a.Laws)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFormsRoutes(v1, formsHandler)
	addProjectRoutes(v1, projectHandler)
	addDashboardRoutes(v1, dashboardHandler)
	addLawRoutes(v1, lawHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(otelgin.Middleware(serviceName))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
