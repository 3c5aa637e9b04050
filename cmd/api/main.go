package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"painel_incentivos/internal/adapter/http/routes"
	"painel_incentivos/internal/app"
	"painel_incentivos/internal/infrastructure/config"
	"painel_incentivos/internal/infrastructure/telemetry"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Painel de Incentivos API
// @version         1.0
// @description     Grant-management service: project forms, lifecycle and the per-state dashboard rollups.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	shutdown, err := telemetry.Setup("painel-incentivos-api", cfg.TraceStdout)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("[api][telemetry] flush failed err=%v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize the application: %w", err)
	}
	return routes.Run(ctx, cfg.Port, a)
}
