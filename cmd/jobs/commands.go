package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"painel_incentivos/internal/app"
	"painel_incentivos/internal/infrastructure/config"
	"painel_incentivos/internal/infrastructure/telemetry"

	"github.com/spf13/cobra"
)

// appFactory builds the application and the tracer flush; tests swap it for
// an in-memory one.
var appFactory = func(ctx context.Context) (*app.App, telemetry.ShutdownFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	shutdown, err := telemetry.Setup("painel-incentivos-jobs", cfg.TraceStdout)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}
	return a, shutdown, nil
}

const flushTimeout = 5 * time.Second

// withApp runs fn against a freshly built application and flushes the
// pending spans once it returns, whether or not fn failed.
func withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	a, shutdown, err := appFactory(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			log.Printf("[jobs][telemetry] flush failed err=%v", err)
		}
	}()
	return fn(a)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobs",
		Short:         "Scheduled maintenance jobs of the incentives panel",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newDeactivateExpiredCmd(), newNotifyFollowUpsCmd(), newRecomputeCmd())
	return root
}

func newDeactivateExpiredCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate-expired",
		Short: "Deactivate projects whose registration end date has passed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				n, err := a.Projects.DeactivateExpired(cmd.Context(), time.Now().UTC())
				if err != nil {
					return fmt.Errorf("deactivate expired: %w", err)
				}
				log.Printf("[jobs][deactivate] done deactivated=%d", n)
				fmt.Fprintf(cmd.OutOrStdout(), "deactivated %d project(s)\n", n)
				return nil
			})
		},
	}
}

func newNotifyFollowUpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notify-followups",
		Short: "Send the follow-up reminders that are due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app.App) error {
				n, err := a.Projects.DispatchDueNotifications(cmd.Context(), time.Now().UTC())
				if err != nil {
					return fmt.Errorf("notify follow-ups: %w", err)
				}
				log.Printf("[jobs][notify] done sent=%d", n)
				fmt.Fprintf(cmd.OutOrStdout(), "sent %d reminder(s)\n", n)
				return nil
			})
		},
	}
}

func newRecomputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recompute [state...]",
		Short: "Rebuild the rollups of the given states, or of all 27 when none is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app.App) error {
				var err error
				if len(args) == 0 {
					err = a.Engine.RecomputeAll(cmd.Context())
				} else {
					err = a.Engine.RecomputeStates(cmd.Context(), args)
				}
				if err != nil {
					return fmt.Errorf("recompute: %w", err)
				}
				log.Printf("[jobs][recompute] done states=%d", len(args))
				fmt.Fprintln(cmd.OutOrStdout(), "recompute finished")
				return nil
			})
		},
	}
}
