package root

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Extraversi0n/road-to-brivJ/internal/scheduler"
)

func newWatchCmd() *cobra.Command {
	var cronSpec string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the overlay fresh on a cron schedule (for OBS sources)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cronSpec != "" {
				cfg.Watch.Cron = cronSpec
			}

			t, cleanup := newTracker(cfg)
			defer cleanup()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sched := scheduler.NewScheduler(ctx, t)
			if err := sched.Register(cfg.Watch.Cron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			// Render immediately so the overlay exists before the first tick.
			go sched.RunNow()

			log.Printf("[INFO] watching on schedule %q. Press Ctrl+C to stop.", cfg.Watch.Cron)

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}

	cmd.Flags().StringVar(&cronSpec, "cron", "", "cron expression with seconds (default from config, every 5 minutes)")
	return cmd
}
