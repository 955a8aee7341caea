package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch inventory and render the overlay once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			t, cleanup := newTracker(cfg)
			defer cleanup()

			snap, err := t.Run(context.Background())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "overlay saved: %s (%d/%d BSC)\n", cfg.OutputPath, snap.Total, snap.Goal)
			return nil
		},
	}
}
