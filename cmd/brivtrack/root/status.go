package root

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Extraversi0n/road-to-brivJ/internal/calculator"
	"github.com/Extraversi0n/road-to-brivJ/internal/model"
	"github.com/Extraversi0n/road-to-brivJ/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current progress to the terminal without rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			t, cleanup := newTracker(cfg)
			defer cleanup()

			snap, err := t.Snapshot()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Title.Render("⚒ Road to Briv"), ui.Muted.Render(snap.GeneratedAt.Format("2 January 2006")))
			fmt.Fprintln(out)

			styles := map[model.Currency]lipgloss.Style{
				model.CurrencyGold:   ui.Gold,
				model.CurrencySilver: ui.Silver,
				model.CurrencyGems:   ui.Gems,
			}
			for _, block := range snap.Blocks {
				fmt.Fprintf(out, "%-14s %s %6s  %s\n",
					block.Title,
					ui.TextBar(styles[block.Currency], block.Raw, block.RawGoal, 30),
					calculator.Percent(block.Raw, block.RawGoal),
					ui.Muted.Render(fmt.Sprintf("%s / %s", calculator.FormatUnits(block.Raw), calculator.FormatUnits(block.RawGoal))))
			}

			fmt.Fprintf(out, "%-14s %s %6s  %s\n",
				"Contracts",
				ui.TextBar(ui.Base, snap.Total, snap.Goal, 30),
				calculator.Percent(snap.Total, snap.Goal),
				ui.Muted.Render(fmt.Sprintf("%s / %s", calculator.FormatUnits(snap.Total), calculator.FormatUnits(snap.Goal))))

			fmt.Fprintln(out)
			for _, seg := range snap.Segments {
				fmt.Fprintf(out, "  %-7s %s BSC\n", seg.Label, calculator.FormatUnits(seg.Value))
			}
			fmt.Fprintf(out, "  %-7s %s BSC\n", "Left", calculator.FormatUnits(snap.Remaining))
			return nil
		},
	}
}
