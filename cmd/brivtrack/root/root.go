package root

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Extraversi0n/road-to-brivJ/internal/config"
	"github.com/Extraversi0n/road-to-brivJ/internal/recorder"
	"github.com/Extraversi0n/road-to-brivJ/internal/tracker"
	"github.com/Extraversi0n/road-to-brivJ/internal/ui"
)

const Version = "1.0.0"

// Flag values applied on top of the loaded configuration. Flags are the
// outermost layer of the merge: defaults, then file, then env, then these.
var (
	flagConfig  string
	flagGoal    int64
	flagLogPath string
	flagOutput  string
	flagUserID  string
	flagHash    string
	flagMCV     string
	flagAPIURL  string
)

var rootCmd = &cobra.Command{
	Use:           "brivtrack",
	Short:         "Briv progress overlay generator for Idle Champions",
	Long:          "brivtrack reads the game client's web request log, fetches your inventory from the play server, and renders a Blacksmith Contract progress overlay.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to YAML config file (default brivtrack.yaml)")
	pf.Int64Var(&flagGoal, "goal", 0, "BSC goal override")
	pf.StringVar(&flagLogPath, "log", "", "game web request log path")
	pf.StringVar(&flagOutput, "out", "", "overlay output path")
	pf.StringVar(&flagUserID, "user-id", "", "internal user id override")
	pf.StringVar(&flagHash, "hash", "", "auth hash override")
	pf.StringVar(&flagMCV, "client-version", "", "mobile client version override")
	pf.StringVar(&flagAPIURL, "api-url", "", "play server base URL override")

	rootCmd.AddCommand(
		newRunCmd(),
		newWatchCmd(),
		newStatusCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

// loadConfig builds the final immutable configuration from all layers.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = "brivtrack.yaml"
		if v := os.Getenv("BRIVTRACK_CONFIG"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flagGoal > 0 {
		cfg.Goal = flagGoal
	}
	if flagLogPath != "" {
		cfg.LogPath = flagLogPath
	}
	if flagOutput != "" {
		cfg.OutputPath = flagOutput
	}
	if flagUserID != "" {
		cfg.Overrides.UserID = flagUserID
	}
	if flagHash != "" {
		cfg.Overrides.Hash = flagHash
	}
	if flagMCV != "" {
		cfg.Overrides.ClientVersion = flagMCV
	}
	if flagAPIURL != "" {
		cfg.Overrides.APIBaseURL = flagAPIURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// newTracker assembles the pipeline, including the optional recorder.
func newTracker(cfg *config.Config) (*tracker.Tracker, func()) {
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}
	t := tracker.New(cfg, rec)
	return t, func() {
		if err := rec.Close(); err != nil {
			log.Printf("[WARN] close recorder: %v", err)
		}
	}
}
