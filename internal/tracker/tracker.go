// Package tracker runs the full pipeline: resolve credentials, fetch the
// player payload, compute the snapshot, render the overlay, and hand the
// result to the optional recorder and notifier. One run is fully
// sequential; a failure anywhere before rendering means nothing is written.
package tracker

import (
	"context"
	"fmt"
	"log"

	"github.com/Extraversi0n/road-to-brivJ/internal/collector"
	"github.com/Extraversi0n/road-to-brivJ/internal/config"
	"github.com/Extraversi0n/road-to-brivJ/internal/gamelog"
	"github.com/Extraversi0n/road-to-brivJ/internal/model"
	"github.com/Extraversi0n/road-to-brivJ/internal/notifier"
	"github.com/Extraversi0n/road-to-brivJ/internal/progress"
	"github.com/Extraversi0n/road-to-brivJ/internal/recorder"
	"github.com/Extraversi0n/road-to-brivJ/internal/render"
)

// Tracker wires the run pipeline together.
type Tracker struct {
	Cfg      *config.Config
	Overlay  *render.Overlay
	Recorder recorder.Recorder
	Notifier *notifier.TelegramNotifier // nil when not configured
}

// New builds a Tracker from configuration.
func New(cfg *config.Config, rec recorder.Recorder) *Tracker {
	t := &Tracker{
		Cfg:      cfg,
		Overlay:  render.NewOverlay(cfg.FontPath, cfg.IconDir),
		Recorder: rec,
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		t.Notifier = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}
	return t
}

// ResolveCredentials merges configuration overrides with values extracted
// from the game log. Overrides win field by field; when all four are set the
// log is never read.
func (t *Tracker) ResolveCredentials() (*gamelog.Credentials, error) {
	o := t.Cfg.Overrides

	if t.Cfg.HasFullOverrides() {
		return &gamelog.Credentials{
			PlayServer:    o.APIBaseURL,
			UserID:        o.UserID,
			Hash:          o.Hash,
			ClientVersion: o.ClientVersion,
		}, nil
	}

	creds, err := gamelog.Parse(t.Cfg.LogPath)
	if err != nil {
		return nil, err
	}
	if o.APIBaseURL != "" {
		creds.PlayServer = o.APIBaseURL
	}
	if o.UserID != "" {
		creds.UserID = o.UserID
	}
	if o.Hash != "" {
		creds.Hash = o.Hash
	}
	if o.ClientVersion != "" {
		creds.ClientVersion = o.ClientVersion
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

// Snapshot fetches the inventory and computes the progress snapshot without
// writing anything. Used by the status command and as the first half of Run.
func (t *Tracker) Snapshot() (*model.Snapshot, error) {
	creds, err := t.ResolveCredentials()
	if err != nil {
		return nil, err
	}

	fetcher := collector.NewPlayServerFetcher(*creds, t.Cfg.Proxy)
	log.Printf("[INFO] data source: %s (%s)", fetcher.Name(), creds.PlayServer)

	col := collector.NewCollector(fetcher)
	inv, buffs, err := col.Collect()
	if err != nil {
		return nil, err
	}
	log.Printf("[INFO] inventory: gold=%d silver=%d gems=%d buffBSC=%d", inv.Gold, inv.Silver, inv.Gems, buffs.Total)

	return progress.Build(inv, buffs, t.Cfg.Goal), nil
}

// Run executes one complete pipeline pass.
func (t *Tracker) Run(ctx context.Context) (*model.Snapshot, error) {
	snap, err := t.Snapshot()
	if err != nil {
		return nil, err
	}

	if err := t.Overlay.WritePNG(snap, t.Cfg.OutputPath); err != nil {
		return nil, fmt.Errorf("render overlay: %w", err)
	}
	log.Printf("[INFO] overlay saved: %s (total %d/%d BSC)", t.Cfg.OutputPath, snap.Total, snap.Goal)

	// History and notification are side-band: their failure doesn't undo a
	// successfully rendered overlay.
	if err := t.Recorder.RecordRun(snap); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}
	if t.Notifier != nil {
		if err := t.Notifier.SendWithRetry(ctx, notifier.FormatProgressReport(snap), 2); err != nil {
			log.Printf("[WARN] telegram notify: %v", err)
		}
	}

	return snap, nil
}
