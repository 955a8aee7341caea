package recorder

import "github.com/Extraversi0n/road-to-brivJ/internal/model"

// Recorder persists run history for later analysis (e.g. charting progress
// over time). The overlay itself never reads history back; every snapshot
// is recomputed from scratch.
type Recorder interface {
	RecordRun(snap *model.Snapshot) error
	Close() error
}
