package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/Extraversi0n/road-to-brivJ/internal/model"
)

// SQLiteRecorder persists run snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external chart tooling can read while watch mode writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			gold        INTEGER,
			silver      INTEGER,
			gems        INTEGER,
			bsc_base    INTEGER,
			bsc_gold    INTEGER,
			bsc_silver  INTEGER,
			bsc_gems    INTEGER,
			total       INTEGER,
			goal        INTEGER,
			remaining   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO runs
		(timestamp, gold, silver, gems, bsc_base, bsc_gold, bsc_silver, bsc_gems, total, goal, remaining)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		snap.GeneratedAt.Unix(),
		snap.Blocks[0].Raw, snap.Blocks[1].Raw, snap.Blocks[2].Raw,
		snap.Base, snap.Blocks[0].BSC, snap.Blocks[1].BSC, snap.Blocks[2].BSC,
		snap.Total, snap.Goal, snap.Remaining,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
