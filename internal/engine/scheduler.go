package engine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kjdelacruz/stocksync/internal/sheet"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// importedSuffix marks workbooks that have already been picked up.
const importedSuffix = ".imported"

// Scheduler periodically scans a drop directory for new order-export
// workbooks and imports them. Processed files are renamed in place so a
// crash between import and rename re-imports the file; the ledger makes
// that re-import a no-op.
type Scheduler struct {
	cron            *cron.Cron
	engine          *Engine
	watchDir        string
	defaultPlatform domain.Platform
	log             *slog.Logger
}

// NewScheduler creates a new Scheduler that scans watchDir on an interval.
func NewScheduler(
	eng *Engine,
	watchDir string,
	defaultPlatform domain.Platform,
	scanInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:            c,
		engine:          eng,
		watchDir:        watchDir,
		defaultPlatform: defaultPlatform,
		log:             log,
	}

	if _, err := c.AddFunc(
		"@every "+scanInterval.String(),
		s.runScan,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "watch_dir", s.watchDir)
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runScan() {
	ctx := context.Background()
	if err := s.ScanOnce(ctx); err != nil {
		s.log.Error("scheduled scan failed", "error", err)
	}
}

// ScanOnce imports every unprocessed xlsx workbook in the watch directory.
func (s *Scheduler) ScanOnce(ctx context.Context) error {
	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
			continue
		}

		path := filepath.Join(s.watchDir, name)
		platform, ok := sheet.DetectPlatform(name)
		if !ok {
			platform = s.defaultPlatform
		}

		s.log.Info("importing workbook", "file", name, "platform", platform)
		if _, err := s.engine.ImportFile(ctx, path, platform); err != nil {
			s.log.Error("workbook import failed", "file", name, "error", err)
			continue
		}

		if err := os.Rename(path, path+importedSuffix); err != nil {
			s.log.Error("marking workbook processed failed", "file", name, "error", err)
		}
	}

	return nil
}
