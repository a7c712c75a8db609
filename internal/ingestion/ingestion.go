package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/imoveisxml/internal/logger"
	"github.com/guttosm/imoveisxml/internal/storage"
)

const (
	feedPattern      = "*.xml"
	defaultBatchSize = 1000
	maxParallel      = 4
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.FeedRepository {
	return storage.NewFeedRepository(db)
}

// ProcessDirectory ingests every *.xml feed found directly in dir.
//
//   - dir:      directory containing feed files.
//   - db:       open *sql.DB (PostgreSQL).
//   - parallel: files processed concurrently (0 = min(NumCPU, 4); clamped to 1..4).
//   - force:    reprocess feeds whose checksum was already ingested.
//
// Behavior:
//   - Files are taken in lexical order; an empty directory is an error.
//   - Files whose content repeats an earlier file are dropped before any
//     worker starts, so identical feeds never race on the same checksum.
//   - Each file runs the sequential load → extract → persist pipeline.
//   - If any file returns error, cancels the rest and returns that error.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	repo := repoCtor(db)

	files, err := filepath.Glob(filepath.Join(dir, feedPattern))
	if err != nil {
		return fmt.Errorf("list feeds in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no feed files (%s) in %s", feedPattern, dir)
	}
	sort.Strings(files)

	files, err = uniqueFeeds(files)
	if err != nil {
		return err
	}

	workers := clampParallel(parallel)
	logger.L().Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", workers).Msg("ingestion start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range files {
		g.Go(func() error {
			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", i+1).Int("total", len(files)).Str("file", base).Msg("file start")

			s, err := ProcessFile(gctx, f, repo, force)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			logSummary(i+1, len(files), s, force, time.Since(start))
			return nil
		})
	}

	return g.Wait()
}

// uniqueFeeds keeps the first file of every distinct content checksum,
// preserving order.
func uniqueFeeds(files []string) ([]string, error) {
	seen := make(map[string]string, len(files))
	out := make([]string, 0, len(files))
	for _, f := range files {
		sum, err := fileChecksum(f)
		if err != nil {
			return nil, fmt.Errorf("file %s: %w", f, err)
		}
		if first, dup := seen[sum]; dup {
			logger.L().Warn().
				Str("file", filepath.Base(f)).
				Str("duplicate_of", filepath.Base(first)).
				Msg("file skipped: same content as an earlier feed")
			continue
		}
		seen[sum] = f
		out = append(out, f)
	}
	return out, nil
}

func clampParallel(parallel int) int {
	if parallel <= 0 {
		return min(runtime.NumCPU(), maxParallel)
	}
	return min(parallel, maxParallel)
}
