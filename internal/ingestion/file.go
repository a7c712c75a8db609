package ingestion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/imoveisxml/internal/domain/models"
	"github.com/guttosm/imoveisxml/internal/extraction"
	"github.com/guttosm/imoveisxml/internal/feed"
	"github.com/guttosm/imoveisxml/internal/logger"
	"github.com/guttosm/imoveisxml/internal/storage"
)

// newFeedID is an indirection so tests get stable feed ids.
var newFeedID = uuid.NewString

// Summary describes the outcome of one feed file.
type Summary struct {
	File     string
	Checksum string
	FeedID   string
	Listings int
	Launches int
	Skipped  bool
}

// ProcessFile loads, extracts and persists one feed file.
//
// Behavior:
//   - The SHA-256 of the raw bytes identifies the feed. A feed already stored
//     with the same checksum is skipped, unless force is set, in which case
//     the stored copy (and its records) is deleted and the file reprocessed.
//   - Load failures surface as *feed.IOError or *feed.ParseError (wrapped).
//   - Records are inserted in batches of defaultBatchSize, keeping document order.
//   - If persisting fails midway, the partially written feed is removed so a
//     later run does not treat it as ingested.
//   - When a concurrent writer stores the same checksum between the check and
//     the insert, the file is reported as skipped.
func ProcessFile(ctx context.Context, path string, repo storage.FeedRepository, force bool) (Summary, error) {
	return processFile(ctx, path, repo, force, defaultBatchSize)
}

func processFile(ctx context.Context, path string, repo storage.FeedRepository, force bool, batch int) (sum Summary, err error) {
	sum.File = filepath.Base(path)

	raw, err := feed.Read(path)
	if err != nil {
		return sum, err
	}
	sum.Checksum = checksum(raw)

	exists, err := repo.HasFeedWithChecksum(ctx, sum.Checksum)
	if err != nil {
		return sum, fmt.Errorf("check feed log: %w", err)
	}
	if exists && !force {
		sum.Skipped = true
		return sum, nil
	}
	if exists {
		if err := repo.DeleteFeedByChecksum(ctx, sum.Checksum); err != nil {
			return sum, fmt.Errorf("delete existing feed: %w", err)
		}
	}

	doc, err := feed.ParseBytes(path, raw)
	if err != nil {
		return sum, err
	}
	res := extraction.Extract(doc)

	sum.FeedID = newFeedID()
	if err := repo.CreateFeed(ctx, models.Feed{ID: sum.FeedID, Filename: sum.File, Checksum: sum.Checksum}); err != nil {
		if errors.Is(err, storage.ErrDuplicateFeed) {
			sum.FeedID = ""
			sum.Skipped = true
			return sum, nil
		}
		return sum, fmt.Errorf("create feed: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if delErr := repo.DeleteFeedByChecksum(context.Background(), sum.Checksum); delErr != nil {
			logger.L().Error().Str("file", sum.File).Err(delErr).Msg("cleanup of partial feed failed")
		}
	}()

	err = insertInBatches(ctx, res.Listings, batch, func(offset int, chunk []models.Listing) error {
		return repo.InsertListingsBatch(ctx, sum.FeedID, offset, chunk)
	})
	if err != nil {
		return sum, fmt.Errorf("insert listings: %w", err)
	}
	err = insertInBatches(ctx, res.Launches, batch, func(offset int, chunk []models.Launch) error {
		return repo.InsertLaunchesBatch(ctx, sum.FeedID, offset, chunk)
	})
	if err != nil {
		return sum, fmt.Errorf("insert launches: %w", err)
	}

	if err = repo.UpdateFeedCounts(ctx, sum.FeedID, len(res.Listings), len(res.Launches)); err != nil {
		return sum, fmt.Errorf("update feed counts: %w", err)
	}

	sum.Listings = len(res.Listings)
	sum.Launches = len(res.Launches)
	return sum, nil
}

func checksum(raw []byte) string {
	digest := sha256.Sum256(raw)
	return hex.EncodeToString(digest[:])
}

// fileChecksum hashes the file at path without holding it in memory. It
// matches checksum over the same bytes.
func fileChecksum(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &feed.IOError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", &feed.IOError{Path: path, Err: err}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// insertInBatches calls insert for consecutive chunks of at most batch items,
// checking ctx between chunks.
func insertInBatches[T any](ctx context.Context, items []T, batch int, insert func(offset int, chunk []T) error) error {
	if batch < 1 {
		batch = 1
	}
	for start := 0; start < len(items); start += batch {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := min(start+batch, len(items))
		if err := insert(start, items[start:end]); err != nil {
			return fmt.Errorf("batch at %d: %w", start, err)
		}
	}
	return nil
}

// logSummary writes the per-file completion line.
func logSummary(idx, total int, s Summary, force bool, elapsed time.Duration) {
	logger.L().Info().
		Int("idx", idx).
		Int("total", total).
		Str("file", s.File).
		Str("feed_id", s.FeedID).
		Int("listings", s.Listings).
		Int("launches", s.Launches).
		Bool("skipped", s.Skipped).
		Bool("force", force).
		Dur("elapsed", elapsed).
		Msg("file done")
}
