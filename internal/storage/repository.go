package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/imoveisxml/internal/domain/models"
	pq "github.com/lib/pq"
)

// DefaultLimit applies when a filter does not set one.
const DefaultLimit = 50

// ErrDuplicateFeed is returned by CreateFeed when another feed with the same
// checksum was stored first.
var ErrDuplicateFeed = errors.New("feed with the same checksum already exists")

// FeedRepository defines contract for DB operations.
type FeedRepository interface {
	HasFeedWithChecksum(ctx context.Context, checksum string) (bool, error)
	DeleteFeedByChecksum(ctx context.Context, checksum string) error
	CreateFeed(ctx context.Context, feed models.Feed) error
	UpdateFeedCounts(ctx context.Context, feedID string, listings, launches int) error
	InsertListingsBatch(ctx context.Context, feedID string, offset int, listings []models.Listing) error
	InsertLaunchesBatch(ctx context.Context, feedID string, offset int, launches []models.Launch) error
	FindListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	GetListingByCode(ctx context.Context, code string) (*models.Listing, error)
	FindLaunches(ctx context.Context, filter models.LaunchFilter) ([]models.Launch, error)
}

// Column order mirrors the record field order of the feed mapping.
var listingColumns = []string{
	"codigo", "codigo_auxiliar", "titulo", "tipo", "subtipo", "finalidade",
	"endereco", "numero", "bairro", "cidade", "estado", "cep",
	"preco_venda", "preco_locacao", "area_util", "area_total",
	"dormitorios", "suites", "banheiros", "vagas",
	"data_cadastro", "data_atualizacao",
}

var launchColumns = []string{
	"codigo", "nome", "tipo", "cidade", "estado", "bairro", "endereco", "numero",
	"valor_minimo", "valor_maximo", "previsao_entrega", "construtora",
	"dormitorios_min", "dormitorios_max",
}

type feedRepository struct {
	db *sql.DB
}

func NewFeedRepository(db *sql.DB) FeedRepository {
	return &feedRepository{db: db}
}

// HasFeedWithChecksum reports whether a feed with the same content was already ingested.
func (r *feedRepository) HasFeedWithChecksum(ctx context.Context, checksum string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM feeds WHERE checksum = $1)`, checksum).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteFeedByChecksum removes a feed; its listings and launches go with it (ON DELETE CASCADE).
func (r *feedRepository) DeleteFeedByChecksum(ctx context.Context, checksum string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM feeds WHERE checksum = $1`, checksum)
	return err
}

// CreateFeed records a feed before its records are copied in.
func (r *feedRepository) CreateFeed(ctx context.Context, feed models.Feed) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feeds (id, filename, checksum, listing_count, launch_count)
		VALUES ($1, $2, $3, $4, $5)
	`, feed.ID, feed.Filename, feed.Checksum, feed.ListingCount, feed.LaunchCount)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%w: %s", ErrDuplicateFeed, feed.Checksum)
	}
	return err
}

// UpdateFeedCounts stores the final record counts of a feed.
func (r *feedRepository) UpdateFeedCounts(ctx context.Context, feedID string, listings, launches int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE feeds SET listing_count = $2, launch_count = $3, ingested_at = NOW()
		WHERE id = $1
	`, feedID, listings, launches)
	return err
}

// InsertListingsBatch copies listings into the listings table in a single
// transaction. offset is the document position of the first record.
func (r *feedRepository) InsertListingsBatch(ctx context.Context, feedID string, offset int, listings []models.Listing) error {
	rows := make([][]interface{}, 0, len(listings))
	for i := range listings {
		rows = append(rows, append([]interface{}{feedID, offset + i}, listingValues(&listings[i])...))
	}
	return r.copyIn(ctx, "listings", listingColumns, rows)
}

// InsertLaunchesBatch copies launches into the launches table in a single transaction.
func (r *feedRepository) InsertLaunchesBatch(ctx context.Context, feedID string, offset int, launches []models.Launch) error {
	rows := make([][]interface{}, 0, len(launches))
	for i := range launches {
		rows = append(rows, append([]interface{}{feedID, offset + i}, launchValues(&launches[i])...))
	}
	return r.copyIn(ctx, "launches", launchColumns, rows)
}

// copyIn streams rows with COPY FROM STDIN. Invalid sql.NullString values
// are sent as NULL by database/sql.
func (r *feedRepository) copyIn(ctx context.Context, table string, columns []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	cols := append([]string{"feed_id", "position"}, columns...)
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, cols...))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// FindListings returns stored listings matching filter, most recent feed
// first and document order within a feed.
func (r *feedRepository) FindListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	w := newWhere()
	w.eq("l.cidade", filter.City)
	w.eq("l.estado", filter.State)
	w.eq("l.finalidade", filter.Purpose)

	query := fmt.Sprintf(`
		SELECT %s
		FROM listings l
		JOIN feeds f ON f.id = l.feed_id
		%s
		ORDER BY f.ingested_at DESC, l.position
		LIMIT $%d
	`, qualified("l", listingColumns), w.clause(), len(w.args)+1)

	rows, err := r.db.QueryContext(ctx, query, append(w.args, limitOrDefault(filter.Limit))...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.Listing{}
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(listingDest(&l)...); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetListingByCode returns the most recently ingested listing with the given
// codigo, or nil when none exists.
func (r *feedRepository) GetListingByCode(ctx context.Context, code string) (*models.Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings l
		JOIN feeds f ON f.id = l.feed_id
		WHERE l.codigo = $1
		ORDER BY f.ingested_at DESC, l.position
		LIMIT 1
	`, qualified("l", listingColumns))

	var l models.Listing
	err := r.db.QueryRowContext(ctx, query, code).Scan(listingDest(&l)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// FindLaunches returns stored launches matching filter.
func (r *feedRepository) FindLaunches(ctx context.Context, filter models.LaunchFilter) ([]models.Launch, error) {
	w := newWhere()
	w.eq("l.cidade", filter.City)
	w.eq("l.construtora", filter.Builder)

	query := fmt.Sprintf(`
		SELECT %s
		FROM launches l
		JOIN feeds f ON f.id = l.feed_id
		%s
		ORDER BY f.ingested_at DESC, l.position
		LIMIT $%d
	`, qualified("l", launchColumns), w.clause(), len(w.args)+1)

	rows, err := r.db.QueryContext(ctx, query, append(w.args, limitOrDefault(filter.Limit))...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.Launch{}
	for rows.Next() {
		var l models.Launch
		if err := rows.Scan(launchDest(&l)...); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// where accumulates equality conditions with positional placeholders.
type where struct {
	conds []string
	args  []interface{}
}

func newWhere() *where { return &where{} }

// eq adds "col = $n" unless value is empty.
func (w *where) eq(col, value string) {
	if value == "" {
		return
	}
	w.args = append(w.args, value)
	w.conds = append(w.conds, fmt.Sprintf("%s = $%d", col, len(w.args)))
}

func (w *where) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

func qualified(alias string, cols []string) string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return strings.Join(out, ", ")
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func listingValues(l *models.Listing) []interface{} {
	dest := listingDest(l)
	out := make([]interface{}, len(dest))
	for i, d := range dest {
		out[i] = *(d.(*sql.NullString))
	}
	return out
}

func launchValues(l *models.Launch) []interface{} {
	dest := launchDest(l)
	out := make([]interface{}, len(dest))
	for i, d := range dest {
		out[i] = *(d.(*sql.NullString))
	}
	return out
}

// listingDest returns pointers to l's fields in listingColumns order.
func listingDest(l *models.Listing) []interface{} {
	return []interface{}{
		&l.Code, &l.AuxiliaryCode, &l.Title, &l.Type, &l.Subtype, &l.Purpose,
		&l.Street, &l.Number, &l.District, &l.City, &l.State, &l.PostalCode,
		&l.SalePrice, &l.RentPrice, &l.UsableArea, &l.TotalArea,
		&l.Bedrooms, &l.Suites, &l.Bathrooms, &l.ParkingSpots,
		&l.RegisteredAt, &l.LastUpdatedAt,
	}
}

// launchDest returns pointers to l's fields in launchColumns order.
func launchDest(l *models.Launch) []interface{} {
	return []interface{}{
		&l.Code, &l.Name, &l.Type, &l.City, &l.State, &l.District, &l.Street, &l.Number,
		&l.MinPrice, &l.MaxPrice, &l.ExpectedDelivery, &l.Builder,
		&l.MinBedrooms, &l.MaxBedrooms,
	}
}
