//go:build integration
// +build integration

package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/guttosm/imoveisxml/db/migrations"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "imoveis",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=imoveis sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/imoveis?sslmode=disable", host, port.Port())
	return dsn, func() { _ = container.Terminate(context.Background()) }
}

func openMigrated(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	if err := goose.Up(db, "."); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	return db
}

func count(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("count %q: %v", query, err)
	}
	return n
}

func TestProcessDirectory_Integration(t *testing.T) {
	dsn, term := startPostgres(t)
	defer term()
	db := openMigrated(t, dsn)
	defer db.Close()

	dir := t.TempDir()
	writeFile(t, dir, "a.xml", sampleFeed())
	writeFile(t, dir, "b.xml", `<Carga><Imovel><CodigoImovel>ZZ1</CodigoImovel><Cidade></Cidade></Imovel></Carga>`)

	ctx := context.Background()
	if err := ProcessDirectory(ctx, dir, db, 2, false); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	if got := count(t, db, `SELECT COUNT(*) FROM feeds`); got != 2 {
		t.Fatalf("feeds: want 2 got %d", got)
	}
	if got := count(t, db, `SELECT COUNT(*) FROM listings WHERE cidade = ''`); got != 1 {
		t.Fatalf("present-but-empty cidade should be stored as empty text, got %d rows", got)
	}
	if got := count(t, db, `SELECT COUNT(*) FROM listings WHERE titulo IS NULL`); got == 0 {
		t.Fatalf("absent titulo should be stored as NULL")
	}

	// Same content again is skipped; force replaces it.
	before := count(t, db, `SELECT COUNT(*) FROM listings`)
	if err := ProcessDirectory(ctx, dir, db, 1, false); err != nil {
		t.Fatalf("re-ingest: %v", err)
	}
	if err := ProcessDirectory(ctx, dir, db, 1, true); err != nil {
		t.Fatalf("force ingest: %v", err)
	}
	if after := count(t, db, `SELECT COUNT(*) FROM listings`); after != before {
		t.Fatalf("listing count changed after skip/force: %d -> %d", before, after)
	}
	if got := count(t, db, `SELECT COUNT(*) FROM feeds`); got != 2 {
		t.Fatalf("feeds after force: want 2 got %d", got)
	}

	// Broken feed: nothing from it is persisted.
	bad := filepath.Join(dir, "c.xml")
	if err := os.WriteFile(bad, []byte("<Carga><Imovel></Carga>"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := ProcessFile(ctx, bad, repoCtor(db), false); err == nil {
		t.Fatalf("expected parse error")
	}
	if got := count(t, db, `SELECT COUNT(*) FROM feeds`); got != 2 {
		t.Fatalf("broken feed persisted")
	}
}
