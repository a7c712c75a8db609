package app

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/imoveisxml/config"
)

var testPG = config.Config{Postgres: config.PostgresConfig{User: "u", Password: "p", Host: "h", Port: 5432, DBName: "d", SSLMode: "disable"}}

func TestInitPostgres_OpenError(t *testing.T) {
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		return nil, errors.New("open failed")
	}
	t.Cleanup(func() { sqlOpener = old })

	if _, err := InitPostgres(testPG); err == nil {
		t.Fatalf("expected error from InitPostgres when open fails")
	}
}

func TestInitPostgres_UsesConfigDSN(t *testing.T) {
	var gotDriver, gotDSN string
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		gotDriver, gotDSN = driverName, dataSourceName
		db, _, err := sqlmock.New()
		return db, err
	}
	t.Cleanup(func() { sqlOpener = old })

	db, err := InitPostgres(testPG)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer db.Close()
	if gotDriver != "postgres" || gotDSN != "postgres://u:p@h:5432/d?sslmode=disable" {
		t.Fatalf("unexpected open(%q, %q)", gotDriver, gotDSN)
	}
}

func TestInitPostgres_PingError(t *testing.T) {
	var mock sqlmock.Sqlmock
	old := sqlOpener
	sqlOpener = func(driverName, dataSourceName string) (*sql.DB, error) {
		db, m, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		if err != nil {
			t.Fatalf("sqlmock new: %v", err)
		}
		mock = m
		mock.ExpectPing().WillReturnError(errors.New("ping failed"))
		mock.ExpectClose()
		return db, nil
	}
	t.Cleanup(func() { sqlOpener = old })

	if _, err := InitPostgres(testPG); err == nil {
		t.Fatalf("expected ping error from InitPostgres")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("pool not closed after ping failure: %v", err)
	}
}
