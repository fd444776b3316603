// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/supplier-dash/aggregate"
	"github.com/danielhkuo/supplier-dash/auth"
	"github.com/danielhkuo/supplier-dash/cliparse"
	"github.com/danielhkuo/supplier-dash/dataset"
	appdb "github.com/danielhkuo/supplier-dash/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if err := appdb.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		DatasetURL:   "data/sales.csv",
		IPHashSalt:   "test-ip-salt",
	}
}

// StaticSource serves a fixed set of rows
type StaticSource struct {
	Rows []aggregate.RawRow
}

func (s *StaticSource) Load(ctx context.Context) ([]aggregate.RawRow, error) {
	return s.Rows, nil
}

// FailingSource always reports the dataset as unavailable
type FailingSource struct{}

func (FailingSource) Load(ctx context.Context) ([]aggregate.RawRow, error) {
	return nil, fmt.Errorf("%w: %v", dataset.ErrDataUnavailable, errors.New("connection refused"))
}

// SalesRow builds a row with the four columns the aggregator reads
func SalesRow(supplier, warehouse, retail, transfers string) aggregate.RawRow {
	return aggregate.RawRow{
		aggregate.ColSupplier:        supplier,
		aggregate.ColWarehouseSales:  warehouse,
		aggregate.ColRetailSales:     retail,
		aggregate.ColRetailTransfers: transfers,
	}
}

// CreateTestVote stores a vote directly and returns its ID
func CreateTestVote(t *testing.T, db *sql.DB, email, choice string) string {
	t.Helper()

	voteID := auth.GenerateVoteID()
	_, err := db.Exec(`
		INSERT INTO vote (email, id, choice, created_at)
		VALUES ($1, $2, $3, $4)
	`, email, voteID, choice, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
