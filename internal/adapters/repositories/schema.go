package repositories

import (
	"bytes"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"water-distribution-service/internal/domain"
	platformdb "water-distribution-service/internal/platform/db"
)

// Initialize the database schema. The statements are valid for both SQLite
// and Postgres.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWellsQuery := `
	CREATE TABLE IF NOT EXISTS wells (
		well_id TEXT PRIMARY KEY,
		yield_raw TEXT,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`

	createAreasQuery := `
	CREATE TABLE IF NOT EXISTS demand_areas (
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		demand_raw TEXT,
		geometry TEXT NOT NULL,
		PRIMARY KEY (kind, name)
	);
	`

	statements := []string{
		createWellsQuery,
		createAreasQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// RawQuantity keeps a yield or demand value exactly as it appears in the
// dataset. JSON numbers and strings are both accepted; null means missing.
type RawQuantity struct {
	Value string
	Valid bool
}

func (q *RawQuantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*q = RawQuantity{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = RawQuantity{Value: s, Valid: true}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("quantity must be a number, string or null: %w", err)
	}
	*q = RawQuantity{Value: n.String(), Valid: true}
	return nil
}

func (q RawQuantity) nullString() sql.NullString {
	return sql.NullString{String: q.Value, Valid: q.Valid}
}

type WellSeed struct {
	ID    string      `json:"id"`
	Yield RawQuantity `json:"yield"`
	Lon   float64     `json:"lon"`
	Lat   float64     `json:"lat"`
}

type AreaSeed struct {
	Kind     string         `json:"kind"`
	Name     string         `json:"name"`
	Demand   RawQuantity    `json:"demand"`
	Geometry [][][2]float64 `json:"geometry"`
}

type DatasetSeed struct {
	Wells []WellSeed `json:"wells"`
	Areas []AreaSeed `json:"areas"`
}

// Populate the database with wells and demand areas from a JSON file.
func SeedFromJSON(db *sql.DB, dialect platformdb.Dialect, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed dataset: read %q: %w", jsonPath, err)
	}

	var data DatasetSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed dataset: parse json: %w", err)
	}

	return Seed(db, dialect, data)
}

// DatasetFingerprint identifies the content of a dataset file. Caches that
// outlive a reseed use it to tell datasets apart.
func DatasetFingerprint(jsonPath string) (string, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return "", fmt.Errorf("dataset fingerprint: read %q: %w", jsonPath, err)
	}
	sum := sha256.Sum256(raw)
	return "ds-" + hex.EncodeToString(sum[:6]), nil
}

// Seed validates and upserts a dataset in a single transaction.
func Seed(db *sql.DB, dialect platformdb.Dialect, data DatasetSeed) error {
	if db == nil {
		return errors.New("seed dataset: DB is nil")
	}

	wellIDs := make(map[string]int, len(data.Wells))
	for i, w := range data.Wells {
		id := strings.TrimSpace(w.ID)
		if id == "" {
			return fmt.Errorf("seed dataset: well at index %d: id cannot be empty", i+1)
		}
		if first, ok := wellIDs[id]; ok {
			return fmt.Errorf("seed dataset: well at index %d: duplicate id %q (first at index %d)", i+1, id, first)
		}
		wellIDs[id] = i + 1
	}

	type areaRow struct {
		kind, name string
		demand     sql.NullString
		geometry   string
	}
	areas := make([]areaRow, 0, len(data.Areas))
	areaKeys := make(map[string]int, len(data.Areas))
	for i, a := range data.Areas {
		kind, err := domain.ParseAreaKind(strings.TrimSpace(a.Kind))
		if err != nil {
			return fmt.Errorf("seed dataset: area at index %d: %w", i+1, err)
		}

		name := domain.NormalizeName(a.Name)
		if name == "" {
			return fmt.Errorf("seed dataset: area at index %d: name cannot be empty", i+1)
		}
		// Names collide after normalization, e.g. "Breña" and "BRENA".
		key := string(kind) + "\x00" + name
		if first, ok := areaKeys[key]; ok {
			return fmt.Errorf("seed dataset: area at index %d: duplicate %s %q (first at index %d)", i+1, kind, name, first)
		}
		areaKeys[key] = i + 1

		if len(a.Geometry) == 0 {
			return fmt.Errorf("seed dataset: area %q: geometry cannot be empty", name)
		}
		geom, err := json.Marshal(a.Geometry)
		if err != nil {
			return fmt.Errorf("seed dataset: area %q: encode geometry: %w", name, err)
		}

		areas = append(areas, areaRow{kind: string(kind), name: name, demand: a.Demand.nullString(), geometry: string(geom)})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed dataset: begin tx: %w", err)
	}
	defer tx.Rollback()

	wellStmt, err := tx.Prepare(dialect.Rebind(`
	INSERT INTO wells (well_id, yield_raw, lon, lat)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (well_id) DO UPDATE
	SET yield_raw = EXCLUDED.yield_raw,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare well insert: %w", err)
	}
	defer wellStmt.Close()

	for _, w := range data.Wells {
		id := strings.TrimSpace(w.ID)
		if _, err := wellStmt.Exec(id, w.Yield.nullString(), w.Lon, w.Lat); err != nil {
			return fmt.Errorf("seed dataset: insert well_id=%q: %w", id, err)
		}
	}

	areaStmt, err := tx.Prepare(dialect.Rebind(`
	INSERT INTO demand_areas (kind, name, demand_raw, geometry)
	VALUES (?, ?, ?, ?)
	ON CONFLICT (kind, name) DO UPDATE
	SET demand_raw = EXCLUDED.demand_raw,
		geometry = EXCLUDED.geometry;
	`))
	if err != nil {
		return fmt.Errorf("seed dataset: prepare area insert: %w", err)
	}
	defer areaStmt.Close()

	for _, a := range areas {
		if _, err := areaStmt.Exec(a.kind, a.name, a.demand, a.geometry); err != nil {
			return fmt.Errorf("seed dataset: insert area %s %q: %w", a.kind, a.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dataset: commit tx: %w", err)
	}

	return nil
}
