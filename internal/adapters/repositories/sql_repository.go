package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"water-distribution-service/internal/domain"
	platformdb "water-distribution-service/internal/platform/db"
	"water-distribution-service/internal/platform/obs"
	"water-distribution-service/internal/ports"
)

// SQL-backed implementation of the SourceRepository and AreaRepository ports.
type SQLRepository struct {
	DB      *sql.DB
	Dialect platformdb.Dialect
}

func NewSQLRepository(db *sql.DB, dialect platformdb.Dialect) *SQLRepository {
	return &SQLRepository{DB: db, Dialect: dialect}
}

// Return all wells ordered by id. A well whose yield cannot be parsed is
// returned with a zero yield and its exclusion is logged.
func (s *SQLRepository) ListSources(ctx context.Context) (_ []domain.Source, err error) {
	defer obs.Time(ctx, "sources.ListSources")(&err)

	if s.DB == nil {
		return nil, errors.New("sql repository: DB is nil")
	}

	query := `
	SELECT
		well_id,
		yield_raw,
		lon,
		lat
	FROM wells
	ORDER BY well_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sources: query wells table: %w", err)
	}
	defer rows.Close()

	sources := make([]domain.Source, 0, 64)
	for rows.Next() {
		var (
			id       string
			raw      sql.NullString
			lon, lat float64
		)
		if err := rows.Scan(&id, &raw, &lon, &lat); err != nil {
			return nil, fmt.Errorf("list sources: scan row: %w", err)
		}

		yield, perr := ParseQuantity(raw)
		if perr != nil {
			log.Printf("req_id=%s source excluded id=%s raw=%q reason=%q", obs.RequestID(ctx), id, raw.String, perr)
			yield = 0
		}

		sources = append(sources, domain.Source{
			ID:            id,
			YieldM3PerDay: yield,
			Location:      domain.Coordinates{Lon: lon, Lat: lat},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sources: row iteration: %w", err)
	}

	return sources, nil
}

// Return all areas of a layer ordered by name.
func (s *SQLRepository) ListAreas(ctx context.Context, kind domain.AreaKind) (_ []domain.DemandArea, err error) {
	defer obs.Time(ctx, "areas.ListAreas")(&err)

	if s.DB == nil {
		return nil, errors.New("sql repository: DB is nil")
	}

	query := s.Dialect.Rebind(`
	SELECT
		name,
		demand_raw,
		geometry
	FROM demand_areas
	WHERE kind = ?
	ORDER BY name;
	`)
	rows, err := s.DB.QueryContext(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list areas: query demand_areas table: %w", err)
	}
	defer rows.Close()

	areas := make([]domain.DemandArea, 0, 32)
	for rows.Next() {
		var (
			name, geom string
			raw        sql.NullString
		)
		if err := rows.Scan(&name, &raw, &geom); err != nil {
			return nil, fmt.Errorf("list areas: scan row: %w", err)
		}

		area, err := s.toArea(ctx, kind, name, raw, geom)
		if err != nil {
			return nil, fmt.Errorf("list areas: %w", err)
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list areas: row iteration: %w", err)
	}

	return areas, nil
}

// Return the area whose normalized name matches.
func (s *SQLRepository) FindArea(ctx context.Context, kind domain.AreaKind, name string) (_ domain.DemandArea, err error) {
	defer obs.Time(ctx, "areas.FindArea")(&err)

	if s.DB == nil {
		return domain.DemandArea{}, errors.New("sql repository: DB is nil")
	}

	key := domain.NormalizeName(name)
	query := s.Dialect.Rebind(`
	SELECT
		demand_raw,
		geometry
	FROM demand_areas
	WHERE kind = ? AND name = ?;
	`)

	var (
		raw  sql.NullString
		geom string
	)
	err = s.DB.QueryRowContext(ctx, query, string(kind), key).Scan(&raw, &geom)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DemandArea{}, fmt.Errorf("find area %s %q: %w", kind, key, ports.ErrAreaNotFound)
	}
	if err != nil {
		return domain.DemandArea{}, fmt.Errorf("find area %s %q: %w", kind, key, err)
	}

	return s.toArea(ctx, kind, key, raw, geom)
}

func (s *SQLRepository) toArea(ctx context.Context, kind domain.AreaKind, name string, raw sql.NullString, geom string) (domain.DemandArea, error) {
	var rings [][][2]float64
	if err := json.Unmarshal([]byte(geom), &rings); err != nil {
		return domain.DemandArea{}, fmt.Errorf("decode geometry for %s %q: %w", kind, name, err)
	}

	g := make(domain.Geometry, 0, len(rings))
	for _, r := range rings {
		ring := make(domain.Ring, 0, len(r))
		for _, pt := range r {
			ring = append(ring, domain.Coordinates{Lon: pt[0], Lat: pt[1]})
		}
		g = append(g, ring)
	}

	demand, err := ParseQuantity(raw)
	if err != nil {
		log.Printf("req_id=%s area demand treated as zero kind=%s name=%q raw=%q reason=%q", obs.RequestID(ctx), kind, name, raw.String, err)
		demand = 0
	}

	return domain.DemandArea{
		Kind:           kind,
		Name:           name,
		DemandM3PerDay: demand,
		Geometry:       g,
	}, nil
}
