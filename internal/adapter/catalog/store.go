package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // pure Go SQLite driver

	"github.com/couchcryptid/neo-impact-service/internal/config"
	"github.com/couchcryptid/neo-impact-service/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS objects (
	id                 TEXT PRIMARY KEY,
	name               TEXT NOT NULL,
	kind               TEXT NOT NULL,
	diameter_min_km    DOUBLE PRECISION NOT NULL,
	diameter_max_km    DOUBLE PRECISION NOT NULL,
	is_hazardous       BOOLEAN NOT NULL DEFAULT FALSE,
	absolute_magnitude DOUBLE PRECISION NOT NULL DEFAULT 0,
	description        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS close_approaches (
	object_id        TEXT NOT NULL REFERENCES objects(id) ON DELETE CASCADE,
	approach_date    TEXT NOT NULL,
	velocity_kms     DOUBLE PRECISION NOT NULL,
	miss_distance_km DOUBLE PRECISION NOT NULL,
	orbiting_body    TEXT NOT NULL DEFAULT 'Earth',
	PRIMARY KEY (object_id, approach_date)
);

CREATE INDEX IF NOT EXISTS idx_close_approaches_date ON close_approaches (approach_date);
`

// approach_date is stored as RFC3339 text so both drivers sort it the same way.
const dateLayout = time.RFC3339

type objectRow struct {
	ID                string  `db:"id"`
	Name              string  `db:"name"`
	Kind              string  `db:"kind"`
	DiameterMinKm     float64 `db:"diameter_min_km"`
	DiameterMaxKm     float64 `db:"diameter_max_km"`
	IsHazardous       bool    `db:"is_hazardous"`
	AbsoluteMagnitude float64 `db:"absolute_magnitude"`
	Description       string  `db:"description"`
}

type approachRow struct {
	ObjectID       string  `db:"object_id"`
	ApproachDate   string  `db:"approach_date"`
	VelocityKms    float64 `db:"velocity_kms"`
	MissDistanceKm float64 `db:"miss_distance_km"`
	OrbitingBody   string  `db:"orbiting_body"`
}

// Store is the sqlx-backed object catalog.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// Open connects to the catalog database. driver is config.DriverSQLite or
// config.DriverPostgres.
func Open(ctx context.Context, driver, dsn string, logger *slog.Logger) (*Store, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s catalog: %w", driver, err)
	}
	if driver == config.DriverSQLite {
		// SQLite allows one writer; a single connection also keeps
		// in-memory databases alive across queries.
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s catalog: %w", driver, err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Migrate creates the catalog tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}
	return nil
}

// Seed inserts objects and their approaches, skipping rows that already
// exist. It returns the number of objects inserted.
func (s *Store) Seed(ctx context.Context, objects []domain.Object) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	inserted := 0
	for _, obj := range objects {
		res, err := tx.NamedExecContext(ctx, `
			INSERT INTO objects (id, name, kind, diameter_min_km, diameter_max_km, is_hazardous, absolute_magnitude, description)
			VALUES (:id, :name, :kind, :diameter_min_km, :diameter_max_km, :is_hazardous, :absolute_magnitude, :description)
			ON CONFLICT (id) DO NOTHING`, toObjectRow(obj))
		if err != nil {
			return 0, fmt.Errorf("seed object %s: %w", obj.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}

		for _, a := range obj.Approaches {
			a.ObjectID = obj.ID
			if _, err := tx.NamedExecContext(ctx, `
				INSERT INTO close_approaches (object_id, approach_date, velocity_kms, miss_distance_km, orbiting_body)
				VALUES (:object_id, :approach_date, :velocity_kms, :miss_distance_km, :orbiting_body)
				ON CONFLICT (object_id, approach_date) DO NOTHING`, toApproachRow(a)); err != nil {
				return 0, fmt.Errorf("seed approach %s %s: %w", obj.ID, a.ApproachDate.Format(time.DateOnly), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	s.logger.Info("catalog seeded", "objects", len(objects), "inserted", inserted)
	return inserted, nil
}

// List returns every object ordered by name, each with its approaches.
func (s *Store) List(ctx context.Context) ([]domain.Object, error) {
	var rows []objectRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT * FROM objects ORDER BY name`); err != nil {
		return nil, fmt.Errorf("list objects: %w", err)
	}

	var approaches []approachRow
	if err := s.db.SelectContext(ctx, &approaches, `SELECT * FROM close_approaches ORDER BY approach_date`); err != nil {
		return nil, fmt.Errorf("list approaches: %w", err)
	}
	byObject := make(map[string][]domain.CloseApproach, len(rows))
	for _, r := range approaches {
		a, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		byObject[r.ObjectID] = append(byObject[r.ObjectID], a)
	}

	objects := make([]domain.Object, 0, len(rows))
	for _, r := range rows {
		obj := r.toDomain()
		obj.Approaches = byObject[r.ID]
		objects = append(objects, obj)
	}
	return objects, nil
}

// Get returns one object with its approaches. Unknown IDs yield an error
// wrapping domain.ErrObjectNotFound.
func (s *Store) Get(ctx context.Context, id string) (domain.Object, error) {
	var row objectRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(`SELECT * FROM objects WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Object{}, fmt.Errorf("get object %s: %w", id, domain.ErrObjectNotFound)
	}
	if err != nil {
		return domain.Object{}, fmt.Errorf("get object %s: %w", id, err)
	}

	obj := row.toDomain()
	obj.Approaches, err = s.Approaches(ctx, id)
	if err != nil {
		return domain.Object{}, err
	}
	return obj, nil
}

// Approaches returns the object's close approaches in date order.
func (s *Store) Approaches(ctx context.Context, objectID string) ([]domain.CloseApproach, error) {
	var rows []approachRow
	query := s.db.Rebind(`SELECT * FROM close_approaches WHERE object_id = ? ORDER BY approach_date`)
	if err := s.db.SelectContext(ctx, &rows, query, objectID); err != nil {
		return nil, fmt.Errorf("list approaches for %s: %w", objectID, err)
	}
	approaches := make([]domain.CloseApproach, 0, len(rows))
	for _, r := range rows {
		a, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		approaches = append(approaches, a)
	}
	return approaches, nil
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CheckReadiness implements the shared readiness contract.
func (s *Store) CheckReadiness(ctx context.Context) error {
	if err := s.Ping(ctx); err != nil {
		return fmt.Errorf("catalog unavailable: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func toObjectRow(o domain.Object) objectRow {
	return objectRow{
		ID:                o.ID,
		Name:              o.Name,
		Kind:              o.Kind,
		DiameterMinKm:     o.DiameterMinKm,
		DiameterMaxKm:     o.DiameterMaxKm,
		IsHazardous:       o.IsHazardous,
		AbsoluteMagnitude: o.AbsoluteMagnitude,
		Description:       o.Description,
	}
}

func (r objectRow) toDomain() domain.Object {
	return domain.Object{
		ID:                r.ID,
		Name:              r.Name,
		Kind:              r.Kind,
		DiameterMinKm:     r.DiameterMinKm,
		DiameterMaxKm:     r.DiameterMaxKm,
		IsHazardous:       r.IsHazardous,
		AbsoluteMagnitude: r.AbsoluteMagnitude,
		Description:       r.Description,
	}
}

func toApproachRow(a domain.CloseApproach) approachRow {
	body := a.OrbitingBody
	if body == "" {
		body = "Earth"
	}
	return approachRow{
		ObjectID:       a.ObjectID,
		ApproachDate:   a.ApproachDate.UTC().Format(dateLayout),
		VelocityKms:    a.VelocityKms,
		MissDistanceKm: a.MissDistanceKm,
		OrbitingBody:   body,
	}
}

func (r approachRow) toDomain() (domain.CloseApproach, error) {
	date, err := time.Parse(dateLayout, r.ApproachDate)
	if err != nil {
		return domain.CloseApproach{}, fmt.Errorf("parse approach date %q for %s: %w", r.ApproachDate, r.ObjectID, err)
	}
	a := domain.NewCloseApproach(r.ObjectID, date, r.VelocityKms, r.MissDistanceKm)
	a.OrbitingBody = r.OrbitingBody
	return a, nil
}
