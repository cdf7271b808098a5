// Package store persists routes in a SQLite database.
package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/siili/climbingroutes/pkg/geometry"
	"github.com/siili/climbingroutes/pkg/grade"
	"github.com/siili/climbingroutes/pkg/route"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const foreignKeysPragma = "_pragma=foreign_keys(1)"

// ErrNotFound is returned when no route has the requested ID
var ErrNotFound = errors.New("route not found")

// PlaceFunc creates the node for a restored waypoint
type PlaceFunc func(pos geometry.Vector3) route.Node

// Store reads and writes routes
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Summary is a short description of a stored route
type Summary struct {
	ID        uuid.UUID
	Name      string
	Grade     string
	Type      grade.RouteType
	Waypoints int
	UpdatedAt time.Time
}

// Open opens (and migrates) the database at path. An empty path uses an in-memory database.
func Open(path string, log zerolog.Logger) (*Store, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:?cache=shared"
	}
	// Every pooled connection enforces the waypoint cascade
	if strings.Contains(dsn, "?") {
		dsn += "&" + foreignKeysPragma
	} else {
		dsn += "?" + foreignKeysPragma
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if path != "" {
		log.Info().Str("path", path).Msg("Using local SQLite DB")
	} else {
		log.Info().Msg("Using local SQLite DB in memory")
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the database
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save stores the route, replacing an earlier version with the same ID
func (s *Store) Save(chain *route.Chain) error {
	rec := toRecord(chain)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("route_id = ?", rec.ID).Delete(&WaypointRecord{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
	})
	if err != nil {
		return fmt.Errorf("failed to save route %s: %w", rec.ID, err)
	}

	s.log.Debug().
		Str("route", rec.ID).
		Int("waypoints", len(rec.Waypoints)).
		Msg("Route saved")
	return nil
}

// Load restores a route. Every waypoint is placed through place and appended in the
// stored order, so the last waypoint ends up selected like after a live session.
func (s *Store) Load(id uuid.UUID, place PlaceFunc, opts ...route.Option) (*route.Chain, error) {
	var rec RouteRecord
	err := s.db.
		Preload("Waypoints", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&rec, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load route %s: %w", id, err)
	}

	info, err := grade.NewInfoFrom(rec.values())
	if err != nil {
		return nil, fmt.Errorf("stored route %s: %w", id, err)
	}

	opts = append(opts, route.WithID(id), route.WithInfo(info))
	chain := route.New(opts...)
	for _, w := range rec.Waypoints {
		chain.Append(place(geometry.NewVector3(w.X, w.Y, w.Z)))
	}
	return chain, nil
}

// List returns all stored routes, most recently updated first
func (s *Store) List() ([]Summary, error) {
	var recs []RouteRecord
	if err := s.db.Preload("Waypoints").Order("updated_at desc").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	out := make([]Summary, 0, len(recs))
	for _, rec := range recs {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			s.log.Warn().Str("route", rec.ID).Err(err).Msg("Skipping route with invalid ID")
			continue
		}
		info, err := grade.NewInfoFrom(rec.values())
		if err != nil {
			s.log.Warn().Str("route", rec.ID).Err(err).Msg("Skipping route with invalid info")
			continue
		}
		out = append(out, Summary{
			ID:        id,
			Name:      info.DisplayName(),
			Grade:     info.Text(),
			Type:      info.Type(),
			Waypoints: len(rec.Waypoints),
			UpdatedAt: rec.UpdatedAt,
		})
	}
	return out, nil
}

// Delete removes a route and its waypoints
func (s *Store) Delete(id uuid.UUID) error {
	res := s.db.Select("Waypoints").Delete(&RouteRecord{ID: id.String()})
	if res.Error != nil {
		return fmt.Errorf("failed to delete route %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func toRecord(chain *route.Chain) RouteRecord {
	v := chain.Info().Values()
	rec := RouteRecord{
		ID:         chain.ID().String(),
		Name:       v.Name,
		Difficulty: v.Difficulty,
		Boulder:    v.Boulder,
		Sport:      v.Sport,
		Trad:       v.Trad,
		SitStart:   v.SitStart,
		StartHolds: v.StartHolds,
		TopOut:     v.TopOut,
		Notes:      v.Notes,
	}
	for i, p := range chain.Positions() {
		rec.Waypoints = append(rec.Waypoints, WaypointRecord{
			RouteID: rec.ID,
			Seq:     i,
			X:       p.X,
			Y:       p.Y,
			Z:       p.Z,
		})
	}
	return rec
}

func (r RouteRecord) values() grade.Values {
	return grade.Values{
		Name:       r.Name,
		Difficulty: r.Difficulty,
		Boulder:    r.Boulder,
		Sport:      r.Sport,
		Trad:       r.Trad,
		SitStart:   r.SitStart,
		StartHolds: r.StartHolds,
		TopOut:     r.TopOut,
		Notes:      r.Notes,
	}
}
