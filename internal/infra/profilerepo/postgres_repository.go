package profilerepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/cosmic-calendar/internal/domain/ephemeris"
	"github.com/yanqian/cosmic-calendar/internal/domain/profile"
)

const schema = `
CREATE TABLE IF NOT EXISTS birth_profiles (
	id           UUID PRIMARY KEY,
	name         TEXT NOT NULL,
	birth_date   DATE NOT NULL,
	birth_hour   SMALLINT,
	birth_minute SMALLINT,
	latitude     DOUBLE PRECISION NOT NULL,
	longitude    DOUBLE PRECISION NOT NULL,
	timezone     TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
)`

// PostgresRepository persists profiles in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the profiles table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schema)
	return err
}

// Create inserts a profile row.
func (r *PostgresRepository) Create(ctx context.Context, p profile.Profile) error {
	var hour, minute *int16
	if bt := p.Birth.BirthTime; bt != nil {
		h, m := int16(bt.Hour), int16(bt.Minute)
		hour, minute = &h, &m
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO birth_profiles (id, name, birth_date, birth_hour, birth_minute, latitude, longitude, timezone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.Birth.Name, p.Birth.BirthDate, hour, minute, p.Birth.Latitude, p.Birth.Longitude, p.Birth.Timezone, p.CreatedAt)
	return err
}

// Get fetches by primary key.
func (r *PostgresRepository) Get(ctx context.Context, id string) (profile.Profile, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, birth_date, birth_hour, birth_minute, latitude, longitude, timezone, created_at
		FROM birth_profiles
		WHERE id = $1
		LIMIT 1
	`, id)
	if err != nil {
		return profile.Profile{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return profile.Profile{}, false, rows.Err()
	}
	p, err := scanProfile(rows)
	if err != nil {
		return profile.Profile{}, false, err
	}
	return p, true, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (profile.Profile, error) {
	var (
		p         profile.Profile
		birthDate time.Time
		hour      *int16
		minute    *int16
	)
	if err := row.Scan(&p.ID, &p.Birth.Name, &birthDate, &hour, &minute,
		&p.Birth.Latitude, &p.Birth.Longitude, &p.Birth.Timezone, &p.CreatedAt); err != nil {
		return profile.Profile{}, err
	}
	y, m, d := birthDate.Date()
	p.Birth.BirthDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if hour != nil && minute != nil {
		p.Birth.BirthTime = &ephemeris.TimeOfDay{Hour: int(*hour), Minute: int(*minute)}
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}

var _ profile.Repository = (*PostgresRepository)(nil)
