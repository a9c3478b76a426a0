package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

// Postgres error codes used to map constraint violations to domain errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var _ output.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository implements output.ActivityRepository on PostgreSQL.
// Duplicate signups are rejected by the unique (activity_name, email)
// constraint, missing activities by the foreign key, so check-and-mutate
// stays atomic without an explicit transaction.
type ActivityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository creates an ActivityRepository.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

// Seed inserts the given activities and their rosters. An activity's roster
// is seeded only when the activity row itself was just created: an activity
// that already exists keeps its stored roster as-is, so restarts preserve
// every signup and unregistration made since the first run.
func (r *ActivityRepository) Seed(ctx context.Context, activities []entities.Activity) error {
	for i := range activities {
		a := &activities[i]
		tag, err := r.pool.Exec(ctx,
			`INSERT INTO activities (name, description, schedule, max_participants)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (name) DO NOTHING`,
			a.Name, a.Description, a.Schedule, a.MaxParticipants)
		if err != nil {
			return fmt.Errorf("seed activity %q: %w", a.Name, err)
		}
		if tag.RowsAffected() == 0 {
			continue
		}
		for _, email := range a.Participants {
			_, err := r.pool.Exec(ctx,
				`INSERT INTO participants (activity_name, email) VALUES ($1, $2)`,
				a.Name, email)
			if err != nil {
				return fmt.Errorf("seed participant %q of %q: %w", email, a.Name, err)
			}
		}
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context) ([]entities.Activity, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, description, schedule, max_participants
		 FROM activities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	var out []entities.Activity
	index := make(map[string]int)
	for rows.Next() {
		var a entities.Activity
		if err := rows.Scan(&a.Name, &a.Description, &a.Schedule, &a.MaxParticipants); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Participants = make([]string, 0)
		index[a.Name] = len(out)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	prows, err := r.pool.Query(ctx,
		`SELECT activity_name, email FROM participants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var name, email string
		if err := prows.Scan(&name, &email); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		if i, ok := index[name]; ok {
			out[i].Participants = append(out[i].Participants, email)
		}
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return out, nil
}

func (r *ActivityRepository) AddParticipant(ctx context.Context, activityName, email string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO participants (activity_name, email) VALUES ($1, $2)`,
		activityName, email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return domain.ErrAlreadySignedUp
			case pgForeignKeyViolation:
				return domain.ErrActivityNotFound
			}
		}
		return fmt.Errorf("add participant: %w", err)
	}
	return nil
}

func (r *ActivityRepository) RemoveParticipant(ctx context.Context, activityName, email string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM participants WHERE activity_name = $1 AND email = $2`,
		activityName, email)
	if err != nil {
		return fmt.Errorf("remove participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Distinguish an unknown activity from a student who never signed up.
		var exists bool
		err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM activities WHERE name = $1)`, activityName).
			Scan(&exists)
		if err != nil {
			return fmt.Errorf("check activity: %w", err)
		}
		if !exists {
			return domain.ErrActivityNotFound
		}
		return domain.ErrNotSignedUp
	}
	return nil
}
