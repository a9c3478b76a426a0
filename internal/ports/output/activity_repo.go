package output

import (
	"context"

	"mergington/internal/domain/entities"
)

// ActivityRepository is the storage port for the activity registry.
//
// AddParticipant and RemoveParticipant are atomic check-and-mutate
// operations: implementations perform the membership check and the roster
// update under their own concurrency discipline and report failures with
// the domain sentinel errors.
type ActivityRepository interface {
	List(ctx context.Context) ([]entities.Activity, error)
	AddParticipant(ctx context.Context, activityName, email string) error
	RemoveParticipant(ctx context.Context, activityName, email string) error
}
