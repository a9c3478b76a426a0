// Package memory provides the default in-memory activity store.
package memory

import (
	"context"
	"slices"
	"sync"

	"mergington/internal/domain"
	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

var _ output.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository keeps the registry in a mutex-guarded map. Roster
// mutations are check-and-mutate under the write lock, so concurrent
// signup/unregister requests cannot lose updates.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*entities.Activity
	order      []string
}

// NewActivityRepository creates a store populated with the given activities.
// Listing preserves the seed order.
func NewActivityRepository(activities []entities.Activity) *ActivityRepository {
	r := &ActivityRepository{
		activities: make(map[string]*entities.Activity, len(activities)),
		order:      make([]string, 0, len(activities)),
	}
	for i := range activities {
		a := activities[i].Clone()
		r.activities[a.Name] = &a
		r.order = append(r.order, a.Name)
	}
	return r
}

func (r *ActivityRepository) List(ctx context.Context) ([]entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.activities[name].Clone())
	}
	return out, nil
}

func (r *ActivityRepository) AddParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (r *ActivityRepository) RemoveParticipant(ctx context.Context, activityName, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.activities[activityName]
	if !ok {
		return domain.ErrActivityNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return domain.ErrNotSignedUp
	}
	a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
	return nil
}
