package input

import (
	"context"

	"mergington/internal/domain/entities"
)

type RegistryUseCase interface {
	ListActivities(ctx context.Context) ([]entities.Activity, error)
	Signup(ctx context.Context, locale, activityName, email string) (string, error)
	Unregister(ctx context.Context, locale, activityName, email string) (string, error)
}
