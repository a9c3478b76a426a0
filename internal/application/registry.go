package application

import (
	"context"

	"mergington/internal/domain/entities"
	"mergington/internal/ports/output"
)

type RegistryService struct {
	activityRepo output.ActivityRepository
	translator   output.T
	notifier     output.Notifier
}

func NewRegistryService(
	activityRepo output.ActivityRepository,
	translator output.T,
	notifier output.Notifier,
) *RegistryService {
	return &RegistryService{
		activityRepo: activityRepo,
		translator:   translator,
		notifier:     notifier,
	}
}

func (s *RegistryService) ListActivities(ctx context.Context) ([]entities.Activity, error) {
	return s.activityRepo.List(ctx)
}

func (s *RegistryService) Signup(ctx context.Context, locale, activityName, email string) (string, error) {
	if err := s.activityRepo.AddParticipant(ctx, activityName, email); err != nil {
		return "", err
	}
	s.notifier.SignedUp(ctx, activityName, email)
	return s.translator.T(locale, "signup.success", map[string]any{
		"Email":    email,
		"Activity": activityName,
	}), nil
}

func (s *RegistryService) Unregister(ctx context.Context, locale, activityName, email string) (string, error) {
	if err := s.activityRepo.RemoveParticipant(ctx, activityName, email); err != nil {
		return "", err
	}
	s.notifier.Unregistered(ctx, activityName, email)
	return s.translator.T(locale, "unregister.success", map[string]any{
		"Email":    email,
		"Activity": activityName,
	}), nil
}
