package service

import (
	"context"
	"fmt"

	repository "github.com/ds124wfegd/contactremind/internal/database/postgres"
	"github.com/ds124wfegd/contactremind/internal/entity"
)

type settingsService struct {
	userRepo repository.UserRepository
	resolver SettingsResolver
}

func NewSettingsService(userRepo repository.UserRepository, resolver SettingsResolver) SettingsService {
	return &settingsService{
		userRepo: userRepo,
		resolver: resolver,
	}
}

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*entity.UserSettings, error) {
	settings, err := s.userRepo.GetSettings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, userID string, emailNotifications bool) (*entity.UserSettings, error) {
	settings := &entity.UserSettings{
		UserID:             userID,
		EmailNotifications: emailNotifications,
	}

	if err := s.userRepo.UpsertSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	// Планировщик читает настройки через кеш, сбрасываем его
	s.resolver.Invalidate(ctx, userID)

	return settings, nil
}
