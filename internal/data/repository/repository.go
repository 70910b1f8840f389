package repository

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks site-admin/internal/data/repository UserRepository,SessionRepository,WebSettingsRepository

import (
	"site-admin/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	WebSettings WebSettingsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		WebSettings: NewWebSettingsRepository(db, log),
	}
}
