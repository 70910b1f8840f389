package usecase

import (
	"site-admin/internal/data/repository"
	"site-admin/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	User        UserService
	WebSettings WebSettingsService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		User:        NewUserService(repo.User, config.Pagination, log),
		WebSettings: NewWebSettingsService(repo.WebSettings, log),
	}
}
