package usecase

import (
	"context"
	"fmt"
	"maps"
	"time"

	"site-admin/internal/data/entity"
	"site-admin/internal/data/repository"
	"site-admin/internal/dto/request"
	"site-admin/internal/dto/response"
	"site-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WebSettingsService interface {
	GetSettings(ctx context.Context) (*response.WebSettingsResponse, error)
	UpdateSettings(ctx context.Context, req *request.UpdateWebSettingsRequest) (*response.WebSettingsResponse, error)
}

type webSettingsService struct {
	repo repository.WebSettingsRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewWebSettingsService(repo repository.WebSettingsRepository, log *zap.Logger) WebSettingsService {
	return &webSettingsService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "web_settings")),
	}
}

// GetSettings returns an empty record when nothing has been saved yet.
func (s *webSettingsService) GetSettings(ctx context.Context) (*response.WebSettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	if settings == nil {
		settings = &entity.WebSettings{}
	}

	resp := response.WebSettingsToResponse(settings)
	return &resp, nil
}

func (s *webSettingsService) UpdateSettings(ctx context.Context, req *request.UpdateWebSettingsRequest) (*response.WebSettingsResponse, error) {
	req.Normalize()
	verr := newValidationError(utils.ValidateStruct(req))
	maps.Copy(verr.Fields, req.TypeErrors())
	if !verr.empty() {
		return nil, verr
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	now := s.now()
	settings := &entity.WebSettings{}
	if current != nil {
		settings.ID = current.ID
		settings.CreatedAt = current.CreatedAt
	}
	applySettings(settings, req)
	settings.Touch(now)

	if current == nil {
		settings.ID = uuid.New()
		settings.CreatedAt = now
		if err := s.repo.Create(ctx, settings); err != nil {
			return nil, fmt.Errorf("create settings: %w", err)
		}
		s.log.Info("Web settings created", zap.String("settings_id", settings.ID.String()))
	} else {
		if err := s.repo.Update(ctx, settings); err != nil {
			return nil, fmt.Errorf("update settings: %w", err)
		}
		s.log.Info("Web settings updated", zap.String("settings_id", settings.ID.String()))
	}

	resp := response.WebSettingsToResponse(settings)
	return &resp, nil
}

func applySettings(s *entity.WebSettings, req *request.UpdateWebSettingsRequest) {
	s.Name = req.Name
	s.TitleHome = req.TitleHome
	s.TitleDashboard = req.TitleDashboard
	s.TitleExam = req.TitleExam
	s.Footer = req.Footer
	s.ContactTelp = req.ContactTelp
	s.ContactEmail = req.ContactEmail
	s.ContactFax = req.ContactFax
	s.ContactAddress = req.ContactAddress
	s.ContactMaps = req.ContactMaps
	s.ContactFacebook = req.ContactFacebook
	s.ContactWhatsapp = req.ContactWhatsapp
	s.ContactInstagram = req.ContactInstagram
	s.ContactTwitter = req.ContactTwitter
	s.ContactYoutube = req.ContactYoutube
	s.LinkUniv = req.LinkUniv
}
