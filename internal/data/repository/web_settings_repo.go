package repository

import (
	"context"
	"errors"
	"fmt"

	"site-admin/internal/data/entity"
	"site-admin/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type WebSettingsRepository interface {
	// Get returns the settings record, or nil, nil when none was saved yet.
	Get(ctx context.Context) (*entity.WebSettings, error)
	Create(ctx context.Context, settings *entity.WebSettings) error
	Update(ctx context.Context, settings *entity.WebSettings) error
}

type webSettingsRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWebSettingsRepository(db database.PgxIface, log *zap.Logger) WebSettingsRepository {
	return &webSettingsRepository{
		db:  db,
		log: log.With(zap.String("repository", "web_settings")),
	}
}

func (r *webSettingsRepository) Get(ctx context.Context) (*entity.WebSettings, error) {
	query := `
		SELECT id, name, title_home, title_dashboard, title_exam, footer,
		       contact_telp, contact_email, contact_fax, contact_address, contact_maps,
		       contact_facebook, contact_whatsapp, contact_instagram, contact_twitter,
		       contact_youtube, link_univ, created_at, updated_at
		FROM web_settings
		ORDER BY created_at ASC
		LIMIT 1
	`

	var s entity.WebSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.Name,
		&s.TitleHome,
		&s.TitleDashboard,
		&s.TitleExam,
		&s.Footer,
		&s.ContactTelp,
		&s.ContactEmail,
		&s.ContactFax,
		&s.ContactAddress,
		&s.ContactMaps,
		&s.ContactFacebook,
		&s.ContactWhatsapp,
		&s.ContactInstagram,
		&s.ContactTwitter,
		&s.ContactYoutube,
		&s.LinkUniv,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load web settings", zap.Error(err))
		return nil, fmt.Errorf("get web settings: %w", err)
	}

	return &s, nil
}

func (r *webSettingsRepository) Create(ctx context.Context, s *entity.WebSettings) error {
	query := `
		INSERT INTO web_settings (id, name, title_home, title_dashboard, title_exam, footer,
		                          contact_telp, contact_email, contact_fax, contact_address, contact_maps,
		                          contact_facebook, contact_whatsapp, contact_instagram, contact_twitter,
		                          contact_youtube, link_univ, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query, append(settingsArgs(s), s.CreatedAt, s.UpdatedAt)...)
	if err != nil {
		r.log.Error("Failed to create web settings", zap.Error(err))
		return fmt.Errorf("create web settings: %w", err)
	}

	return nil
}

func (r *webSettingsRepository) Update(ctx context.Context, s *entity.WebSettings) error {
	query := `
		UPDATE web_settings
		SET name = $2, title_home = $3, title_dashboard = $4, title_exam = $5, footer = $6,
		    contact_telp = $7, contact_email = $8, contact_fax = $9, contact_address = $10,
		    contact_maps = $11, contact_facebook = $12, contact_whatsapp = $13,
		    contact_instagram = $14, contact_twitter = $15, contact_youtube = $16,
		    link_univ = $17, updated_at = $18
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, append(settingsArgs(s), s.UpdatedAt)...)
	if err != nil {
		r.log.Error("Failed to update web settings",
			zap.Error(err),
			zap.String("settings_id", s.ID.String()),
		)
		return fmt.Errorf("update web settings %s: %w", s.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update web settings %s: %w", s.ID.String(), ErrNotFound)
	}

	return nil
}

// settingsArgs returns id followed by the sixteen content columns in
// table order.
func settingsArgs(s *entity.WebSettings) []any {
	return []any{
		s.ID,
		s.Name,
		s.TitleHome,
		s.TitleDashboard,
		s.TitleExam,
		s.Footer,
		s.ContactTelp,
		s.ContactEmail,
		s.ContactFax,
		s.ContactAddress,
		s.ContactMaps,
		s.ContactFacebook,
		s.ContactWhatsapp,
		s.ContactInstagram,
		s.ContactTwitter,
		s.ContactYoutube,
		s.LinkUniv,
	}
}
