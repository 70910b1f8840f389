// Package seed fills an empty database with an admin account, fake users
// and a default settings record for local development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"site-admin/internal/data/entity"
	"site-admin/internal/data/repository"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Options struct {
	AdminEmail    string
	AdminPassword string
	Users         int
	SessionTTL    time.Duration
}

type Result struct {
	AdminID      uuid.UUID
	AdminToken   uuid.UUID
	UsersCreated int
	Settings     bool
}

type Seeder struct {
	repo   *repository.Repository
	faker  *gofakeit.Faker
	now    func() time.Time
	log    *zap.Logger
	hashFn func(password string) (string, error)
}

// NewSeeder uses seed for the faker; 0 picks a random seed.
func NewSeeder(repo *repository.Repository, seed uint64, log *zap.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		faker:  gofakeit.New(seed),
		now:    time.Now,
		log:    log.With(zap.String("component", "seed")),
		hashFn: hashPassword,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Run creates the admin with a fresh session, opts.Users fake users and,
// when missing, the settings record. Fake users whose email or phone
// collides with an existing row are skipped.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	res := &Result{}

	admin, err := s.newUser(opts.AdminPassword)
	if err != nil {
		return nil, err
	}
	admin.Name = "Administrator"
	admin.Email = opts.AdminEmail
	admin.Phone = nil
	admin.Roles = []entity.UserRole{entity.RoleAdmin}

	if err := s.repo.User.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	res.AdminID = admin.ID

	session := &entity.Session{
		Record:    entity.Record{ID: uuid.New(), CreatedAt: s.now()},
		UserID:    admin.ID,
		Token:     uuid.New(),
		ExpiresAt: s.now().Add(opts.SessionTTL),
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create admin session: %w", err)
	}
	res.AdminToken = session.Token

	for i := 0; i < opts.Users; i++ {
		user, err := s.newUser(s.faker.Password(true, true, true, false, false, 12))
		if err != nil {
			return nil, err
		}
		err = s.repo.User.Create(ctx, user)
		if errors.Is(err, repository.ErrDuplicateEmail) || errors.Is(err, repository.ErrDuplicatePhone) {
			s.log.Debug("Skipping duplicate fake user", zap.String("email", user.Email))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create user %d: %w", i, err)
		}
		res.UsersCreated++
	}

	settings, err := s.repo.WebSettings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		if err := s.repo.WebSettings.Create(ctx, s.defaultSettings()); err != nil {
			return nil, fmt.Errorf("create settings: %w", err)
		}
		res.Settings = true
	}

	s.log.Info("Seed finished",
		zap.String("admin_id", res.AdminID.String()),
		zap.Int("users", res.UsersCreated),
		zap.Bool("settings_created", res.Settings),
	)
	return res, nil
}

func (s *Seeder) newUser(password string) (*entity.User, error) {
	hash, err := s.hashFn(password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	phone := s.faker.Numerify("08##########")
	user := &entity.User{
		Model:        entity.NewModel(now),
		Name:         s.faker.Name(),
		Email:        s.faker.Email(),
		Phone:        &phone,
		PasswordHash: hash,
		Roles:        []entity.UserRole{entity.RoleUser},
		IsBanned:     s.faker.Number(1, 20) == 1,
	}
	if s.faker.Bool() {
		user.Phone = nil
	}
	return user, nil
}

func (s *Seeder) defaultSettings() *entity.WebSettings {
	now := s.now()
	company := s.faker.Company()

	return &entity.WebSettings{
		Timestamped:      entity.Timestamped{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:             company,
		TitleHome:        "Home | " + company,
		TitleDashboard:   "Dashboard | " + company,
		TitleExam:        "Exam | " + company,
		Footer:           fmt.Sprintf("© %d %s", now.Year(), company),
		ContactTelp:      s.faker.Phone(),
		ContactEmail:     s.faker.Email(),
		ContactAddress:   s.faker.Address().Address,
		ContactInstagram: "@" + s.faker.Username(),
		LinkUniv:         s.faker.URL(),
	}
}
