package usecase

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"site-admin/internal/data/repository"
	"site-admin/internal/dto/request"
	"site-admin/internal/dto/response"
	"site-admin/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	ListUsers(ctx context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) error
}

type userService struct {
	userRepo repository.UserRepository
	paging   utils.PaginationConfig
	now      func() time.Time
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, paging utils.PaginationConfig, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		paging:   paging,
		now:      time.Now,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) ListUsers(ctx context.Context, req *request.UserListRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	req.Page, req.PerPage = utils.NormalizePage(req.Page, req.PerPage, us.paging.PerPage, us.paging.MaxPerPage)
	filter := repository.UserFilter{Search: req.Search}

	total, err := us.userRepo.Count(ctx, filter)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err), zap.String("search", req.Search))
		return nil, fmt.Errorf("count users: %w", err)
	}

	users, err := us.userRepo.FindAll(ctx, filter, req.PerPage, utils.CalculateOffset(req.Page, req.PerPage))
	if err != nil {
		us.log.Error("Failed to list users",
			zap.Error(err),
			zap.String("search", req.Search),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("list users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	us.log.Debug("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("per_page", req.PerPage),
	)

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

// UpdateUser validates req in full and then writes it to the user in a
// single statement. Fields left nil in req keep their stored value.
func (us *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		us.log.Warn("Update for malformed user ID", zap.String("user_id", userID))
		return ErrUserNotFound
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load user %s: %w", id, err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	req.Normalize()
	verr := newValidationError(utils.ValidateStruct(req))
	maps.Copy(verr.Fields, req.TypeErrors())

	if _, bad := verr.Fields["email"]; !bad {
		taken, err := us.userRepo.EmailTaken(ctx, req.Email, id)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			verr.addConflict("email")
		}
	}

	if _, bad := verr.Fields["phone"]; !bad && req.HasPhone() {
		taken, err := us.userRepo.PhoneTaken(ctx, *req.Phone, id)
		if err != nil {
			return fmt.Errorf("check phone: %w", err)
		}
		if taken {
			verr.addConflict("phone")
		}
	}

	if !verr.empty() {
		us.log.Info("User update rejected",
			zap.String("user_id", id.String()),
			zap.String("errors", utils.FormatValidationErrors(verr.Fields)),
		)
		return verr
	}

	if !user.Apply(req.Changes()) {
		us.log.Debug("User update without changes", zap.String("user_id", id.String()))
		return nil
	}
	user.Touch(us.now())

	if err := us.userRepo.Update(ctx, user); err != nil {
		return us.mapUpdateError(id, err)
	}

	us.log.Info("User updated",
		zap.String("user_id", id.String()),
		zap.Strings("roles", user.RoleNames()),
		zap.Bool("is_banned", user.IsBanned),
	)
	return nil
}

// mapUpdateError turns unique-index races and vanished rows into the same
// errors the pre-checks produce.
func (us *userService) mapUpdateError(id uuid.UUID, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicateEmail):
		verr := newValidationError(nil)
		verr.addConflict("email")
		return verr
	case errors.Is(err, repository.ErrDuplicatePhone):
		verr := newValidationError(nil)
		verr.addConflict("phone")
		return verr
	}
	return fmt.Errorf("update user %s: %w", id, err)
}
