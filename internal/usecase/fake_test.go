package usecase

import (
	"context"
	"slices"
	"strings"
	"sync"

	"site-admin/internal/data/entity"
	"site-admin/internal/data/repository"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository with the same search,
// ordering and uniqueness semantics as the postgres one.
type fakeUserRepo struct {
	mu      sync.Mutex
	users   []*entity.User
	updates int
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{}
	for _, u := range users {
		f.users = append(f.users, clone(u))
	}
	return f
}

func clone(u *entity.User) *entity.User {
	c := *u
	c.Roles = slices.Clone(u.Roles)
	if u.Phone != nil {
		p := *u.Phone
		c.Phone = &p
	}
	return &c
}

func (f *fakeUserRepo) get(id uuid.UUID) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return clone(u)
		}
	}
	return nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, clone(user))
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.get(id), nil
}

func matches(u *entity.User, term string) bool {
	if u.IsDeleted() {
		return false
	}
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Email), term) {
		return true
	}
	return u.Phone != nil && strings.Contains(strings.ToLower(*u.Phone), term)
}

func (f *fakeUserRepo) filtered(filter repository.UserFilter) []*entity.User {
	var out []*entity.User
	for _, u := range f.users {
		if matches(u, filter.Search) {
			out = append(out, u)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.User) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

func (f *fakeUserRepo) FindAll(_ context.Context, filter repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := f.filtered(filter)
	if offset >= len(all) {
		return nil, nil
	}
	end := min(offset+limit, len(all))
	out := make([]*entity.User, 0, end-offset)
	for _, u := range all[offset:end] {
		out = append(out, clone(u))
	}
	return out, nil
}

func (f *fakeUserRepo) Count(_ context.Context, filter repository.UserFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.filtered(filter))), nil
}

func (f *fakeUserRepo) EmailTaken(_ context.Context, email string, exceptID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID != exceptID && !u.IsDeleted() && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) PhoneTaken(_ context.Context, phone string, exceptID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID != exceptID && !u.IsDeleted() && u.Phone != nil && *u.Phone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == user.ID && !u.IsDeleted() {
			f.users[i] = clone(user)
			f.updates++
			return nil
		}
	}
	return repository.ErrNotFound
}
