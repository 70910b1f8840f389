package request

import (
	"strings"

	"site-admin/internal/data/entity"
	"site-admin/pkg/utils"
)

// UserListRequest is the admin user listing query.
type UserListRequest struct {
	PaginatedRequest
	Search string `json:"search"`
}

// UpdateUserRequest is the body of PUT/PATCH /api/admin/users/{id}.
// Phone and IsBanned are pointers: nil means "leave unchanged".
type UpdateUserRequest struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Email    string   `json:"email" validate:"required,email,max=255"`
	Phone    *string  `json:"phone" validate:"omitempty,max=32"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=admin editor user"`
	IsBanned *bool    `json:"is_banned"`

	typeErrors map[string]string
}

// UnmarshalJSON decodes each field on its own. A value of the wrong type
// is recorded in TypeErrors rather than failing the whole body, so it can
// be reported next to the other field errors.
func (r *UpdateUserRequest) UnmarshalJSON(data []byte) error {
	d, err := newFieldDecoder(data)
	if err != nil {
		return err
	}

	*r = UpdateUserRequest{}
	d.decode("name", &r.Name, msgString)
	d.decode("email", &r.Email, msgString)
	d.decode("phone", &r.Phone, msgString)
	d.decode("roles", &r.Roles, msgArray)
	d.decodeBool("is_banned", &r.IsBanned)
	r.typeErrors = d.errors
	return nil
}

// TypeErrors returns one message per field whose JSON value had the wrong
// type, or nil.
func (r *UpdateUserRequest) TypeErrors() map[string]string {
	return r.typeErrors
}

// Normalize trims every string field.
func (r *UpdateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	utils.TrimPtr(r.Phone)
	for i := range r.Roles {
		r.Roles[i] = strings.TrimSpace(r.Roles[i])
	}
}

// HasPhone reports whether a non-empty phone was sent.
func (r *UpdateUserRequest) HasPhone() bool {
	return r.Phone != nil && *r.Phone != ""
}

// Changes converts a validated request into entity changes.
func (r *UpdateUserRequest) Changes() entity.UserChanges {
	return entity.UserChanges{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Roles:    entity.ParseRoles(r.Roles),
		IsBanned: r.IsBanned,
	}
}
