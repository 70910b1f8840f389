package entity

import "slices"

type UserRole string

// Roles a user may hold. request.UpdateUserRequest validates against the
// same list.
const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
	RoleUser   UserRole = "user"
)

type User struct {
	Model
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Phone        *string    `db:"phone"`
	PasswordHash string     `db:"password"`
	Roles        []UserRole `db:"roles"`
	IsBanned     bool       `db:"is_banned"`
}

func (u *User) HasRole(role UserRole) bool {
	return slices.Contains(u.Roles, role)
}

// RoleNames returns roles as plain strings for the TEXT[] column.
func (u *User) RoleNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = string(r)
	}
	return names
}

// ParseRoles converts role names, dropping duplicates and keeping order.
func ParseRoles(names []string) []UserRole {
	roles := make([]UserRole, 0, len(names))
	for _, name := range names {
		role := UserRole(name)
		if !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
	}
	return roles
}

// UserChanges is a validated update. Nil pointers leave the field as is.
type UserChanges struct {
	Name     string
	Email    string
	Phone    *string // "" clears the phone
	Roles    []UserRole
	IsBanned *bool
}

// Apply copies changes onto u and reports whether anything differs.
func (u *User) Apply(c UserChanges) bool {
	changed := false

	if u.Name != c.Name {
		u.Name = c.Name
		changed = true
	}
	if u.Email != c.Email {
		u.Email = c.Email
		changed = true
	}
	if c.Phone != nil {
		var phone *string
		if *c.Phone != "" {
			p := *c.Phone
			phone = &p
		}
		if !samePhone(u.Phone, phone) {
			u.Phone = phone
			changed = true
		}
	}
	if !slices.Equal(u.Roles, c.Roles) {
		u.Roles = slices.Clone(c.Roles)
		changed = true
	}
	if c.IsBanned != nil && u.IsBanned != *c.IsBanned {
		u.IsBanned = *c.IsBanned
		changed = true
	}

	return changed
}

func samePhone(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
