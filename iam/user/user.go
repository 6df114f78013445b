// Package user holds the identity aggregate: accounts, roles and their
// assignment. Users are soft-deleted so ownership of applicants survives
// account removal.
package user

import (
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/storage"
)

// User is an account that can authenticate against the API.
type User struct {
	ID           kernel.UserID `db:"id" json:"id"`
	UserName     string        `db:"user_name" json:"user_name"`
	Email        string        `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`

	storage.Audit
}

func (u *User) TableName() string { return "users" }

func (u *User) EntityID() kernel.UserID { return u.ID }

func (u *User) SetEntityID(id kernel.UserID) { u.ID = id }

// Role is a named permission group.
type Role struct {
	ID   kernel.RoleID   `db:"id" json:"id"`
	Name kernel.RoleName `db:"name" json:"name"`

	storage.Audit
}

func (r *Role) TableName() string { return "roles" }

func (r *Role) EntityID() kernel.RoleID { return r.ID }

func (r *Role) SetEntityID(id kernel.RoleID) { r.ID = id }

// UserRole links a user to a role.
type UserRole struct {
	ID     kernel.UserRoleID `db:"id" json:"id"`
	UserID kernel.UserID     `db:"user_id" json:"user_id"`
	RoleID kernel.RoleID     `db:"role_id" json:"role_id"`

	storage.Audit
}

func (ur *UserRole) TableName() string { return "user_roles" }

func (ur *UserRole) EntityID() kernel.UserRoleID { return ur.ID }

func (ur *UserRole) SetEntityID(id kernel.UserRoleID) { ur.ID = id }
