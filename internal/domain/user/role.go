package user

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
	RoleStaff   Role = "staff"
)

func (Role) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(RoleAdmin),
			string(RoleDoctor),
			string(RolePatient),
			string(RoleStaff),
		},
		Description: "Role of the acting user",
		Examples:    []any{RoleDoctor},
	}
}

// Validate implements the huma.Validatable interface.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient, RoleStaff:
		return nil
	}
	return fmt.Errorf("invalid role: %s", r)
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
