package user

import (
	"medvault/internal/domain/record"
)

// Action is something a user can do to a resource class.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
	ActionEdit   Action = "edit"

	// ActionAny is the wildcard action used only inside grants.
	ActionAny Action = "all"
)

// Resource is a named class of protected data, not a specific record.
type Resource string

const (
	ResourceAll               Resource = "all"
	ResourceMedicalRecords    Resource = "medical_records"
	ResourceOwnMedicalRecords Resource = "own_medical_records"
	ResourceOwnAppointments   Resource = "own_appointments"
	ResourceOwnPatients       Resource = "own_patients"
)

// Permission is one action × resource grant.
type Permission struct {
	Action   Action
	Resource Resource
}

// rolePermissions is the static grant table. It is the single authority for
// role based access on the client; it is never persisted or mutated.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		{ActionView, ResourceAll},
		{ActionCreate, ResourceAll},
		{ActionDelete, ResourceAll},
		{ActionEdit, ResourceAll},
	},
	RoleDoctor: {
		{ActionView, ResourceMedicalRecords},
		{ActionCreate, ResourceMedicalRecords},
		{ActionDelete, ResourceOwnMedicalRecords},
		{ActionEdit, ResourceOwnMedicalRecords},
		{ActionView, ResourceOwnPatients},
	},
	RolePatient: {
		{ActionView, ResourceOwnMedicalRecords},
		{ActionView, ResourceOwnAppointments},
	},
	RoleStaff: {
		{ActionView, ResourceMedicalRecords},
		{ActionCreate, ResourceMedicalRecords},
	},
}

// HasPermission reports whether the user may perform the action on the
// resource class. A nil user has no permissions. A grant matches on the exact
// pair, on the action with the "all" resource, or on the full wildcard.
func HasPermission(u *User, action Action, resource Resource) bool {
	if u == nil {
		return false
	}

	for _, p := range rolePermissions[u.Role] {
		switch {
		case p.Action == action && p.Resource == resource:
			return true
		case p.Action == action && p.Resource == ResourceAll:
			return true
		case p.Action == ActionAny && p.Resource == ResourceAll:
			return true
		}
	}

	return false
}

// owns reports whether the user is one of the record's owner parties.
func owns(u *User, rec *record.MedicalRecord) bool {
	return rec.OwnedByPatient(u.ID) || rec.OwnedByDoctor(u.ID)
}

// CanViewRecord decides view access against a concrete record, resolving the
// "own" resource class from the record's owner fields instead of trusting a
// caller-supplied resource string.
func CanViewRecord(u *User, rec *record.MedicalRecord) bool {
	if u == nil || rec == nil {
		return false
	}
	if HasPermission(u, ActionView, ResourceMedicalRecords) {
		return true
	}
	return HasPermission(u, ActionView, ResourceOwnMedicalRecords) && owns(u, rec)
}

// CanDeleteRecord decides delete access against a concrete record.
func CanDeleteRecord(u *User, rec *record.MedicalRecord) bool {
	if u == nil || rec == nil {
		return false
	}
	if HasPermission(u, ActionDelete, ResourceMedicalRecords) {
		return true
	}
	return HasPermission(u, ActionDelete, ResourceOwnMedicalRecords) && owns(u, rec)
}

// CanCreateRecord decides whether the user may register new records.
func CanCreateRecord(u *User) bool {
	return HasPermission(u, ActionCreate, ResourceMedicalRecords)
}
