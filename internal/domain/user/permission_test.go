package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"medvault/internal/domain/record"
)

func TestHasPermission(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		action   Action
		resource Resource
		expected bool
	}{
		{
			name:     "nil user has no permissions",
			user:     nil,
			action:   ActionView,
			resource: ResourceAll,
			expected: false,
		},
		{
			name:     "admin wildcard covers arbitrary resource",
			user:     &User{ID: "A1", Role: RoleAdmin},
			action:   ActionDelete,
			resource: Resource("anything"),
			expected: true,
		},
		{
			name:     "patient may view own records",
			user:     &User{ID: "P1", Role: RolePatient},
			action:   ActionView,
			resource: ResourceOwnMedicalRecords,
			expected: true,
		},
		{
			name:     "patient may not view the full record class",
			user:     &User{ID: "P1", Role: RolePatient},
			action:   ActionView,
			resource: ResourceMedicalRecords,
			expected: false,
		},
		{
			name:     "patient may not create records",
			user:     &User{ID: "P1", Role: RolePatient},
			action:   ActionCreate,
			resource: ResourceMedicalRecords,
			expected: false,
		},
		{
			name:     "doctor may create records",
			user:     &User{ID: "D1", Role: RoleDoctor},
			action:   ActionCreate,
			resource: ResourceMedicalRecords,
			expected: true,
		},
		{
			name:     "doctor may only delete own records",
			user:     &User{ID: "D1", Role: RoleDoctor},
			action:   ActionDelete,
			resource: ResourceMedicalRecords,
			expected: false,
		},
		{
			name:     "doctor delete grant on own record class",
			user:     &User{ID: "D1", Role: RoleDoctor},
			action:   ActionDelete,
			resource: ResourceOwnMedicalRecords,
			expected: true,
		},
		{
			name:     "staff may view records",
			user:     &User{ID: "S1", Role: RoleStaff},
			action:   ActionView,
			resource: ResourceMedicalRecords,
			expected: true,
		},
		{
			name:     "staff may not delete records",
			user:     &User{ID: "S1", Role: RoleStaff},
			action:   ActionDelete,
			resource: ResourceMedicalRecords,
			expected: false,
		},
		{
			name:     "unknown role has no grants",
			user:     &User{ID: "X1", Role: Role("intern")},
			action:   ActionView,
			resource: ResourceMedicalRecords,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasPermission(tt.user, tt.action, tt.resource))
		})
	}
}

func TestCanViewRecord(t *testing.T) {
	rec := &record.MedicalRecord{ID: "QmHash", PatientID: "P1", DoctorID: "D1"}

	assert.True(t, CanViewRecord(&User{ID: "A1", Role: RoleAdmin}, rec))
	assert.True(t, CanViewRecord(&User{ID: "D2", Role: RoleDoctor}, rec))
	assert.True(t, CanViewRecord(&User{ID: "S1", Role: RoleStaff}, rec))
	assert.True(t, CanViewRecord(&User{ID: "P1", Role: RolePatient}, rec))
	assert.False(t, CanViewRecord(&User{ID: "P2", Role: RolePatient}, rec))
	assert.False(t, CanViewRecord(nil, rec))
	assert.False(t, CanViewRecord(&User{ID: "A1", Role: RoleAdmin}, nil))
}

func TestCanDeleteRecord(t *testing.T) {
	rec := &record.MedicalRecord{ID: "QmHash", PatientID: "P1", DoctorID: "D1"}

	assert.True(t, CanDeleteRecord(&User{ID: "A1", Role: RoleAdmin}, rec))
	assert.True(t, CanDeleteRecord(&User{ID: "D1", Role: RoleDoctor}, rec))
	assert.False(t, CanDeleteRecord(&User{ID: "D2", Role: RoleDoctor}, rec))
	assert.False(t, CanDeleteRecord(&User{ID: "P1", Role: RolePatient}, rec))
	assert.False(t, CanDeleteRecord(&User{ID: "S1", Role: RoleStaff}, rec))
	assert.False(t, CanDeleteRecord(nil, rec))
}

func TestCanCreateRecord(t *testing.T) {
	assert.True(t, CanCreateRecord(&User{ID: "A1", Role: RoleAdmin}))
	assert.True(t, CanCreateRecord(&User{ID: "D1", Role: RoleDoctor}))
	assert.True(t, CanCreateRecord(&User{ID: "S1", Role: RoleStaff}))
	assert.False(t, CanCreateRecord(&User{ID: "P1", Role: RolePatient}))
	assert.False(t, CanCreateRecord(nil))
}
