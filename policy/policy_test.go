package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"customer", "staff", "admin"} {
		role, ok := ParseRole(s)
		assert.True(t, ok)
		assert.Equal(t, Role(s), role)
	}

	for _, s := range []string{"", "chef", "Admin", "root"} {
		_, ok := ParseRole(s)
		assert.False(t, ok, "role %q should not parse", s)
	}
}

func TestElevated(t *testing.T) {
	assert.False(t, RoleCustomer.Elevated())
	assert.True(t, RoleStaff.Elevated())
	assert.True(t, RoleAdmin.Elevated())
}

func TestCanAct(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		actorID uint
		ownerID uint
		action  Action
		want    bool
	}{
		{"owner reads own", RoleCustomer, 1, 1, ActionRead, true},
		{"owner cancels own", RoleCustomer, 1, 1, ActionCancel, true},
		{"owner creates own", RoleCustomer, 1, 1, ActionCreate, true},
		{"customer reads other", RoleCustomer, 1, 2, ActionRead, false},
		{"customer sets status on own", RoleCustomer, 1, 1, ActionSetStatus, false},
		{"staff reads any", RoleStaff, 5, 2, ActionRead, true},
		{"staff sets status on any", RoleStaff, 5, 2, ActionSetStatus, true},
		{"admin sets status on any", RoleAdmin, 9, 2, ActionSetStatus, true},
		{"staff cannot create for others", RoleStaff, 5, 2, ActionCreate, false},
		{"staff creates own", RoleStaff, 5, 5, ActionCreate, true},
		{"zero actor never owns", RoleCustomer, 0, 0, ActionRead, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAct(tt.role, tt.actorID, tt.ownerID, tt.action))
		})
	}
}

func TestCanAssignRole(t *testing.T) {
	assert.True(t, CanAssignRole(RoleAdmin))
	assert.False(t, CanAssignRole(RoleStaff), "no staff exception for role assignment")
	assert.False(t, CanAssignRole(RoleCustomer))
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name     string
		entity   Entity
		role     Role
		actorID  uint
		ownerID  uint
		terminal bool
		want     bool
	}{
		{"order owner terminal", EntityOrder, RoleCustomer, 1, 1, true, true},
		{"order owner non-terminal", EntityOrder, RoleCustomer, 1, 1, false, false},
		{"order staff non-terminal", EntityOrder, RoleStaff, 5, 1, false, true},
		{"order stranger terminal", EntityOrder, RoleCustomer, 2, 1, true, false},
		{"booking owner non-terminal", EntityBooking, RoleCustomer, 1, 1, false, true},
		{"booking owner terminal", EntityBooking, RoleCustomer, 1, 1, true, true},
		{"booking stranger", EntityBooking, RoleCustomer, 2, 1, false, false},
		{"booking admin", EntityBooking, RoleAdmin, 9, 1, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want,
				CanDelete(tt.entity, tt.role, tt.actorID, tt.ownerID, tt.terminal))
		})
	}
}
