// Package policy is the single place where "who may do what" is decided.
// Every rule is a pure function over (role, actor id, owner id, action);
// nothing in here touches the database or the request context.
package policy

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

// ParseRole maps an untrusted string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Elevated reports whether the role carries staff-level rights.
// Staff and admin share read/transition access to every resource.
func (r Role) Elevated() bool {
	return r == RoleStaff || r == RoleAdmin
}

type Action string

const (
	ActionCreate    Action = "create"
	ActionRead      Action = "read"
	ActionUpdate    Action = "update"
	ActionCancel    Action = "cancel"
	ActionSetStatus Action = "set_status"
	ActionDelete    Action = "delete"
)

// elevatedActions are granted to staff/admin on any resource regardless
// of ownership. Creation is deliberately absent: nobody places orders or
// books tables on behalf of someone else.
var elevatedActions = map[Action]bool{
	ActionRead:      true,
	ActionUpdate:    true,
	ActionCancel:    true,
	ActionSetStatus: true,
	ActionDelete:    true,
}

// ownerActions are the self-service rights of the resource owner. Delete
// stays subject to the per-entity lifecycle gating in CanDelete.
var ownerActions = map[Action]bool{
	ActionCreate: true,
	ActionRead:   true,
	ActionUpdate: true,
	ActionCancel: true,
	ActionDelete: true,
}

// CanAct decides whether the actor may perform action on a resource owned
// by ownerID. Precedence: elevated role first, then ownership, then deny.
func CanAct(actorRole Role, actorID, ownerID uint, action Action) bool {
	if actorRole.Elevated() && elevatedActions[action] {
		return true
	}
	if actorID != 0 && actorID == ownerID && ownerActions[action] {
		return true
	}
	return false
}

// CanAssignRole: handing out staff/admin is admin-only, with no staff
// exception.
func CanAssignRole(actorRole Role) bool {
	return actorRole == RoleAdmin
}

type Entity string

const (
	EntityOrder   Entity = "order"
	EntityBooking Entity = "booking"
)

// ownerDeleteNeedsTerminal makes the delete asymmetry between the two
// entities an explicit table instead of two diverging code paths: order
// owners must wait for a terminal status, booking owners never do.
var ownerDeleteNeedsTerminal = map[Entity]bool{
	EntityOrder:   true,
	EntityBooking: false,
}

// CanDelete is the generic delete capability check. terminal reports
// whether the resource currently sits in a terminal status.
func CanDelete(entity Entity, actorRole Role, actorID, ownerID uint, terminal bool) bool {
	if actorRole.Elevated() {
		return true
	}
	if actorID == 0 || actorID != ownerID {
		return false
	}
	if ownerDeleteNeedsTerminal[entity] {
		return terminal
	}
	return true
}
