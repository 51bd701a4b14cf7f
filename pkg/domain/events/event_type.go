package events

// EventType represents the type of an event in the system.
type EventType string

// Event type constants
const (
	// Ledger events
	EventTypeAccountAdded   EventType = "Account.Added"
	EventTypeAccountUpdated EventType = "Account.Updated"
	EventTypeAccountDeleted EventType = "Account.Deleted"
	EventTypeLedgerCleared  EventType = "Ledger.Cleared"

	// Snapshot events
	EventTypeSnapshotTaken EventType = "Snapshot.Taken"

	// Family events
	EventTypeFamilyCreated EventType = "Family.Created"
	EventTypeFamilyUpdated EventType = "Family.Updated"
	EventTypeFamilyDeleted EventType = "Family.Deleted"

	// Membership events
	EventTypeMemberRemoved     EventType = "Member.Removed"
	EventTypeMemberRoleChanged EventType = "Member.RoleChanged"
	EventTypeMemberLeft        EventType = "Member.Left"

	// Invitation events
	EventTypeInvitationCreated   EventType = "Invitation.Created"
	EventTypeInvitationCancelled EventType = "Invitation.Cancelled"
	EventTypeInvitationAccepted  EventType = "Invitation.Accepted"
	EventTypeInvitationRejected  EventType = "Invitation.Rejected"

	// User events
	EventTypeUserRegistered EventType = "User.Registered"
)

// AllEventTypes lists every event type, used to pre-register metric labels.
var AllEventTypes = []EventType{
	EventTypeAccountAdded, EventTypeAccountUpdated, EventTypeAccountDeleted, EventTypeLedgerCleared,
	EventTypeSnapshotTaken,
	EventTypeFamilyCreated, EventTypeFamilyUpdated, EventTypeFamilyDeleted,
	EventTypeMemberRemoved, EventTypeMemberRoleChanged, EventTypeMemberLeft,
	EventTypeInvitationCreated, EventTypeInvitationCancelled, EventTypeInvitationAccepted, EventTypeInvitationRejected,
	EventTypeUserRegistered,
}

// String returns the string representation of the event type.
func (et EventType) String() string {
	return string(et)
}
