package domain

import "time"

// Interaction is an append-only audit fact. The core only ever writes these;
// no control decision reads them back.
type Interaction struct {
	Actor   Identity
	Role    Role
	Action  string
	TopicID *int64
	Details string
	At      time.Time
}

// Audit action names.
const (
	ActionRegistered    = "registered"
	ActionTopicAuthored = "add_topic"
	ActionReserved      = "reserved"
	ActionDetached      = "detach_topic"
	ActionApproved      = "approve_topic"
	ActionReleased      = "release_topic"
	ActionRequested     = "request_topic"
	ActionDeclined      = "decline_request"
	ActionDeleted       = "delete_account"
	ActionSearch        = "search"
)
