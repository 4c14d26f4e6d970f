package errors

import "fmt"

var (
	// Conflicts: a conditional update touched zero rows. These are normal
	// outcomes of the reservation protocol, reported to the user, never
	// escalated.
	ErrTopicUnavailable = fmt.Errorf("topic is unavailable or already taken")
	ErrTopicNotOwned    = fmt.Errorf("topic is not attached to the requester")
	ErrStudentHasTopic  = fmt.Errorf("student already holds a topic")
	ErrStaleDecision    = fmt.Errorf("decision refers to a topic that changed meanwhile")

	ErrAlreadyRegistered = fmt.Errorf("participant already registered")
	ErrNotRegistered     = fmt.Errorf("participant is not registered")

	ErrNotFound       = fmt.Errorf("referenced entity no longer exists")
	ErrUnknownRequest = fmt.Errorf("unknown handshake request")
	ErrWorkerPanic    = fmt.Errorf("worker panic")
)
