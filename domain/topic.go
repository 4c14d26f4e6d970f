package domain

type TopicStatus string

const (
	StatusFree     TopicStatus = "free"
	StatusReserved TopicStatus = "reserved"
	StatusClosed   TopicStatus = "closed"
)

// Topic is the scarce resource negotiated between students and teachers.
//
// Invariant: Status == free exactly when StudentID is nil. Reserved and
// closed topics always carry the holding student. The proposer of a
// student-authored topic lives in ProposedBy and does not participate in
// that invariant; it is promoted to StudentID when a teacher approves the
// proposal.
type Topic struct {
	ID           int64
	Title        string
	Description  *string
	Keywords     []string
	Status       TopicStatus
	TeacherID    *int64
	StudentID    *int64
	ProposedBy   *int64
	DepartmentID int64
}

// Consistent reports whether the status/ownership invariant holds.
// Every row leaving the repository satisfies it; a false result is a defect.
func (t Topic) Consistent() bool {
	if t.Status == StatusFree {
		return t.StudentID == nil
	}
	return t.StudentID != nil
}

// Supervised reports whether claiming the topic goes through the teacher
// approval handshake instead of self-service reservation.
func (t Topic) Supervised() bool {
	return t.TeacherID != nil
}

// TopicCard is the denormalized row used by listings and search results,
// with owner names already resolved.
type TopicCard struct {
	ID          int64
	Title       string
	Description *string
	Keywords    []string
	Status      TopicStatus
	TeacherName *string
	StudentName *string
}
