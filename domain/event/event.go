package event

import (
	"time"

	"github.com/google/uuid"

	"topic-lab/domain"
)

// DomainEvent is the fact published after a successful core operation.
// Sinks consume events asynchronously; no event carries behaviour.
type DomainEvent interface {
	Actor() domain.Identity
	ActorRole() domain.Role
	Action() string
	TopicID() *int64
	OccurredAt() time.Time
}

type base struct {
	ID    uuid.UUID
	Whom  domain.Identity
	Role  domain.Role
	At    time.Time
	Topic *int64
}

func (b base) Actor() domain.Identity { return b.Whom }

func (b base) ActorRole() domain.Role { return b.Role }

func (b base) TopicID() *int64 { return b.Topic }

func (b base) OccurredAt() time.Time { return b.At }

func newBase(actor domain.Identity, role domain.Role, topicID *int64) base {
	return base{ID: uuid.New(), Whom: actor, Role: role, At: time.Now().UTC(), Topic: topicID}
}

type TopicAuthored struct {
	base
	Title    string
	Keywords []string
}

func (TopicAuthored) Action() string { return domain.ActionTopicAuthored }

func NewTopicAuthored(actor domain.Identity, role domain.Role, topicID int64, title string, keywords []string) TopicAuthored {
	return TopicAuthored{base: newBase(actor, role, &topicID), Title: title, Keywords: keywords}
}

type TopicReserved struct {
	base
	Title string
}

func (TopicReserved) Action() string { return domain.ActionReserved }

func NewTopicReserved(actor domain.Identity, topicID int64, title string) TopicReserved {
	return TopicReserved{base: newBase(actor, domain.RoleStudent, &topicID), Title: title}
}

type TopicDetached struct {
	base
	Title string
}

func (TopicDetached) Action() string { return domain.ActionDetached }

func NewTopicDetached(actor domain.Identity, topicID int64, title string) TopicDetached {
	return TopicDetached{base: newBase(actor, domain.RoleStudent, &topicID), Title: title}
}

type TopicApproved struct {
	base
	Title string
}

func (TopicApproved) Action() string { return domain.ActionApproved }

func NewTopicApproved(actor domain.Identity, topicID int64, title string) TopicApproved {
	return TopicApproved{base: newBase(actor, domain.RoleTeacher, &topicID), Title: title}
}

type TopicReleased struct {
	base
	Title string
}

func (TopicReleased) Action() string { return domain.ActionReleased }

func NewTopicReleased(actor domain.Identity, topicID int64, title string) TopicReleased {
	return TopicReleased{base: newBase(actor, domain.RoleTeacher, &topicID), Title: title}
}

type ReservationRequested struct {
	base
	Title string
}

func (ReservationRequested) Action() string { return domain.ActionRequested }

func NewReservationRequested(actor domain.Identity, topicID int64, title string) ReservationRequested {
	return ReservationRequested{base: newBase(actor, domain.RoleStudent, &topicID), Title: title}
}

type ReservationDeclined struct {
	base
}

func (ReservationDeclined) Action() string { return domain.ActionDeclined }

func NewReservationDeclined(actor domain.Identity, topicID int64) ReservationDeclined {
	return ReservationDeclined{base: newBase(actor, domain.RoleTeacher, &topicID)}
}

type ParticipantRegistered struct {
	base
}

func (ParticipantRegistered) Action() string { return domain.ActionRegistered }

func NewParticipantRegistered(actor domain.Identity, role domain.Role) ParticipantRegistered {
	return ParticipantRegistered{base: newBase(actor, role, nil)}
}

type AccountDeleted struct {
	base
}

func (AccountDeleted) Action() string { return domain.ActionDeleted }

func NewAccountDeleted(actor domain.Identity, role domain.Role) AccountDeleted {
	return AccountDeleted{base: newBase(actor, role, nil)}
}

type SearchPerformed struct {
	base
	Query string
	Hits  int
}

func (SearchPerformed) Action() string { return domain.ActionSearch }

func NewSearchPerformed(actor domain.Identity, role domain.Role, query string, hits int) SearchPerformed {
	return SearchPerformed{base: newBase(actor, role, nil), Query: query, Hits: hits}
}
