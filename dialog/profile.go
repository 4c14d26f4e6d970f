package dialog

import (
	"context"
	"fmt"
	"strings"

	"topic-lab/domain"
	"topic-lab/errors"
)

const stepPickParticipant Step = "pick_participant"

// startProfile offers the roster; picking an entry shows that participant's
// public card.
func (e *Engine) startProfile(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	if _, err := e.participants.WhoIs(ctx, id); err != nil {
		if err == errors.ErrNotRegistered {
			return e.startRegistration(id), nil
		}
		return e.abort(id, err)
	}

	roster, err := e.participants.Roster(ctx)
	if err != nil {
		return e.abort(id, err)
	}
	if len(roster) == 0 {
		return e.reply(id, "Nobody is registered yet."), nil
	}
	if len(roster) > e.settings.ListLimit {
		roster = roster[:e.settings.ListLimit]
	}

	sess := e.sessions.Begin(id, KindProfile, stepPickParticipant)
	options := make([]domain.Option, 0, len(roster))
	for _, entry := range roster {
		options = append(options, domain.Option{
			Key:   fmt.Sprintf("%s:%d", entry.Role, entry.ID),
			Label: entry.Name,
		})
	}
	sess.Offer(options)
	return e.reply(id, "Whose profile?", options...), nil
}

func (e *Engine) advanceProfile(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	if sess.Step != stepPickParticipant {
		return e.abort(id, fmt.Errorf("profile: unknown step %q", sess.Step))
	}

	key, ok := sess.Resolve(input)
	if !ok {
		return e.reply(id, "Please pick one of the listed participants."), nil
	}
	role, rest, found := strings.Cut(key, ":")
	if !found {
		return e.reply(id, "Please pick one of the listed participants."), nil
	}
	participantID, ok := parseID("id:"+rest, "id:")
	if !ok {
		return e.reply(id, "Please pick one of the listed participants."), nil
	}

	profile, err := e.participants.Profile(ctx, domain.Role(role), participantID)
	switch err {
	case nil:
	case errors.ErrNotFound:
		e.sessions.End(id)
		return e.reply(id, "This participant is gone."), nil
	default:
		return e.abort(id, err)
	}

	e.sessions.End(id)
	return e.reply(id, renderProfile(profile)), nil
}

func renderProfile(p domain.Profile) string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	if p.Role == domain.RoleTeacher {
		sb.WriteString("\nRole: teacher")
	} else {
		sb.WriteString("\nRole: student")
	}
	if p.Email != nil {
		sb.WriteString("\nEmail: " + *p.Email)
	}
	if p.Phone != nil {
		sb.WriteString("\nPhone: " + *p.Phone)
	}
	if p.TopicTitle != nil {
		sb.WriteString(fmt.Sprintf("\nTopic: «%s»", *p.TopicTitle))
	}
	return sb.String()
}
