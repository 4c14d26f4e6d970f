package dialog

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"topic-lab/domain"
	"topic-lab/errors"
)

// startRelease lets a teacher take a topic they supervise away from its
// student and back to the free pool. The displaced student is told about it.
func (e *Engine) startRelease(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	teacher, msgs, err := e.requireTeacher(ctx, id)
	if msgs != nil || err != nil {
		return msgs, err
	}

	topics, err := e.topicReads.ListByTeacher(ctx, teacher.ID)
	if err != nil {
		return e.abort(id, err)
	}
	// Approved topics end up closed, so anything a student holds qualifies.
	taken := lo.Filter(topics, func(t domain.Topic, _ int) bool {
		return t.Status != domain.StatusFree
	})
	if len(taken) == 0 {
		return e.reply(id, "None of your topics is taken right now."), nil
	}

	sess := e.sessions.Begin(id, KindRelease, stepPickTopic)
	options := topicOptions(taken)
	sess.Offer(options)
	return e.reply(id, "Pick the topic to release:", options...), nil
}

func (e *Engine) advanceRelease(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	if sess.Step != stepPickTopic {
		return e.abort(id, fmt.Errorf("release: unknown step %q", sess.Step))
	}

	key, ok := sess.Resolve(input)
	if !ok {
		return e.reply(id, "Please pick one of the listed topics."), nil
	}
	topicID, ok := parseID(key, "topic:")
	if !ok {
		return e.reply(id, "Please pick one of the listed topics."), nil
	}

	teacher, msgs, err := e.requireTeacher(ctx, id)
	if msgs != nil || err != nil {
		e.sessions.End(id)
		return msgs, err
	}

	// Remember who held the topic before the row flips back to free.
	before, err := e.topicReads.GetByID(ctx, topicID)
	if err != nil && err != errors.ErrNotFound {
		return e.abort(id, err)
	}

	topic, err := e.topics.Release(ctx, teacher, topicID)
	switch err {
	case nil:
	case errors.ErrTopicNotOwned:
		e.sessions.End(id)
		return e.reply(id, "This topic is not yours to release, or it is already free."), nil
	default:
		return e.abort(id, err)
	}

	e.sessions.End(id)
	out := e.reply(id, fmt.Sprintf("Topic «%s» is free again.", topic.Title))
	if before.StudentID != nil {
		if student, err := e.participants.StudentByID(ctx, *before.StudentID); err == nil {
			out = append(out, domain.Message{
				To:   student.Identity,
				Text: fmt.Sprintf("Your topic «%s» was released by the supervisor.", topic.Title),
			})
		}
	}
	return out, nil
}
