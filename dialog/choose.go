package dialog

import (
	"context"
	"fmt"

	"topic-lab/domain"
	"topic-lab/errors"
)

// startChoose lists free supervised topics; picking one sends a reservation
// request to the supervising teacher instead of reserving outright.
func (e *Engine) startChoose(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	_, msgs, err := e.requireStudent(ctx, id)
	if msgs != nil || err != nil {
		return msgs, err
	}

	topics, err := e.topicReads.ListFreeSupervised(ctx, e.settings.ListLimit)
	if err != nil {
		return e.abort(id, err)
	}
	if len(topics) == 0 {
		return e.reply(id, "No supervised topics are open for requests right now."), nil
	}

	sess := e.sessions.Begin(id, KindChoose, stepPickTopic)
	options := topicOptions(topics)
	sess.Offer(options)
	return e.reply(id, "Pick a topic to request from its supervisor:", options...), nil
}

func (e *Engine) advanceChoose(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	if sess.Step != stepPickTopic {
		return e.abort(id, fmt.Errorf("choose: unknown step %q", sess.Step))
	}

	key, ok := sess.Resolve(input)
	if !ok {
		return e.reply(id, "Please pick one of the listed topics."), nil
	}
	topicID, ok := parseID(key, "topic:")
	if !ok {
		return e.reply(id, "Please pick one of the listed topics."), nil
	}

	student, msgs, err := e.requireStudent(ctx, id)
	if msgs != nil || err != nil {
		e.sessions.End(id)
		return msgs, err
	}

	topic, err := e.topicReads.GetByID(ctx, topicID)
	switch err {
	case nil:
	case errors.ErrNotFound:
		e.sessions.End(id)
		return e.reply(id, "This topic no longer exists."), nil
	default:
		return e.abort(id, err)
	}

	if err := e.handshake.Request(ctx, student, topic); err != nil {
		return e.abort(id, err)
	}

	e.sessions.End(id)
	return e.reply(id, fmt.Sprintf("Your request for «%s» was sent to the supervisor.", topic.Title)), nil
}
