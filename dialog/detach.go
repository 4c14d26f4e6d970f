package dialog

import (
	"context"
	"fmt"

	"topic-lab/domain"
	"topic-lab/errors"
)

const stepConfirm Step = "confirm"

const (
	inputYes = "yes"
	inputNo  = "no"
)

// startDetach lets a student give up the topic they hold. A supervised
// topic returns to its teacher's pool; an unsupervised one becomes free.
func (e *Engine) startDetach(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	student, msgs, err := e.requireStudent(ctx, id)
	if msgs != nil || err != nil {
		return msgs, err
	}

	topics, err := e.topicReads.ListByStudent(ctx, student.ID)
	if err != nil {
		return e.abort(id, err)
	}
	if len(topics) == 0 {
		return e.reply(id, "You have no reserved topic."), nil
	}

	sess := e.sessions.Begin(id, KindDetach, stepPickTopic)
	options := topicOptions(topics)
	sess.Offer(options)
	return e.reply(id, "Pick the topic to detach from:", options...), nil
}

func (e *Engine) advanceDetach(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	switch sess.Step {
	case stepPickTopic:
		key, ok := sess.Resolve(input)
		if !ok {
			return e.reply(id, "Please pick one of the listed topics."), nil
		}
		topicID, ok := parseID(key, "topic:")
		if !ok {
			return e.reply(id, "Please pick one of the listed topics."), nil
		}
		sess.Set("topic_id", fmt.Sprintf("%d", topicID))
		sess.Step = stepConfirm
		options := []domain.Option{
			{Key: inputYes, Label: "Yes"},
			{Key: inputNo, Label: "No"},
		}
		sess.Offer(options)
		return e.reply(id, "Detach from this topic?", options...), nil

	case stepConfirm:
		key, ok := sess.Resolve(input)
		if !ok {
			return e.reply(id, "Please answer «Yes» or «No»."), nil
		}
		if key == inputNo {
			e.sessions.End(id)
			return e.reply(id, "Kept as is."), nil
		}

		topicID, ok := parseID("topic:"+sess.Get("topic_id"), "topic:")
		if !ok {
			return e.abort(id, fmt.Errorf("detach: corrupt topic id %q", sess.Get("topic_id")))
		}
		student, msgs, err := e.requireStudent(ctx, id)
		if msgs != nil || err != nil {
			e.sessions.End(id)
			return msgs, err
		}

		topic, err := e.topics.Detach(ctx, student, topicID)
		switch err {
		case nil:
		case errors.ErrTopicNotOwned:
			e.sessions.End(id)
			return e.reply(id, "This topic is not reserved by you."), nil
		default:
			return e.abort(id, err)
		}

		e.sessions.End(id)
		return e.reply(id, fmt.Sprintf("Topic «%s» detached. It is free again.", topic.Title)), nil
	}

	return e.abort(id, fmt.Errorf("detach: unknown step %q", sess.Step))
}
