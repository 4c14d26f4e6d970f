package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"topic-lab/domain"
	"topic-lab/errors"
)

const stepPickTopic Step = "pick_topic"

// startReserve lists free unsupervised topics of the student's department
// for direct reservation. A teacher issuing the same command gets a
// read-only listing of every free topic instead.
func (e *Engine) startReserve(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	if _, err := e.participants.Teacher(ctx, id); err == nil {
		cards, err := e.topicReads.ListFreeCards(ctx, e.settings.ListLimit)
		if err != nil {
			return e.abort(id, err)
		}
		if len(cards) == 0 {
			return e.reply(id, "No free topics right now."), nil
		}
		return e.reply(id, renderCards("Free topics:", cards)), nil
	}

	student, msgs, err := e.requireStudent(ctx, id)
	if msgs != nil || err != nil {
		return msgs, err
	}

	topics, err := e.topicReads.ListFreeUnsupervised(ctx, student.DepartmentID, e.settings.ListLimit)
	if err != nil {
		return e.abort(id, err)
	}
	if len(topics) == 0 {
		return e.reply(id, "No free topics in your department right now."), nil
	}

	sess := e.sessions.Begin(id, KindReserve, stepPickTopic)
	options := topicOptions(topics)
	sess.Offer(options)
	return e.reply(id, "Pick a topic to reserve:", options...), nil
}

func (e *Engine) advanceReserve(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	if sess.Step != stepPickTopic {
		return e.abort(id, fmt.Errorf("reserve: unknown step %q", sess.Step))
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

	topic, err := e.topics.Reserve(ctx, student, topicID)
	switch err {
	case nil:
	case errors.ErrTopicUnavailable:
		e.sessions.End(id)
		return e.reply(id, "This topic is no longer available."), nil
	case errors.ErrStudentHasTopic:
		e.sessions.End(id)
		return e.reply(id, "You already have a reserved topic. Detach it first."), nil
	default:
		return e.abort(id, err)
	}

	e.sessions.End(id)
	return e.reply(id, fmt.Sprintf("Topic «%s» successfully reserved.", topic.Title)), nil
}

func topicOptions(topics []domain.Topic) []domain.Option {
	options := lo.Map(topics, func(t domain.Topic, _ int) domain.Option {
		return domain.Option{
			Key:   fmt.Sprintf("topic:%d", t.ID),
			Label: t.Title,
		}
	})
	return options
}

func renderCards(header string, cards []domain.TopicCard) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, c := range cards {
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("«%s»", c.Title))
		if c.TeacherName != nil {
			sb.WriteString(fmt.Sprintf("\nSupervisor: %s", *c.TeacherName))
		}
		if c.StudentName != nil {
			sb.WriteString(fmt.Sprintf("\nReserved by: %s", *c.StudentName))
		}
		if c.Description != nil {
			sb.WriteString("\n")
			sb.WriteString(*c.Description)
		}
		if len(c.Keywords) > 0 {
			sb.WriteString("\nKeywords: ")
			sb.WriteString(strings.Join(c.Keywords, ", "))
		}
	}
	return sb.String()
}
