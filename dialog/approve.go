package dialog

import (
	"context"
	"fmt"

	"topic-lab/domain"
	"topic-lab/errors"
)

// startApprove lists student proposals awaiting a supervisor. Approving one
// assigns it to its proposer in the same step.
func (e *Engine) startApprove(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	_, msgs, err := e.requireTeacher(ctx, id)
	if msgs != nil || err != nil {
		return msgs, err
	}

	proposals, err := e.topicReads.ListProposals(ctx, e.settings.ListLimit)
	if err != nil {
		return e.abort(id, err)
	}
	if len(proposals) == 0 {
		return e.reply(id, "No proposals are waiting for approval."), nil
	}

	sess := e.sessions.Begin(id, KindApprove, stepPickTopic)
	options := make([]domain.Option, 0, len(proposals))
	for _, c := range proposals {
		options = append(options, domain.Option{
			Key:   fmt.Sprintf("topic:%d", c.ID),
			Label: c.Title,
		})
	}
	sess.Offer(options)
	return e.reply(id, "Pick a proposal to approve:", options...), nil
}

func (e *Engine) advanceApprove(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	if sess.Step != stepPickTopic {
		return e.abort(id, fmt.Errorf("approve: unknown step %q", sess.Step))
	}

	key, ok := sess.Resolve(input)
	if !ok {
		return e.reply(id, "Please pick one of the listed proposals."), nil
	}
	topicID, ok := parseID(key, "topic:")
	if !ok {
		return e.reply(id, "Please pick one of the listed proposals."), nil
	}

	teacher, msgs, err := e.requireTeacher(ctx, id)
	if msgs != nil || err != nil {
		e.sessions.End(id)
		return msgs, err
	}

	topic, err := e.topics.ApproveProposal(ctx, teacher, topicID)
	switch err {
	case nil:
	case errors.ErrTopicUnavailable:
		e.sessions.End(id)
		return e.reply(id, "This proposal was already handled."), nil
	case errors.ErrStudentHasTopic:
		e.sessions.End(id)
		return e.reply(id, "The proposer already holds another topic."), nil
	default:
		return e.abort(id, err)
	}

	e.sessions.End(id)
	out := e.reply(id, fmt.Sprintf("Topic «%s» approved and assigned to its author.", topic.Title))
	if topic.StudentID != nil {
		if student, err := e.participants.StudentByID(ctx, *topic.StudentID); err == nil {
			out = append(out, domain.Message{
				To:   student.Identity,
				Text: fmt.Sprintf("Your topic «%s» was approved. It is now yours.", topic.Title),
			})
		}
	}
	return out, nil
}
