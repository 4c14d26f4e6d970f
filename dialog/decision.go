package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"topic-lab/domain"
	"topic-lab/errors"
	"topic-lab/services"
)

func isDecisionToken(input string) bool {
	return strings.HasPrefix(input, services.ApprovePrefix) ||
		strings.HasPrefix(input, services.DeclinePrefix)
}

// handleDecision routes an approve/decline token to the handshake service
// and renders the teacher-facing outcome. The token carries the request id;
// the sender must be the teacher the request was addressed to.
func (e *Engine) handleDecision(ctx context.Context, id domain.Identity, input string) ([]domain.Message, error) {
	teacher, err := e.participants.Teacher(ctx, id)
	switch err {
	case nil:
	case errors.ErrNotRegistered:
		return e.reply(id, "Only teachers can decide on reservation requests."), nil
	default:
		return e.abort(id, err)
	}

	approve := strings.HasPrefix(input, services.ApprovePrefix)
	raw := strings.TrimPrefix(strings.TrimPrefix(input, services.ApprovePrefix), services.DeclinePrefix)
	requestID, err := uuid.Parse(raw)
	if err != nil {
		return e.reply(id, "This request reference is not valid."), nil
	}

	if approve {
		title, err := e.handshake.Approve(ctx, teacher, requestID)
		switch err {
		case nil:
			return e.reply(id, fmt.Sprintf("Topic «%s» is now reserved for the student.", title)), nil
		case errors.ErrStaleDecision:
			return e.reply(id, fmt.Sprintf("Topic «%s» changed since this request was made. Nothing was applied.", title)), nil
		case errors.ErrUnknownRequest:
			return e.reply(id, "This request is no longer pending."), nil
		default:
			return e.abort(id, err)
		}
	}

	title, err := e.handshake.Decline(ctx, teacher, requestID)
	switch err {
	case nil:
		return e.reply(id, fmt.Sprintf("Request for topic «%s» declined.", title)), nil
	case errors.ErrUnknownRequest:
		return e.reply(id, "This request is no longer pending."), nil
	default:
		return e.abort(id, err)
	}
}
