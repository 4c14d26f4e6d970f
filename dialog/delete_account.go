package dialog

import (
	"context"
	"fmt"

	"topic-lab/domain"
	"topic-lab/errors"
)

const stepConfirmDelete Step = "confirm_delete"

// startDelete asks for the explicit confirmation sentinel before removing
// the account and everything it holds.
func (e *Engine) startDelete(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	if _, err := e.participants.WhoIs(ctx, id); err != nil {
		switch err {
		case errors.ErrNotRegistered:
			return e.reply(id, "You are not registered."), nil
		default:
			return e.abort(id, err)
		}
	}

	e.sessions.Begin(id, KindDelete, stepConfirmDelete)
	return e.reply(id, fmt.Sprintf(
		"This removes your account and every topic tied to it. Type «%s» to proceed, or «%s».",
		InputConfirmDelete, CmdCancel)), nil
}

func (e *Engine) advanceDelete(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	if sess.Step != stepConfirmDelete {
		return e.abort(id, fmt.Errorf("delete: unknown step %q", sess.Step))
	}
	if normalize(input) != InputConfirmDelete {
		return e.reply(id, fmt.Sprintf("Type «%s» exactly, or «%s» to keep the account.", InputConfirmDelete, CmdCancel)), nil
	}

	if _, err := e.participants.DeleteAccount(ctx, id); err != nil {
		switch err {
		case errors.ErrNotRegistered:
			e.sessions.End(id)
			return e.reply(id, "You are not registered."), nil
		default:
			return e.abort(id, err)
		}
	}

	e.sessions.End(id)
	return e.reply(id, "Your account is gone. Send /start to register again."), nil
}
