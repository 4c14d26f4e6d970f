package dialog

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"topic-lab/contract"
	"topic-lab/domain"
	"topic-lab/errors"
	"topic-lab/projection"
	"topic-lab/repositories"
	"topic-lab/services"
)

type Settings struct {
	// ListLimit caps option lists offered inside dialogs.
	ListLimit int
	// SearchLimit caps search result sets.
	SearchLimit int
}

// Engine is the single entry point the transport's dialog router calls.
// It owns the session store and computes, per inbound event, the next
// session state and the outbound messages. A returned message may target
// a participant other than the sender; the dispatcher delivers each to
// its addressee.
type Engine struct {
	sessions     *Store
	participants *services.ParticipantService
	topics       *services.TopicService
	handshake    *services.HandshakeService
	topicReads   repositories.ITopicRepository
	departments  repositories.IDepartmentRepository
	categories   repositories.ICategoryRepository
	searches     repositories.ISearchLogRepository
	reporter     *projection.Reporter
	events       contract.EventPublisher
	settings     Settings
	log          *slog.Logger
}

func NewEngine(
	sessions *Store,
	participants *services.ParticipantService,
	topics *services.TopicService,
	handshake *services.HandshakeService,
	topicReads repositories.ITopicRepository,
	departments repositories.IDepartmentRepository,
	categories repositories.ICategoryRepository,
	searches repositories.ISearchLogRepository,
	reporter *projection.Reporter,
	events contract.EventPublisher,
	settings Settings,
	log *slog.Logger,
) *Engine {
	return &Engine{
		sessions:     sessions,
		participants: participants,
		topics:       topics,
		handshake:    handshake,
		topicReads:   topicReads,
		departments:  departments,
		categories:   categories,
		searches:     searches,
		reporter:     reporter,
		events:       events,
		settings:     settings,
		log:          log,
	}
}

// Sessions exposes the store for the janitor and the monitor.
func (e *Engine) Sessions() *Store { return e.sessions }

// HandleEvent processes exactly one inbound event for one participant.
// The dispatcher guarantees no two events of the same participant run
// concurrently; events of distinct participants may.
func (e *Engine) HandleEvent(ctx context.Context, id domain.Identity, text string) ([]domain.Message, error) {
	input := strings.TrimSpace(text)

	// Handshake decisions arrive out-of-band from any session state.
	if isDecisionToken(input) {
		return e.handleDecision(ctx, id, input)
	}

	if sess, ok := e.sessions.Get(id); ok {
		if isCancel(input) {
			e.sessions.End(id)
			return e.reply(id, "Operation cancelled."), nil
		}
		return e.advance(ctx, sess, input)
	}

	return e.handleCommand(ctx, id, input)
}

func (e *Engine) advance(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	switch sess.Kind {
	case KindRegistration:
		return e.advanceRegistration(ctx, sess, input)
	case KindAuthor:
		return e.advanceAuthor(ctx, sess, input)
	case KindReserve:
		return e.advanceReserve(ctx, sess, input)
	case KindChoose:
		return e.advanceChoose(ctx, sess, input)
	case KindDetach:
		return e.advanceDetach(ctx, sess, input)
	case KindRelease:
		return e.advanceRelease(ctx, sess, input)
	case KindApprove:
		return e.advanceApprove(ctx, sess, input)
	case KindSearch:
		return e.advanceSearch(ctx, sess, input)
	case KindCategories:
		return e.advanceCategories(ctx, sess, input)
	case KindProfile:
		return e.advanceProfile(ctx, sess, input)
	case KindDelete:
		return e.advanceDelete(ctx, sess, input)
	case KindAnalytics:
		return e.advanceAnalytics(ctx, sess, input)
	default:
		// Unknown kind would be a defect; drop the session rather than trap
		// the participant in it.
		e.sessions.End(sess.Identity)
		return e.reply(sess.Identity, "Something went wrong, please start over."), nil
	}
}

func (e *Engine) handleCommand(ctx context.Context, id domain.Identity, input string) ([]domain.Message, error) {
	switch normalize(input) {
	case CmdStart:
		return e.start(ctx, id)
	case CmdSuggest:
		return e.startAuthor(ctx, id)
	case CmdFree:
		return e.startReserve(ctx, id)
	case CmdChoose:
		return e.startChoose(ctx, id)
	case CmdDetach:
		return e.startDetach(ctx, id)
	case CmdRelease:
		return e.startRelease(ctx, id)
	case CmdApprove:
		return e.startApprove(ctx, id)
	case CmdSearch:
		return e.startSearch(ctx, id)
	case CmdCategories:
		return e.startCategories(ctx, id)
	case CmdProfile:
		return e.startProfile(ctx, id)
	case CmdAnalytics:
		return e.startAnalytics(ctx, id)
	case CmdDelete:
		return e.startDelete(ctx, id)
	case CmdCancel:
		return e.reply(id, "Nothing to cancel."), nil
	}

	// Anything else from an unregistered participant starts registration;
	// registered ones get pointed back at the menu.
	if _, err := e.participants.WhoIs(ctx, id); err == errors.ErrNotRegistered {
		return e.startRegistration(id), nil
	} else if err != nil {
		return e.abort(id, err)
	}
	return e.reply(id, "Unknown command. Use the menu."), nil
}

// start greets a known participant or begins registration for a new one.
func (e *Engine) start(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	role, err := e.participants.WhoIs(ctx, id)
	switch err {
	case nil:
	case errors.ErrNotRegistered:
		return e.startRegistration(id), nil
	default:
		return e.abort(id, err)
	}

	if role == domain.RoleTeacher {
		return e.reply(id, "Welcome back, teacher!"), nil
	}
	return e.reply(id, "Welcome back, student!"), nil
}

func (e *Engine) reply(id domain.Identity, text string, options ...domain.Option) []domain.Message {
	return []domain.Message{{To: id, Text: text, Options: options}}
}

// abort ends any session of the participant and reports a neutral failure.
// The error is returned for logging; it never crosses into another
// participant's processing.
func (e *Engine) abort(id domain.Identity, err error) ([]domain.Message, error) {
	e.sessions.End(id)
	e.log.Error("dialog aborted", "participant", id, "error", err)
	return e.reply(id, "Something went wrong, please try again."), err
}

func parseID(key, prefix string) (int64, bool) {
	if !strings.HasPrefix(key, prefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(key, prefix), 10, 64)
	return id, err == nil
}
