package dialog

import (
	"context"
	"fmt"
	"strings"

	"topic-lab/domain"
	"topic-lab/domain/event"
	"topic-lab/errors"
	"topic-lab/search"
)

const (
	stepSearchMode  Step = "search_mode"
	stepSearchQuery Step = "search_query"
)

const (
	searchKeyKeywords = "search:keywords"
	searchKeyTitle    = "search:title"
	searchKeyTeacher  = "search:teacher"
)

// startSearch asks how to search before asking what for. Keyword search
// scans every topic card in memory; title and supervisor search go to the
// store directly.
func (e *Engine) startSearch(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	role, err := e.participants.WhoIs(ctx, id)
	if err != nil {
		if err == errors.ErrNotRegistered {
			return e.startRegistration(id), nil
		}
		return e.abort(id, err)
	}

	sess := e.sessions.Begin(id, KindSearch, stepSearchMode)
	sess.Set("role", string(role))
	options := []domain.Option{
		{Key: searchKeyKeywords, Label: "By keywords"},
		{Key: searchKeyTitle, Label: "By title"},
		{Key: searchKeyTeacher, Label: "By supervisor"},
	}
	sess.Offer(options)
	return e.reply(id, "How would you like to search?", options...), nil
}

func (e *Engine) advanceSearch(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	switch sess.Step {
	case stepSearchMode:
		key, ok := sess.Resolve(input)
		if !ok {
			return e.reply(id, "Please pick one of the offered search modes."), nil
		}
		sess.Set("mode", key)
		sess.Step = stepSearchQuery
		switch key {
		case searchKeyKeywords:
			return e.reply(id, "Enter keywords, separated by commas:"), nil
		case searchKeyTitle:
			return e.reply(id, "Enter a part of the title (at least 3 characters):"), nil
		default:
			return e.reply(id, "Enter the supervisor's name (at least 2 characters):"), nil
		}

	case stepSearchQuery:
		return e.runSearch(ctx, sess, input)
	}

	return e.abort(id, fmt.Errorf("search: unknown step %q", sess.Step))
}

func (e *Engine) runSearch(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity
	query := strings.TrimSpace(input)

	var (
		cards []domain.TopicCard
		err   error
	)
	switch sess.Get("mode") {
	case searchKeyKeywords:
		terms := search.ParseKeywords(query)
		if len(terms) == 0 {
			return e.reply(id, "Enter at least one keyword:"), nil
		}
		matcher, merr := search.NewMatcher(terms)
		if merr != nil {
			return e.reply(id, "These keywords contain nothing searchable. Try again:"), nil
		}
		var all []domain.TopicCard
		all, err = e.topicReads.ListCards(ctx, e.settings.SearchLimit)
		if err == nil {
			cards = matcher.Filter(all)
		}
	case searchKeyTitle:
		if !minRunes(query, 3) {
			return e.reply(id, "The title fragment must be at least 3 characters long. Try again:"), nil
		}
		cards, err = e.topicReads.SearchByTitle(ctx, query, e.settings.SearchLimit)
	default:
		if !minRunes(query, 2) {
			return e.reply(id, "The name must be at least 2 characters long. Try again:"), nil
		}
		cards, err = e.topicReads.SearchByTeacher(ctx, query, e.settings.SearchLimit)
	}
	if err != nil {
		return e.abort(id, err)
	}

	// The log feeds the popular-queries report; a failed append must not
	// fail the search itself.
	if lerr := e.searches.Append(ctx, id, query); lerr != nil {
		e.log.Warn("search log append failed", "participant", id, "error", lerr)
	}
	e.events.Publish(event.NewSearchPerformed(id, domain.Role(sess.Get("role")), query, len(cards)))

	e.sessions.End(id)
	if len(cards) == 0 {
		return e.reply(id, "Nothing found."), nil
	}
	return e.reply(id, renderCards("Found:", cards)), nil
}
