// Package search matches free-text queries against topic cards. Keyword
// search builds an Aho-Corasick automaton from the query terms and scans
// each topic's searchable text in one pass, so the cost per topic does not
// grow with the number of terms.
package search

import (
	"strings"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"topic-lab/domain"
)

type Matcher struct {
	machine *goahocorasick.Machine
}

// NewMatcher builds the automaton from normalized query terms. Terms that
// normalize to nothing are dropped; at least one surviving term is required.
func NewMatcher(terms []string) (*Matcher, error) {
	var patterns [][]rune
	for _, term := range terms {
		norm := normalizeRunes([]rune(term))
		if len(norm) > 0 {
			patterns = append(patterns, norm)
		}
	}
	if len(patterns) == 0 {
		return nil, ErrEmptyQuery
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Matcher{machine: m}, nil
}

// MatchCard reports whether any query term occurs in the card's title,
// keywords or description.
func (m *Matcher) MatchCard(card domain.TopicCard) bool {
	return m.matches(searchableText(card))
}

// Filter keeps the cards at least one term matches, preserving order.
func (m *Matcher) Filter(cards []domain.TopicCard) []domain.TopicCard {
	var hits []domain.TopicCard
	for _, card := range cards {
		if m.MatchCard(card) {
			hits = append(hits, card)
		}
	}
	return hits
}

func (m *Matcher) matches(text string) bool {
	norm := normalizeRunes([]rune(text))
	if len(norm) == 0 {
		return false
	}
	return len(m.machine.MultiPatternSearch(norm, true)) > 0
}

func searchableText(card domain.TopicCard) string {
	parts := []string{card.Title, strings.Join(card.Keywords, " ")}
	if card.Description != nil {
		parts = append(parts, *card.Description)
	}
	return strings.Join(parts, " ")
}

// normalizeRunes lowercases and strips punctuation, spacing and symbols so
// that "graph-algorithms" and "Graph Algorithms" land on the same rune
// sequence.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
