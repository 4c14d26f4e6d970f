// Package dialog drives every multi-step interaction: one Session per
// participant, one named step at a time, fields collected under validation
// until a terminal transition commits or discards them.
package dialog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"topic-lab/domain"
)

type Kind string

const (
	KindRegistration Kind = "registration"
	KindAuthor       Kind = "author"
	KindReserve      Kind = "reserve"
	KindChoose       Kind = "choose"
	KindDetach       Kind = "detach"
	KindRelease      Kind = "release"
	KindApprove      Kind = "approve"
	KindSearch       Kind = "search"
	KindCategories   Kind = "categories"
	KindProfile      Kind = "profile"
	KindDelete       Kind = "delete"
	KindAnalytics    Kind = "analytics"
)

type Step string

// Session is the in-progress dialog of one participant. It lives only in
// memory: a process restart simply means the participant starts over.
type Session struct {
	Identity domain.Identity
	Kind     Kind
	Step     Step
	Fields   map[string]string
	options  map[string]string // normalized label -> opaque key
	Touched  time.Time
}

func (s *Session) Set(field, value string) { s.Fields[field] = value }

func (s *Session) Get(field string) string { return s.Fields[field] }

// Offer replaces the current option set. Keys are the authoritative
// correlation tokens; labels only exist for the participant to type or tap.
// Topic titles are not unique, so a repeated label gets an index suffix to
// keep every option reachable by text. The suffix is written back into the
// slice so the participant sees the same label they have to type.
func (s *Session) Offer(options []domain.Option) {
	s.options = make(map[string]string, 2*len(options))
	seen := make(map[string]int, len(options))
	for i, o := range options {
		seen[normalize(o.Label)]++
		if n := seen[normalize(o.Label)]; n > 1 {
			options[i].Label = fmt.Sprintf("%s (%d)", o.Label, n)
		}
		s.options[normalize(options[i].Label)] = o.Key
		s.options[normalize(o.Key)] = o.Key
	}
}

// Resolve maps input back to the opaque key it was offered under. A transport
// that echoes keys verbatim and a participant typing the label both land here.
func (s *Session) Resolve(input string) (string, bool) {
	key, ok := s.options[normalize(input)]
	return key, ok
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Store owns every live Session. Access is keyed and serialized per
// participant by the dispatcher; the store itself only guards its map.
type Store struct {
	mu       sync.Mutex
	sessions map[domain.Identity]*Session
	idle     time.Duration
	now      func() time.Time
}

func NewStore(idle time.Duration) *Store {
	return &Store{
		sessions: make(map[domain.Identity]*Session),
		idle:     idle,
		now:      time.Now,
	}
}

// Get returns the live session, treating an idle-expired one as already
// cancelled: it is evicted on the spot and the lookup misses.
func (st *Store) Get(id domain.Identity) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	if st.now().Sub(s.Touched) > st.idle {
		delete(st.sessions, id)
		return nil, false
	}
	s.Touched = st.now()
	return s, true
}

// Begin starts a fresh dialog, replacing whatever was in progress.
func (st *Store) Begin(id domain.Identity, kind Kind, step Step) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s := &Session{
		Identity: id,
		Kind:     kind,
		Step:     step,
		Fields:   make(map[string]string),
		Touched:  st.now(),
	}
	st.sessions[id] = s
	return s
}

// End discards the session; both terminal outcomes (done, cancelled) and
// aborts land here.
func (st *Store) End(id domain.Identity) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// EvictIdle removes every session without activity for the idle window and
// reports how many went. Called by the janitor worker.
func (st *Store) EvictIdle() int {
	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := 0
	cutoff := st.now().Add(-st.idle)
	for id, s := range st.sessions {
		if s.Touched.Before(cutoff) {
			delete(st.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}
