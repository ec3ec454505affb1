package session

import (
	"sync"
	"time"

	"github.com/rapozcode/webclient/internal/config"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/utils"
)

// DefaultTTL is the idle lifetime applied when configuration supplies none.
const DefaultTTL = 2 * time.Hour

type entry struct {
	session  Session
	deadline time.Time
}

// Store is the in-memory session registry. Every successful Get or Put
// slides the entry's expiry forward by the TTL, so only idle sessions
// expire.
type Store struct {
	ttl    time.Duration
	uuids  *utils.UUIDGenerator
	logger *logger.Logger

	mu      sync.Mutex
	entries map[string]*entry
}

// NewStore creates an empty Store with the configured idle TTL.
func NewStore(cfg config.Sessions, logger *logger.Logger) *Store {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	logger.Debug().Dur("ttl", ttl).Msg("creating session store")

	return &Store{
		ttl:     ttl,
		uuids:   utils.NewUUIDGenerator(),
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// Create registers a new session with a fresh ID and first-visit defaults.
func (s *Store) Create() Session {
	sess := NewSession(s.uuids.Generate())

	s.mu.Lock()
	s.entries[sess.ID] = &entry{session: sess, deadline: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	s.logger.Debug().Str("session_id", sess.ID).Msg("session created")

	return sess
}

// Get returns a copy of the session with the given ID and refreshes its
// expiry. The second return value is false when the ID is unknown or the
// session has already expired; an expired entry is removed on the spot.
func (s *Store) Get(id string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(e.deadline) {
		delete(s.entries, id)
		return Session{}, false
	}

	e.deadline = time.Now().Add(s.ttl)

	return e.session, true
}

// Put stores the session under its ID, creating or overwriting the entry,
// and refreshes its expiry. A session with an empty ID is ignored.
func (s *Store) Put(sess Session) {
	if sess.ID == "" {
		return
	}

	s.mu.Lock()
	s.entries[sess.ID] = &entry{session: sess, deadline: time.Now().Add(s.ttl)}
	s.mu.Unlock()
}

// Delete removes the session with the given ID, if present.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Len returns the number of live entries, expired ones included until the
// next sweep.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// EvictExpired removes every entry whose idle TTL has elapsed and returns
// how many were removed.
func (s *Store) EvictExpired() int {
	now := time.Now()

	s.mu.Lock()
	evicted := 0
	for id, e := range s.entries {
		if now.After(e.deadline) {
			delete(s.entries, id)
			evicted++
		}
	}
	s.mu.Unlock()

	if evicted > 0 {
		s.logger.Debug().Int("evicted", evicted).Msg("expired sessions removed")
	}

	return evicted
}
