package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/popcorngo/internal/booking"
	"github.com/iliyamo/popcorngo/internal/model"
)

type sessionEntry struct {
	mu      sync.Mutex // serializes operations on one session
	session *booking.Session
	touched time.Time
}

type confirmationEntry struct {
	conf    model.Confirmation
	touched time.Time
}

// SessionRepo keeps booking sessions in memory, keyed by a random uuid.
// A session that has not been touched for TTL is treated as abandoned and
// removed on the next access or purge. Confirmations are kept under the
// id of the session that produced them with the same expiry. Nothing
// survives a restart.
type SessionRepo struct {
	mu            sync.Mutex
	sessions      map[string]*sessionEntry
	confirmations map[string]confirmationEntry
	ttl           time.Duration
	now           func() time.Time
}

// NewSessionRepo returns an empty store. A non-positive ttl disables
// expiry.
func NewSessionRepo(ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		sessions:      map[string]*sessionEntry{},
		confirmations: map[string]confirmationEntry{},
		ttl:           ttl,
		now:           time.Now,
	}
}

func (r *SessionRepo) expired(touched, now time.Time) bool {
	return r.ttl > 0 && now.Sub(touched) >= r.ttl
}

// Create stores s and returns its new id.
func (r *SessionRepo) Create(ctx context.Context, s *booking.Session) (string, error) {
	id := uuid.NewString()
	r.mu.Lock()
	r.sessions[id] = &sessionEntry{session: s, touched: r.now()}
	r.mu.Unlock()
	return id, nil
}

func (r *SessionRepo) entry(id string) (*sessionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := r.now()
	if r.expired(e.touched, now) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	e.touched = now
	return e, nil
}

// With runs fn on the session stored under id while holding that
// session's lock, so concurrent requests for one session are applied one
// at a time. Sessions of other ids are not blocked.
func (r *SessionRepo) With(ctx context.Context, id string, fn func(*booking.Session) error) error {
	e, err := r.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(e.session)
}

// Delete removes the session. Deleting an unknown id returns
// ErrSessionNotFound.
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Complete atomically replaces the session stored under id with its
// confirmation.
func (r *SessionRepo) Complete(ctx context.Context, id string, c model.Confirmation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	r.confirmations[id] = confirmationEntry{conf: c, touched: r.now()}
	return nil
}

// Confirmation returns the confirmation stored under the session id.
func (r *SessionRepo) Confirmation(ctx context.Context, id string) (*model.Confirmation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.confirmations[id]
	if !ok || r.expired(e.touched, r.now()) {
		delete(r.confirmations, id)
		return nil, ErrConfirmationNotFound
	}
	c := e.conf
	return &c, nil
}

// Len returns the number of stored sessions, expired ones included until
// they are purged.
func (r *SessionRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// PurgeExpired drops every expired session and confirmation and returns
// how many were removed.
func (r *SessionRepo) PurgeExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	n := 0
	for id, e := range r.sessions {
		if r.expired(e.touched, now) {
			delete(r.sessions, id)
			n++
		}
	}
	for id, e := range r.confirmations {
		if r.expired(e.touched, now) {
			delete(r.confirmations, id)
			n++
		}
	}
	return n
}

// RunJanitor purges expired entries every interval until ctx is done.
// onPurge, when non-nil, receives the count of each non-empty purge.
func (r *SessionRepo) RunJanitor(ctx context.Context, interval time.Duration, onPurge func(int)) error {
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if n := r.PurgeExpired(); n > 0 && onPurge != nil {
				onPurge(n)
			}
		}
	}
}
