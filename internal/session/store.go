package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	apperrors "github.com/savorworks/storefront-client/internal/errors"
	"github.com/savorworks/storefront-client/internal/models"
)

// ErrNoSession is returned by Update when nobody is logged in. A silent no-op
// here would hide caller bugs, so the gap is an explicit precondition failure.
var ErrNoSession = apperrors.PreconditionError("No active session. Please log in first.")

// Store holds the active session. It is constructed explicitly and passed to
// its consumers; there is no package-level instance.
type Store struct {
	mu      sync.RWMutex
	vault   Vault
	logger  *slog.Logger
	current *models.Session
}

// New hydrates the store from the vault. A missing, unreadable or corrupt
// blob degrades to "logged out" — hydration runs before any user interaction
// and must never fail hard.
func New(vault Vault, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{vault: vault, logger: logger}
	s.hydrate()

	return s
}

func (s *Store) hydrate() {
	data, found, err := s.vault.Load()
	if err != nil {
		s.logger.Warn("session vault unreadable, starting logged out", slog.String("error", err.Error()))

		return
	}

	if !found {
		return
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.ID == 0 {
		s.logger.Warn("discarding corrupt session blob")

		if err := s.vault.Clear(); err != nil {
			s.logger.Warn("failed to clear corrupt session blob", slog.String("error", err.Error()))
		}

		return
	}

	s.current = &sess
}

// Login replaces any prior session with the allow-listed subset of the auth
// response and persists it. Fields outside the subset (role, timestamps of
// the server record, anything future) are dropped here.
func (s *Store) Login(user *models.AuthUser) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &models.Session{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		Address:   user.Address,
		PhNumber:  user.PhNumber,
		City:      user.City,
		CreatedAt: user.CreatedAt,
	}

	s.persist()
}

// Logout clears memory and the vault entry. Purely local; there is no
// backend logout call.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	if err := s.vault.Clear(); err != nil {
		s.logger.Warn("failed to clear session vault", slog.String("error", err.Error()))
	}
}

// Update shallow-merges the non-empty fields of partial onto the current
// snapshot and re-persists. Returns ErrNoSession when logged out.
func (s *Store) Update(partial *models.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return ErrNoSession
	}

	if partial.FullName != "" {
		s.current.FullName = partial.FullName
	}

	if partial.Email != "" {
		s.current.Email = partial.Email
	}

	if partial.Address != "" {
		s.current.Address = partial.Address
	}

	if partial.PhNumber != "" {
		s.current.PhNumber = partial.PhNumber
	}

	if partial.City != "" {
		s.current.City = partial.City
	}

	s.persist()

	return nil
}

// persist writes the current snapshot; callers hold the lock. A vault write
// failure is logged and the in-memory state kept; the next change will
// re-persist.
func (s *Store) persist() {
	data, err := json.Marshal(s.current)
	if err != nil {
		s.logger.Warn("failed to encode session", slog.String("error", err.Error()))

		return
	}

	if err := s.vault.Save(data); err != nil {
		s.logger.Warn("failed to persist session", slog.String("error", err.Error()))
	}
}

// Current returns a copy of the active session, if any.
func (s *Store) Current() (*models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, false
	}

	sess := *s.current

	return &sess, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()

	return ok
}

// UserID returns the active user's id, or zero when logged out.
func (s *Store) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return 0
	}

	return s.current.ID
}
