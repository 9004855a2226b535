package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"github.com/bnema/skillconnect-cli/internal/domain"
	"github.com/bnema/skillconnect-cli/internal/ports"
	"github.com/google/uuid"
)

// SessionState is the in-memory mirror of the durable session shared by
// every sc process of a user. Writes go through the repository; changes made
// by other processes arrive through the watcher and are fanned out to
// subscribers. A process is never notified of its own writes.
type SessionState struct {
	repo    ports.SessionRepository
	secrets ports.SecretStore
	watcher ports.SessionWatcher
	logger  *slog.Logger
	writer  string

	mu          sync.RWMutex
	current     domain.Session
	coverImages map[domain.UserID]string
	revision    int64

	subsMu  sync.Mutex
	subs    map[int]func(domain.SessionChange)
	nextSub int
}

type SessionOption func(*SessionState)

func WithSessionWatcher(watcher ports.SessionWatcher) SessionOption {
	return func(s *SessionState) { s.watcher = watcher }
}

func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *SessionState) { s.logger = logger }
}

func NewSessionState(repo ports.SessionRepository, secrets ports.SecretStore, opts ...SessionOption) *SessionState {
	state := &SessionState{
		repo:        repo,
		secrets:     secrets,
		logger:      slog.Default(),
		writer:      uuid.NewString(),
		coverImages: map[domain.UserID]string{},
		subs:        map[int]func(domain.SessionChange){},
	}
	for _, opt := range opts {
		opt(state)
	}

	return state
}

// TokenRef is the secret store key holding the auth token of userID.
func TokenRef(userID domain.UserID) string {
	return "skillconnect/session/" + string(userID) + "/token"
}

func (s *SessionState) WriterID() string {
	return s.writer
}

func (s *SessionState) Get() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

func (s *SessionState) CoverImageURL(userID domain.UserID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.coverImages[userID]
}

// Subscribe registers fn for changes written by other processes. The returned
// func removes the subscription.
func (s *SessionState) Subscribe(fn func(domain.SessionChange)) func() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

// Establish stores token in the secret store and records userID as the
// active session.
func (s *SessionState) Establish(ctx context.Context, userID domain.UserID, token string, avatarURL string) error {
	next := domain.Session{UserID: userID, AuthToken: strings.TrimSpace(token), CachedAvatarURL: avatarURL}
	if strings.TrimSpace(string(userID)) == "" {
		return errors.New("establish session: user id is required")
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("establish session: %w", err)
	}

	previous := s.Get()
	ref := TokenRef(userID)
	if err := s.secrets.Put(ctx, ref, next.AuthToken); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}

	if err := s.save(ctx, next); err != nil {
		if previous.UserID != userID {
			if rollbackErr := s.secrets.Delete(ctx, ref); rollbackErr != nil {
				return fmt.Errorf("save session and rollback stored token: %w", errors.Join(err, rollbackErr))
			}
		}
		return fmt.Errorf("save session: %w", err)
	}

	if previous.UserID != "" && previous.UserID != userID {
		if err := s.secrets.Delete(ctx, TokenRef(previous.UserID)); err != nil {
			s.logger.Warn("delete previous session token", "user_id", previous.UserID, "err", err)
		}
	}

	return nil
}

// Clear drops user id, token and avatar in a single store write, then removes
// the token secret. Cached cover images survive.
func (s *SessionState) Clear(ctx context.Context) error {
	previous := s.Get()

	if err := s.save(ctx, domain.Session{}); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	if previous.UserID == "" {
		return nil
	}
	if err := s.secrets.Delete(ctx, TokenRef(previous.UserID)); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}

	return nil
}

func (s *SessionState) UpdateAvatar(ctx context.Context, avatarURL string) error {
	next := s.Get()
	if !next.Active() {
		return domain.ErrNoSession
	}
	next.CachedAvatarURL = avatarURL

	if err := s.save(ctx, next); err != nil {
		return fmt.Errorf("update session avatar: %w", err)
	}

	return nil
}

func (s *SessionState) SetCoverImage(ctx context.Context, userID domain.UserID, coverURL string) error {
	if userID == "" {
		return errors.New("set cover image: user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	covers := maps.Clone(s.coverImages)
	if coverURL == "" {
		delete(covers, userID)
	} else {
		covers[userID] = coverURL
	}

	if err := s.repo.Save(ctx, s.storedLocked(s.current, covers)); err != nil {
		return fmt.Errorf("save cover image: %w", err)
	}
	s.coverImages = covers

	return nil
}

// Sync reloads the durable store and brings the mirror up to date. Changes
// written by another process are returned and published to subscribers;
// writes made by this instance are absorbed silently.
func (s *SessionState) Sync(ctx context.Context) ([]domain.SessionChange, error) {
	stored, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	s.mu.RLock()
	stale := stored.Revision != 0 && stored.Revision <= s.revision
	s.mu.RUnlock()
	if stale {
		return nil, nil
	}

	next, err := s.resolve(ctx, stored)
	if err != nil {
		return nil, err
	}

	covers := coverMap(stored.CoverImages)

	s.mu.Lock()
	previous := s.current
	previousCovers := s.coverImages
	s.current = next
	s.coverImages = covers
	s.revision = stored.Revision
	s.mu.Unlock()

	if stored.Writer == s.writer {
		return nil, nil
	}

	changes := domain.DiffSessions(previous, next)
	changes = append(changes, diffCovers(previousCovers, covers)...)
	s.publish(changes)

	return changes, nil
}

// Watch keeps the mirror in sync with writes from other processes until ctx
// is done. It returns immediately when no watcher is configured.
func (s *SessionState) Watch(ctx context.Context) error {
	if s.watcher == nil {
		return nil
	}

	return s.watcher.Watch(ctx, func() {
		if _, err := s.Sync(ctx); err != nil && ctx.Err() == nil {
			s.logger.Warn("resync session after store change", "err", err)
		}
	})
}

func (s *SessionState) save(ctx context.Context, next domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, s.storedLocked(next, s.coverImages)); err != nil {
		return err
	}
	s.current = next

	return nil
}

func (s *SessionState) storedLocked(session domain.Session, covers map[domain.UserID]string) ports.StoredSession {
	stored := ports.StoredSession{
		UserID:      session.UserID,
		UserImage:   session.CachedAvatarURL,
		CoverImages: covers,
		Writer:      s.writer,
	}
	if session.Active() {
		stored.TokenRef = TokenRef(session.UserID)
	}

	return stored
}

// resolve turns the stored form into a session, reading the token from the
// secret store. A session whose token has disappeared is treated as signed
// out.
func (s *SessionState) resolve(ctx context.Context, stored ports.StoredSession) (domain.Session, error) {
	if stored.UserID == "" || stored.TokenRef == "" {
		return domain.Session{}, nil
	}

	token, err := s.secrets.Get(ctx, stored.TokenRef)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			s.logger.Warn("session token missing from secret store", "user_id", stored.UserID)
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("read session token: %w", err)
	}

	return domain.Session{
		UserID:          stored.UserID,
		AuthToken:       token,
		CachedAvatarURL: stored.UserImage,
	}, nil
}

func (s *SessionState) publish(changes []domain.SessionChange) {
	if len(changes) == 0 {
		return
	}

	s.subsMu.Lock()
	subscribers := make([]func(domain.SessionChange), 0, len(s.subs))
	for _, fn := range s.subs {
		subscribers = append(subscribers, fn)
	}
	s.subsMu.Unlock()

	for _, change := range changes {
		for _, fn := range subscribers {
			fn(change)
		}
	}
}

func diffCovers(old, updated map[domain.UserID]string) []domain.SessionChange {
	var changes []domain.SessionChange
	for userID, url := range updated {
		if old[userID] != url {
			changes = append(changes, domain.SessionChange{Key: domain.SessionKeyCoverImage, UserID: userID, OldValue: old[userID], NewValue: url})
		}
	}
	for userID, url := range old {
		if _, ok := updated[userID]; !ok {
			changes = append(changes, domain.SessionChange{Key: domain.SessionKeyCoverImage, UserID: userID, OldValue: url})
		}
	}

	return changes
}

func coverMap(stored map[domain.UserID]string) map[domain.UserID]string {
	if stored == nil {
		return map[domain.UserID]string{}
	}
	return maps.Clone(stored)
}
