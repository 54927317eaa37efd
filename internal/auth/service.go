package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

const localTokenPrefix = "local_token_"

// Service answers login and registration requests against a UserStore,
// optionally falling back to a remote provider for known demo accounts.
type Service struct {
	store  UserStore
	remote *RemoteProvider
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// NewService builds a Service. remote may be nil to disable the remote
// fallback.
func NewService(store UserStore, remote *RemoteProvider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:  store,
		remote: remote,
		logger: logger,
		now:    time.Now,
		newID:  func() string { return "user_" + uuid.NewString() },
	}
}

// Login authenticates email/password. Local accounts are checked first;
// when a remote provider is configured and knows the email, it is tried
// next. Fails with ErrInvalidCredentials when neither path matches.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)

	rec, ok, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("account lookup failed", "error", err)
	}
	if ok && rec.Password == password {
		return Session{Token: s.mintToken(rec.ID), User: rec.User}, nil
	}

	if s.remote != nil {
		if sess, ok := s.remote.Login(ctx, email, password); ok {
			return sess, nil
		}
	}

	return Session{}, ErrInvalidCredentials
}

// Register creates a new account and signs it in. Email and username
// uniqueness is checked case-insensitively; the created account can log
// in immediately.
func (s *Service) Register(ctx context.Context, username, email, password string) (Session, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if _, ok, err := s.store.FindByEmail(ctx, email); err != nil {
		s.logger.Warn("account lookup failed", "error", err)
	} else if ok {
		return Session{}, ErrEmailRegistered
	}
	if _, ok, err := s.store.FindByUsername(ctx, username); err != nil {
		s.logger.Warn("account lookup failed", "error", err)
	} else if ok {
		return Session{}, ErrUsernameTaken
	}

	rec := Record{
		User: User{
			ID:        s.newID(),
			Username:  username,
			Email:     email,
			FirstName: username,
			LastName:  "User",
		},
		Password: password,
	}
	if err := s.store.Create(ctx, rec); err != nil {
		// Lost the race with a concurrent registration for the same
		// email or username.
		if err == ErrUserExists {
			return Session{}, ErrEmailRegistered
		}
		return Session{}, fmt.Errorf("create account: %w", err)
	}

	return Session{Token: s.mintToken(rec.ID), User: rec.User}, nil
}

// VerifyToken reports whether a token is one this service could have
// issued. Locally minted tokens are validated by shape only.
func (s *Service) VerifyToken(token string) bool {
	return strings.HasPrefix(token, localTokenPrefix)
}

func (s *Service) mintToken(userID string) string {
	return fmt.Sprintf("%s%s_%d", localTokenPrefix, userID, s.now().UnixMilli())
}
