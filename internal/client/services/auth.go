// Package services contains the application services of the crmkeeper client.
// This file defines the session store: registration, login, logout and the
// restore of a persisted session at startup.
package services

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
	"github.com/dmitrijs2005/crmkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/crmkeeper/internal/common"
	"github.com/dmitrijs2005/crmkeeper/internal/logging"
	"github.com/google/uuid"
)

// ErrCorruptUsers is returned by Register when the persisted identity set
// cannot be decoded; registering would otherwise overwrite it.
var ErrCorruptUsers = errors.New("stored identity set is corrupt")

// AuthService owns the registered identities and the active session.
//
// Contract:
//   - Register: add a new identity and log it in. Fails with
//     common.ErrUsernameTaken if the username exists (exact match).
//   - Login: start a session for a matching username and password. Fails with
//     common.ErrInvalidCredentials for an unknown user and a wrong password alike.
//   - Logout: end the session and remove its persisted copy. Idempotent.
//   - Restore: adopt the persisted session, if any and well-formed.
//   - Current: the active session, nil when nobody is logged in.
//
// Every mutation is written through to the repository before returning.
type AuthService interface {
	Register(ctx context.Context, username string, password []byte, firstName, lastName string) (*models.User, error)
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) *models.User
	Current() *models.User
	Users(ctx context.Context) ([]models.Identity, error)
}

type authService struct {
	mu      sync.Mutex
	repo    metadata.Repository
	log     logging.Logger
	current *models.User
	newID   func() string
}

// NewAuthService constructs the session store on top of repo and restores
// the persisted session, if there is one.
func NewAuthService(ctx context.Context, repo metadata.Repository, log logging.Logger) AuthService {
	s := &authService{
		repo:  repo,
		log:   log.With("component", "auth"),
		newID: uuid.NewString,
	}
	s.Restore(ctx)
	return s
}

// Restore reads common.SessionKey. A missing, unreadable or malformed value
// leaves the store without a session; the problem is only logged.
func (s *authService) Restore(ctx context.Context) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	raw, err := s.repo.Get(ctx, common.SessionKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted session", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn(ctx, "ignoring malformed persisted session", "error", err)
		return nil
	}
	if u.ID == "" || u.Username == "" {
		s.log.Warn(ctx, "ignoring incomplete persisted session")
		return nil
	}

	s.current = &u
	s.log.Info(ctx, "session restored", "username", u.Username)
	return copyUser(s.current)
}

func (s *authService) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyUser(s.current)
}

// Users returns the registered identities in registration order.
func (s *authService) Users(ctx context.Context) ([]models.Identity, error) {
	return s.loadIdentities(ctx)
}

func (s *authService) Register(ctx context.Context, username string, password []byte, firstName, lastName string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identities, err := s.loadIdentities(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range identities {
		if id.Username == username {
			s.log.Info(ctx, "registration rejected: username taken", "username", username)
			return nil, common.ErrUsernameTaken
		}
	}

	identity := models.Identity{
		ID:        s.newID(),
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(password),
	}
	identities = append(identities, identity)
	user := identity.User()

	usersJSON, err := json.Marshal(identities)
	if err != nil {
		return nil, fmt.Errorf("encode identities: %w", err)
	}
	sessionJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}

	if err := s.repo.SetAll(ctx, map[string][]byte{
		common.UsersKey:   usersJSON,
		common.SessionKey: sessionJSON,
	}); err != nil {
		return nil, fmt.Errorf("save registration: %w", err)
	}

	s.current = &user
	s.log.Info(ctx, "user registered", "username", username, "id", user.ID)
	return copyUser(s.current), nil
}

func (s *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identities, err := s.loadIdentities(ctx)
	if errors.Is(err, ErrCorruptUsers) {
		identities = nil
	} else if err != nil {
		return nil, err
	}

	var found *models.Identity
	for i := range identities {
		id := &identities[i]
		if id.Username == username && subtle.ConstantTimeCompare([]byte(id.Password), password) == 1 {
			found = id
			break
		}
	}
	if found == nil {
		s.log.Info(ctx, "login failed", "username", username)
		return nil, common.ErrInvalidCredentials
	}

	user := found.User()
	sessionJSON, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, common.SessionKey, sessionJSON); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.current = &user
	s.log.Info(ctx, "user logged in", "username", username)
	return copyUser(s.current), nil
}

// Logout drops the in-memory session even when removing the persisted copy
// fails; that failure is returned.
func (s *authService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.log.Info(ctx, "user logged out", "username", s.current.Username)
	}
	s.current = nil

	if err := s.repo.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// loadIdentities decodes common.UsersKey. An absent key is an empty set.
func (s *authService) loadIdentities(ctx context.Context) ([]models.Identity, error) {
	raw, err := s.repo.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load identities: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var identities []models.Identity
	if err := json.Unmarshal(raw, &identities); err != nil {
		s.log.Warn(ctx, "persisted identity set is malformed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrCorruptUsers, err)
	}
	return identities, nil
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
