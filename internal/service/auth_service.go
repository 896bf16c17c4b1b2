package service

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/atlas-rto/workforce-matrix/internal/auth"
	"github.com/atlas-rto/workforce-matrix/internal/config"
	"github.com/atlas-rto/workforce-matrix/internal/domain"
	apperrors "github.com/atlas-rto/workforce-matrix/pkg/util"
)

// Session is the single active operator session.
type Session struct {
	Username   string
	Role       domain.Role
	LoggedInAt time.Time
}

// AuthService maintains the login-capable account list and the session
// state machine. Accounts live in memory only; they are seeded at startup
// and not persisted.
type AuthService struct {
	mu      sync.Mutex
	users   []domain.User
	session *Session
	tokens  *auth.TokenManager
	logger  *zap.Logger
}

// NewAuthService seeds the default account list.
func NewAuthService(cfg config.AuthConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  SeedUsers(),
		tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		logger: logger,
	}
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// FindUser resolves a username to its account.
func (s *AuthService) FindUser(username string) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			copied := u
			return &copied, true
		}
	}
	return nil, false
}

// CheckCredentials compares the checksum of the supplied password against
// the stored value for the username.
func (s *AuthService) CheckCredentials(username, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checksum := auth.ChecksumPassword(password)
	for _, u := range s.users {
		if u.Username == username && u.Password == checksum {
			copied := u
			return &copied, nil
		}
	}
	return nil, apperrors.NewUnauthorized("incorrect username or password")
}

// Login transitions LoggedOut -> LoggedIn on valid credentials and issues a
// bearer token for the HTTP layer. Failed attempts leave the session
// untouched.
func (s *AuthService) Login(username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.CheckCredentials(username, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokens.GenerateToken(user.Username, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}

	s.mu.Lock()
	s.session = &Session{Username: user.Username, Role: user.Role, LoggedInAt: time.Now()}
	s.mu.Unlock()

	s.logger.Info("login", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	return user, token, exp, nil
}

// Logout unconditionally clears the session.
func (s *AuthService) Logout() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	s.logger.Info("logout")
}

// CurrentSession reports the active session, if any.
func (s *AuthService) CurrentSession() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// ListUsers returns accounts with blanked credentials, administrators first
// and then alphabetically by username. Administrator only.
func (s *AuthService) ListUsers(actor *domain.User) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	listed := make([]domain.User, len(s.users))
	for i, u := range s.users {
		u.Password = ""
		listed[i] = u
	}
	sort.SliceStable(listed, func(i, j int) bool {
		iAdmin := listed[i].Role == domain.RoleAdministrator
		jAdmin := listed[j].Role == domain.RoleAdministrator
		if iAdmin != jAdmin {
			return iAdmin
		}
		return listed[i].Username < listed[j].Username
	})
	return listed, nil
}

// AddUser creates a new account. Administrator only.
func (s *AuthService) AddUser(actor *domain.User, username, password string, role domain.Role) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required", nil)
	}
	if len(password) < 6 {
		return nil, apperrors.NewValidationError("password must be at least 6 characters", nil)
	}
	if role != domain.RoleAdministrator && role != domain.RoleUser {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": string(role)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return nil, apperrors.NewConflict("username already exists", map[string]any{"username": username})
		}
	}

	user := domain.User{Username: username, Password: auth.ChecksumPassword(password), Role: role}
	s.users = append(s.users, user)

	copied := user
	copied.Password = ""
	return &copied, nil
}

// ChangeRole updates an account's role. Demoting the last remaining
// administrator is rejected. Administrator only.
func (s *AuthService) ChangeRole(actor *domain.User, username string, role domain.Role) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if role != domain.RoleAdministrator && role != domain.RoleUser {
		return apperrors.NewValidationError("unknown role", map[string]any{"role": string(role)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(username)
	if idx == -1 {
		return apperrors.NewNotFound("user", map[string]any{"username": username})
	}

	if s.users[idx].Role == domain.RoleAdministrator && role == domain.RoleUser && s.adminCountLocked() == 1 {
		return apperrors.NewConflict("cannot change the last administrator to a user", nil)
	}

	s.users[idx].Role = role
	if s.session != nil && s.session.Username == username {
		s.session.Role = role
	}
	return nil
}

// ChangePassword sets a new credential checksum. Administrator only.
func (s *AuthService) ChangePassword(actor *domain.User, username, newPassword string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if len(newPassword) < 6 {
		return apperrors.NewValidationError("password must be at least 6 characters", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(username)
	if idx == -1 {
		return apperrors.NewNotFound("user", map[string]any{"username": username})
	}
	s.users[idx].Password = auth.ChecksumPassword(newPassword)
	return nil
}

// DeleteUser removes an account. The acting account and the last remaining
// administrator cannot be deleted. Administrator only.
func (s *AuthService) DeleteUser(actor *domain.User, username string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if actor.Username == username {
		return apperrors.NewConflict("cannot delete the currently logged-in account", nil)
	}

	idx := s.indexOfLocked(username)
	if idx == -1 {
		return apperrors.NewNotFound("user", map[string]any{"username": username})
	}

	if s.users[idx].Role == domain.RoleAdministrator && s.adminCountLocked() == 1 {
		return apperrors.NewConflict("cannot delete the last administrator", nil)
	}

	s.users = append(s.users[:idx], s.users[idx+1:]...)
	return nil
}

func (s *AuthService) indexOfLocked(username string) int {
	for i := range s.users {
		if s.users[i].Username == username {
			return i
		}
	}
	return -1
}

func (s *AuthService) adminCountLocked() int {
	count := 0
	for _, u := range s.users {
		if u.Role == domain.RoleAdministrator {
			count++
		}
	}
	return count
}
