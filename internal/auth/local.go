package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/titanhire/titanhire/internal/config"
	"github.com/titanhire/titanhire/internal/jobs"
	"github.com/titanhire/titanhire/internal/storage"
	"github.com/titanhire/titanhire/internal/types"
)

// keyAccounts holds the registered account records. It is internal to the
// identity backend and not one of the workflow storage keys.
const keyAccounts = "titanhire-accounts"

// DefaultRole is assigned when registration omits a role.
const DefaultRole = "Team Member"

// account is the persisted registration record, password hash included.
// It never leaves this package; responses carry types.User.
type account struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"passwordHash"`
}

// Local implements the identity capability on top of the key-value store:
// bcrypt-hashed accounts, HS256 session tokens, and a cached profile.
type Local struct {
	store     storage.Store
	adapter   *storage.Adapter
	passwords *config.PasswordConfig
	tokens    *JWTService
}

// NewLocal creates a local identity service over the given store.
func NewLocal(store storage.Store, passwords *config.PasswordConfig, tokens *JWTService) *Local {
	return &Local{
		store:     store,
		adapter:   storage.NewAdapter(store),
		passwords: passwords,
		tokens:    tokens,
	}
}

// Register creates a new account, caches the profile and session token,
// and returns both.
func (l *Local) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &Error{Message: "invalid registration request", Cause: err}
	}
	if result := jobs.ValidatePassword(req.Password); !result.IsValid {
		return nil, &Error{Message: strings.Join(result.Errors, "; ")}
	}

	accounts, err := l.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, acct := range accounts {
		if strings.EqualFold(acct.Email, req.Email) {
			return nil, &ErrEmailAlreadyExists{Email: req.Email}
		}
	}

	hash, err := l.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = DefaultRole
	}
	acct := account{
		ID:           uuid.New(),
		Name:         req.FullName,
		Email:        req.Email,
		Role:         role,
		PasswordHash: hash,
	}
	accounts = append(accounts, acct)
	if err := l.saveAccounts(ctx, accounts); err != nil {
		return nil, err
	}

	return l.openSession(ctx, acct)
}

// Login authenticates by email and password. Failures are reported with a
// generic credentials error.
func (l *Local) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, &Error{Message: "invalid login request", Cause: err}
	}

	accounts, err := l.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	for _, acct := range accounts {
		if !strings.EqualFold(acct.Email, req.Email) {
			continue
		}
		if !l.passwords.VerifyPassword(req.Password, acct.PasswordHash) {
			return nil, &ErrInvalidCredentials{}
		}
		return l.openSession(ctx, acct)
	}
	return nil, &ErrInvalidCredentials{}
}

// Logout discards the cached session token and profile. Account records
// and the job collection stay persisted.
func (l *Local) Logout(ctx context.Context) error {
	if err := l.store.Remove(ctx, storage.KeyAuthToken); err != nil {
		return err
	}
	return l.store.Remove(ctx, storage.KeyUser)
}

// CurrentUser resolves the cached session token to its account profile.
func (l *Local) CurrentUser(ctx context.Context) (*types.User, error) {
	token := l.adapter.LoadAuthToken(ctx)
	if token == "" {
		return nil, &ErrNotAuthenticated{}
	}

	claims, err := l.tokens.ValidateToken(token)
	if err != nil {
		return nil, &Error{Message: "invalid session token", Cause: err}
	}

	accounts, err := l.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, acct := range accounts {
		if acct.ID == claims.UserID {
			return acct.user(), nil
		}
	}

	// The account record may be gone (e.g. a different storage backend);
	// the cached profile still serves the session.
	if cached := l.adapter.LoadUser(ctx); cached != nil {
		return cached, nil
	}
	return nil, &Error{Message: fmt.Sprintf("user not found: %s", claims.UserID)}
}

// UpdateProfile updates the current account's name, email and role.
func (l *Local) UpdateProfile(ctx context.Context, req *types.UpdateProfileRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, &Error{Message: "invalid profile request", Cause: err}
	}

	current, err := l.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	accounts, err := l.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	updated := &types.User{ID: current.ID, Name: req.Name, Email: req.Email, Role: req.Role}
	if updated.Role == "" {
		updated.Role = current.Role
	}

	for i, acct := range accounts {
		if acct.ID == current.ID {
			accounts[i].Name = updated.Name
			accounts[i].Email = updated.Email
			accounts[i].Role = updated.Role
			if err := l.saveAccounts(ctx, accounts); err != nil {
				return nil, err
			}
			break
		}
	}

	l.adapter.SaveUser(ctx, updated)
	return updated, nil
}

// openSession issues a token, caches it with the profile, and builds the
// login response.
func (l *Local) openSession(ctx context.Context, acct account) (*types.LoginResponse, error) {
	token, err := l.tokens.GenerateToken(acct.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user := acct.user()
	l.adapter.SaveUser(ctx, user)
	l.adapter.SaveAuthToken(ctx, token)

	return &types.LoginResponse{User: user, Token: token}, nil
}

func (a account) user() *types.User {
	return &types.User{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

func (l *Local) loadAccounts(ctx context.Context) ([]account, error) {
	data, err := l.store.Get(ctx, keyAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if data == nil {
		return nil, nil
	}
	var accounts []account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse accounts: %w", err)
	}
	return accounts, nil
}

func (l *Local) saveAccounts(ctx context.Context, accounts []account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	if err := l.store.Set(ctx, keyAccounts, data); err != nil {
		return fmt.Errorf("failed to save accounts: %w", err)
	}
	return nil
}
