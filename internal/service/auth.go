package service

import (
	"context"
	"fmt"
	"strings"

	"clubhub-backend/internal/domain"
	"clubhub-backend/internal/logger"
	"clubhub-backend/internal/repository"
	"clubhub-backend/internal/security"
)

type authService struct {
	store           repository.Store
	hasher          security.PasswordHasher
	sessions        security.SessionManager
	accountThrottle *security.LoginThrottle
	managerThrottle *security.LoginThrottle
}

func NewAuthService(store repository.Store, hasher security.PasswordHasher, sessions security.SessionManager, accountThrottle, managerThrottle *security.LoginThrottle) AuthService {
	return &authService{
		store:           store,
		hasher:          hasher,
		sessions:        sessions,
		accountThrottle: accountThrottle,
		managerThrottle: managerThrottle,
	}
}

func (s *authService) RegisterStudent(ctx context.Context, name, surname, universityID, email, password string) (*domain.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || surname == "" || universityID == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: all registration fields are required", ErrInvalid)
	}

	taken, err := s.store.Accounts().ExistsByEmailOrUniversityID(ctx, email, universityID)
	if err != nil {
		return nil, fmt.Errorf("check existing account: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("%w: email or university id already registered", ErrConflict)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &domain.Account{
		Role:         domain.AccountRoleStudent,
		Name:         name,
		Surname:      surname,
		UniversityID: universityID,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.store.Accounts().Create(ctx, account); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: email or university id already registered", ErrConflict)
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	logger.Info("student registered", "account_id", account.ID)
	return account, nil
}

func (s *authService) LoginAccount(ctx context.Context, origin, email, password string) (*domain.Account, string, error) {
	if !s.accountThrottle.Allow(origin) {
		return nil, "", ErrTooManyAttempts
	}

	account, err := s.store.Accounts().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || !account.IsActive || !s.hasher.Verify(account.PasswordHash, password) {
		s.accountThrottle.RecordFailure(origin)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(security.PrincipalKindAccount, account.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}
	return account, token, nil
}

func (s *authService) LoginManager(ctx context.Context, origin, email, password string) (*domain.ClubManager, string, error) {
	if !s.managerThrottle.Allow(origin) {
		return nil, "", ErrTooManyAttempts
	}

	manager, err := s.store.ClubManagers().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil || !manager.IsActive || !s.hasher.Verify(manager.PasswordHash, password) {
		s.managerThrottle.RecordFailure(origin)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(security.PrincipalKindManager, manager.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}
	return manager, token, nil
}
