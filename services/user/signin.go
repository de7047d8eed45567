package user

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	userRepo "roomify/database/repository/user"
	"roomify/utils"
)

const tokenLifetime = 24 * time.Hour

// Authenticate verifies the credentials, issues a JWT and records the
// session in Redis so the token can be revoked before it expires.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.IsDeleted {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, sessionID, err := utils.GenerateToken(user.ID.Hex(), user.Email, string(user.Role), tokenLifetime)
	if err != nil {
		return nil, err
	}

	session := utils.AuthSession{
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		TokenHash: utils.HashToken(token),
		CreatedAt: time.Now().UTC(),
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), sessionID, session, tokenLifetime); err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token, SessionID: sessionID}, nil
}
