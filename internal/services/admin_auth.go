package services

import (
	"context"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

// TokenVerifier is the part of *auth.Client the admin check needs
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AdminAuthService implements domain.AdminVerifier on Firebase ID tokens
type AdminAuthService struct {
	verifier TokenVerifier
	logger   domain.Logger
}

// NewAdminAuthService creates a new admin verifier
func NewAdminAuthService(verifier TokenVerifier, logger domain.Logger) *AdminAuthService {
	return &AdminAuthService{
		verifier: verifier,
		logger:   logger,
	}
}

// Verify checks the Authorization header and requires the custom claim admin == true
func (s *AdminAuthService) Verify(ctx context.Context, authorization string) (domain.AdminIdentity, error) {
	idToken, ok := bearerToken(authorization)
	if !ok {
		return domain.AdminIdentity{}, domain.ErrMissingToken
	}

	token, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		if auth.IsCertificateFetchFailed(err) {
			s.logger.Error("failed to fetch token signing certificates", err)
			return domain.AdminIdentity{}, fmt.Errorf("%w: %v", domain.ErrServiceUnavailable, err)
		}
		s.logger.Debug("id token rejected", "error", err.Error())
		return domain.AdminIdentity{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	identity := domain.AdminIdentity{UID: token.UID}
	identity.Email, _ = token.Claims["email"].(string)

	if admin, _ := token.Claims["admin"].(bool); !admin {
		s.logger.Info("admin claim missing", "uid", token.UID, "email", identity.Email)
		return identity, domain.ErrInsufficientPrivilege
	}

	return identity, nil
}

// bearerToken extracts the token from "Bearer <token>"
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
