package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"assuredgig/internal/models"
	"assuredgig/internal/session"
	"assuredgig/internal/storage"
	"assuredgig/internal/transport/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AccessClaims are the claims carried by an access token.
type AccessClaims struct {
	Role      models.Role `json:"role"`
	SessionID string      `json:"sid"`
	jwt.RegisteredClaims
}

type userService struct {
	store           storage.Store
	sessions        session.Store
	jwtSecret       string
	jwtExpiration   time.Duration
	refreshDuration time.Duration
	now             func() time.Time
}

// NewUserService creates a new instance of UserService.
func NewUserService(store storage.Store, sessions session.Store, jwtSecret string, jwtExpiration, refreshDuration time.Duration) UserService {
	return &userService{
		store:           store,
		sessions:        sessions,
		jwtSecret:       jwtSecret,
		jwtExpiration:   jwtExpiration,
		refreshDuration: refreshDuration,
		now:             time.Now,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Register: Error hashing password")
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}

	user, err := s.store.Users().Create(ctx, &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         req.Role,
		Skills:       []string{},
	})
	if err != nil {
		return nil, MapRepoError(err, "creating user")
	}

	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("User registered")
	return s.startSession(ctx, user)
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warnf("Login attempt failed for email %s: user not found", email)
			return nil, ErrInvalidCredentials
		}
		log.WithError(err).Errorf("Error fetching user by email %s during login", email)
		return nil, fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Warnf("Login attempt failed for email %s: invalid password", email)
		return nil, ErrInvalidCredentials
	}

	return s.startSession(ctx, user)
}

// Refresh rotates the refresh token and issues a new access token. Presenting
// a refresh token that was already rotated away revokes the whole session.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*AuthResult, error) {
	sid, secret, err := session.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("internal error loading session: %w", err)
	}

	newToken, newHash, err := session.NewRefreshToken(sid)
	if err != nil {
		return nil, fmt.Errorf("internal error generating refresh token: %w", err)
	}
	sess, err = s.sessions.Rotate(ctx, sid, session.HashSecret(secret), newHash, s.now().Add(s.refreshDuration))
	if err != nil {
		if errors.Is(err, session.ErrRefreshInvalid) {
			log.WithField("session_id", sid).Warn("Refresh token reuse detected, revoking session")
			if delErr := s.sessions.Delete(ctx, sid); delErr != nil {
				log.WithError(delErr).Errorf("Refresh: Error revoking session %s", sid)
			}
			return nil, ErrInvalidCredentials
		}
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("internal error rotating session: %w", err)
	}

	user, err := s.store.Users().GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, MapRepoError(err, "fetching user for refresh")
	}
	access, err := s.signAccessToken(user, sid)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User:         user,
		AccessToken:  access,
		RefreshToken: newToken,
		ExpiresIn:    int64(s.jwtExpiration.Seconds()),
		SessionID:    sid,
	}, nil
}

func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if req.SessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, req.SessionID); err != nil && !errors.Is(err, session.ErrNotFound) {
		return fmt.Errorf("internal error revoking session: %w", err)
	}
	return nil
}

// Authenticate parses the access token and checks that its session is still live.
func (s *userService) Authenticate(ctx context.Context, tokenString string) (*Principal, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if !token.Valid {
		return nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid subject", ErrInvalidCredentials)
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, fmt.Errorf("%w: session revoked", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("internal error loading session: %w", err)
	}
	if sess.UserID != userID {
		return nil, fmt.Errorf("%w: session mismatch", ErrInvalidCredentials)
	}

	return &Principal{UserID: userID, Role: claims.Role, SessionID: claims.SessionID}, nil
}

func (s *userService) GetByID(ctx context.Context, req *dto.GetUserByIDRequest) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, req.ID)
	if err != nil {
		return nil, MapRepoError(err, "fetching user")
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, req.UserID)
	if err != nil {
		return nil, MapRepoError(err, "fetching user for update")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Skills != nil {
		user.Skills = req.Skills
	}
	if req.HourlyRate != nil {
		user.HourlyRate = *req.HourlyRate
	}
	if req.PortfolioLink != nil {
		user.PortfolioLink = *req.PortfolioLink
	}

	updated, err := s.store.Users().Update(ctx, user)
	if err != nil {
		return nil, MapRepoError(err, "updating user")
	}
	return updated, nil
}

func (s *userService) startSession(ctx context.Context, user *models.User) (*AuthResult, error) {
	sid := uuid.NewString()
	refresh, hash, err := session.NewRefreshToken(sid)
	if err != nil {
		return nil, fmt.Errorf("internal error generating refresh token: %w", err)
	}

	now := s.now()
	if err := s.sessions.Create(ctx, &session.Session{
		ID:          sid,
		UserID:      user.ID,
		Role:        user.Role,
		RefreshHash: hash,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.refreshDuration),
	}); err != nil {
		log.WithError(err).Errorf("startSession: Error storing session for user %s", user.ID)
		return nil, fmt.Errorf("internal error creating session: %w", err)
	}

	access, err := s.signAccessToken(user, sid)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.jwtExpiration.Seconds()),
		SessionID:    sid,
	}, nil
}

func (s *userService) signAccessToken(user *models.User, sid string) (string, error) {
	now := s.now()
	claims := &AccessClaims{
		Role:      user.Role,
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		log.WithError(err).Errorf("Error generating JWT token for user %s", user.ID)
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return tokenString, nil
}
