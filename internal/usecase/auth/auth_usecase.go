package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/craftlink/craftlink-backend/internal/domain"
	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UseCase struct {
	creatorRepo  repository.CreatorRepository
	sessionRepo  repository.SessionRepository
	jwtSecret    string
	accessExpiry time.Duration
}

func NewUseCase(
	creatorRepo repository.CreatorRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	accessExpiryHrs int,
) *UseCase {
	return &UseCase{
		creatorRepo:  creatorRepo,
		sessionRepo:  sessionRepo,
		jwtSecret:    jwtSecret,
		accessExpiry: time.Duration(accessExpiryHrs) * time.Hour,
	}
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Creator   *domain.Creator `json:"creator"`
	IsNewUser bool            `json:"is_new_user"`
}

// Register creates an account and opens a session.
func (uc *UseCase) Register(ctx context.Context, email, password, deviceInfo, ipAddress string) (*AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	creator := &domain.Creator{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.creatorRepo.Create(ctx, creator); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create creator: %w", err)
	}

	token, expiresAt, err := uc.createSession(ctx, creator.ID, deviceInfo, ipAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Creator:   creator,
		IsNewUser: true,
	}, nil
}

// Login verifies credentials and opens a session. Lookup and compare
// failures collapse into the same error so the response never reveals
// whether an email is registered.
func (uc *UseCase) Login(ctx context.Context, email, password, deviceInfo, ipAddress string) (*AuthResponse, error) {
	creator, err := uc.creatorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCreatorNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get creator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creator.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.createSession(ctx, creator.ID, deviceInfo, ipAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Creator:   creator,
	}, nil
}

// createSession creates a new session and returns a JWT token
func (uc *UseCase) createSession(ctx context.Context, creatorID int, deviceInfo, ipAddress string) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.accessExpiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"creator_id": creatorID,
		"exp":        expiresAt.Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	session := &domain.Session{
		CreatorID:  creatorID,
		Token:      uc.hashToken(tokenString),
		DeviceInfo: &deviceInfo,
		IPAddress:  &ipAddress,
		ExpiresAt:  expiresAt,
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// VerifyToken verifies a JWT and its backing session, returning the creator id.
func (uc *UseCase) VerifyToken(ctx context.Context, tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	creatorID, ok := claims["creator_id"].(float64)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	// A revoked session invalidates an otherwise valid JWT
	hashedToken := uc.hashToken(tokenString)
	session, err := uc.sessionRepo.GetByToken(ctx, hashedToken)
	if err != nil {
		return 0, domain.ErrSessionNotFound
	}

	if session.IsExpired() {
		return 0, domain.ErrSessionExpired
	}

	return int(creatorID), nil
}

// Logout deletes the session backing a token.
func (uc *UseCase) Logout(ctx context.Context, tokenString string) error {
	hashedToken := uc.hashToken(tokenString)
	return uc.sessionRepo.DeleteByToken(ctx, hashedToken)
}

// Me returns the authenticated creator.
func (uc *UseCase) Me(ctx context.Context, creatorID int) (*domain.Creator, error) {
	return uc.creatorRepo.GetByID(ctx, creatorID)
}

// hashToken creates a SHA256 hash of a token for storage
func (uc *UseCase) hashToken(token string) string {
	h := sha256.New()
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}
