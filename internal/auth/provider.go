package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/siteledger/siteledger/internal/config"
	"github.com/siteledger/siteledger/internal/domain/user"
	ierr "github.com/siteledger/siteledger/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the identity a validated credential resolves to. Every request
// is scoped by exactly this pair; no handler re-derives the tenant.
type Claims struct {
	UserID   string
	TenantID string
}

type Provider interface {
	HashPassword(password string) (string, error)
	CheckPassword(hashed, password string) error
	GenerateToken(userID, tenantID string) (string, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

type provider struct {
	cfg config.AuthConfig
}

func NewProvider(cfg *config.Configuration) Provider {
	return &provider{cfg: cfg.Auth}
}

func (p *provider) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to hash password").
			Mark(ierr.ErrSystem)
	}
	return string(hashed), nil
}

func (p *provider) CheckPassword(hashed, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return ierr.NewError("invalid password").
			WithHint("Invalid email or password").
			Mark(ierr.ErrPermissionDenied)
	}
	return nil
}

func (p *provider) GenerateToken(userID, tenantID string) (string, error) {
	expiry := p.cfg.TokenExpiry
	if expiry == 0 {
		expiry = 24 * time.Hour
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   userID,
		"tenant_id": tenantID,
		"exp":       time.Now().Add(expiry).Unix(),
		"iat":       time.Now().Unix(),
	})

	signed, err := token.SignedString([]byte(p.cfg.Secret))
	if err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}
	return signed, nil
}

func (p *provider) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(p.cfg.Secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}

	tenantID, tenantOk := claims["tenant_id"].(string)
	if !tenantOk || tenantID == "" {
		return nil, ierr.NewError("token missing tenant ID").
			WithHint("Token missing tenant ID").
			Mark(ierr.ErrPermissionDenied)
	}

	return &Claims{UserID: userID, TenantID: tenantID}, nil
}

// AuthenticateUser checks a login credential against the stored user row
func AuthenticateUser(p Provider, u *user.User, password string) error {
	if u == nil {
		return ierr.NewError("user not found").
			WithHint("Invalid email or password").
			Mark(ierr.ErrPermissionDenied)
	}
	return p.CheckPassword(u.PasswordHash, password)
}
