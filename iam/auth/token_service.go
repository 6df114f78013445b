package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/CavidAtamoghlanov/vacancy-management/pkg/errx"
	"github.com/CavidAtamoghlanov/vacancy-management/pkg/kernel"
)

// JWTService implements TokenService with HS256-signed JWTs.
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret, issuer string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *JWTService) GenerateAccessToken(userID kernel.UserID, email kernel.Email, roles []string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":     s.issuer,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
		"user_id": userID.Int64(),
		"email":   email.String(),
		"roles":   roles,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}
	return signed, expiresAt, nil
}

func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken()
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken()
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken()
	}
	email, _ := claims["email"].(string)

	var roles []string
	if raw, ok := claims["roles"].([]any); ok {
		for _, r := range raw {
			if name, ok := r.(string); ok {
				roles = append(roles, name)
			}
		}
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	return &TokenClaims{
		UserID:    kernel.NewUserID(int64(userID)),
		Email:     kernel.NewEmail(email),
		Roles:     roles,
		ExpiresAt: expiresAt,
	}, nil
}
