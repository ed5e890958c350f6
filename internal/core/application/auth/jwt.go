package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

type sessionClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// JWTCodec signs session references with HS256. The token only names the session;
// the session itself lives in the SessionStore, so logging out revokes the token.
type JWTCodec struct {
	secret []byte
	issuer string
}

func NewJWTCodec(secret, issuer string) *JWTCodec {
	return &JWTCodec{secret: []byte(secret), issuer: issuer}
}

func (c *JWTCodec) Issue(s Session) (string, error) {
	claims := sessionClaims{
		Role: s.Actor.Role.String(),
		StandardClaims: jwt.StandardClaims{
			Id:        s.ID,
			Subject:   s.Actor.UserID.String(),
			Issuer:    c.issuer,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: s.ExpiresAt.Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

func (c *JWTCodec) SessionID(token string) (string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Id == "" {
		return "", fmt.Errorf("invalid token")
	}
	if c.issuer != "" && !claims.VerifyIssuer(c.issuer, true) {
		return "", fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}
	return claims.Id, nil
}
