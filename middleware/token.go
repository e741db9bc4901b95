package middleware

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry reads the exp claim of the bearer token issued by the
// exam service. The token is opaque to this client and is never
// verified here; the service validates it on every call. The claim is
// only used to align session lifetime with token lifetime.
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	// JWT numeric claims decode as float64
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}
