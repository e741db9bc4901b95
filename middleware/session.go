package middleware

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"examdesk/config"
	"examdesk/models"
)

// The session holds exactly two values, written together at login and
// cleared together at logout. They are re-read from the store on every
// request, so a logout elsewhere is observed on the next navigation.
const (
	sessionKeyToken = "token"
	sessionKeyUser  = "user"
)

var store *session.Store

// InitSessionStore wires the session middleware to its storage backend
func InitSessionStore(storage fiber.Storage) {
	store = session.New(session.Config{
		Storage:        storage,
		Expiration:     time.Duration(config.AppConfig.SessionHours) * time.Hour,
		KeyLookup:      "cookie:" + config.AppConfig.CookieName,
		CookieHTTPOnly: true,
	})
}

// CurrentSession returns the request's session, creating one if needed
func CurrentSession(c *fiber.Ctx) (*session.Session, error) {
	return store.Get(c)
}

// ReadSession loads the token and user for this request. Either may be
// absent; the route gate decides what that means.
func ReadSession(c *fiber.Ctx) (string, *models.SessionUser) {
	sess, err := store.Get(c)
	if err != nil {
		return "", nil
	}

	token, _ := sess.Get(sessionKeyToken).(string)

	raw, _ := sess.Get(sessionKeyUser).([]byte)
	if len(raw) == 0 {
		return token, nil
	}
	user := new(models.SessionUser)
	if err := json.Unmarshal(raw, user); err != nil {
		return token, nil
	}
	return token, user
}

// WriteSession stores the login outcome. The session never outlives
// the bearer token when the token carries an expiry claim.
func WriteSession(c *fiber.Ctx, token string, user *models.SessionUser) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	sess.Set(sessionKeyToken, token)
	sess.Set(sessionKeyUser, raw)

	if exp, ok := TokenExpiry(token); ok {
		if ttl := time.Until(exp); ttl > 0 && ttl < time.Duration(config.AppConfig.SessionHours)*time.Hour {
			sess.SetExpiry(ttl)
		}
	}

	return sess.Save()
}

// UpdateSessionUser rewrites the stored user record in place, keeping
// the token untouched (used after a password change clears the
// forcePasswordChange flag).
func UpdateSessionUser(c *fiber.Ctx, user *models.SessionUser) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	sess.Set(sessionKeyUser, raw)
	return sess.Save()
}

// ClearSession drops token and user together and forgets the cookie
func ClearSession(c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
