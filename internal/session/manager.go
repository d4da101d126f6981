package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mzhuravlev/feedback-board/internal/common/clock"
	commoncrypto "github.com/mzhuravlev/feedback-board/internal/common/crypto"
	"github.com/mzhuravlev/feedback-board/internal/common/logger"
	"github.com/mzhuravlev/feedback-board/internal/observability/metrics"
)

var ErrNoSession = errors.New("no active session")

// Manager tracks the logged-in username through a signed, stateless
// cookie: an HS256 token carrying sub (username), jti, iat and exp.
// There is no server-side session row to clean up.
type Manager struct {
	secret      []byte
	ttl         time.Duration
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	log         *logger.Logger
}

func NewManager(
	secret string,
	ttl time.Duration,
	idGenerator commoncrypto.IDGenerator,
	clk clock.Clock,
	log *logger.Logger,
) *Manager {
	return &Manager{
		secret:      []byte(secret),
		ttl:         ttl,
		idGenerator: idGenerator,
		clock:       clk,
		log:         log,
	}
}

// Issue signs a session token for username and sets the session cookie.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, username string) error {
	jti, err := m.idGenerator.NewID()
	if err != nil {
		return err
	}

	now := m.clock.Now()
	expiresAt := now.Add(m.ttl)

	claims := jwt.MapClaims{
		"sub": username,
		"jti": jti,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	setSessionCookie(w, r, token, expiresAt)
	metrics.SessionsIssued.Inc()

	m.log.WithFields(r.Context(), logger.Fields{
		"username": username,
		"action":   "session_issued",
	}).Info("session issued")

	return nil
}

// Current returns the authenticated username, or ErrNoSession when the
// cookie is missing, tampered with, or expired.
func (m *Manager) Current(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.clock.Now),
		jwt.WithExpirationRequired(),
	)

	parsed, err := parser.Parse(cookie.Value, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrNoSession
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}

	username, _ := claims["sub"].(string)
	if username == "" {
		return "", ErrNoSession
	}

	return username, nil
}

// Clear expires the session cookie. Clearing without an active session
// is a silent no-op.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, r)
	metrics.SessionsCleared.Inc()
}
