package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mzhuravlev/feedback-board/internal/common/clock"
	"github.com/mzhuravlev/feedback-board/internal/common/crypto"
	"github.com/mzhuravlev/feedback-board/internal/common/logger"
	"github.com/mzhuravlev/feedback-board/internal/session"
)

const testSecret = "test-session-secret-at-least-32-bytes-long"

func setupManager(t *testing.T) (*session.Manager, *clock.MockClock) {
	t.Helper()

	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	log, _ := logger.New("", "test", "info")

	manager := session.NewManager(testSecret, time.Hour, crypto.NewUUIDGenerator(), mockClock, log)
	return manager, mockClock
}

func issueCookie(t *testing.T, manager *session.Manager, username string) *http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/login", nil)

	if err := manager.Issue(w, r, username); err != nil {
		t.Fatalf("expected no error issuing session, got %v", err)
	}

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.CookieName {
			return cookie
		}
	}
	t.Fatal("expected session cookie to be set")
	return nil
}

func TestManager_IssueAndCurrent(t *testing.T) {
	manager, _ := setupManager(t)

	cookie := issueCookie(t, manager, "alice")

	if !cookie.HttpOnly {
		t.Error("expected session cookie to be http-only")
	}

	r := httptest.NewRequest("GET", "/users/alice", nil)
	r.AddCookie(cookie)

	username, err := manager.Current(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if username != "alice" {
		t.Errorf("expected username alice, got %q", username)
	}
}

func TestManager_Current_NoCookie(t *testing.T) {
	manager, _ := setupManager(t)

	r := httptest.NewRequest("GET", "/users/alice", nil)

	if _, err := manager.Current(r); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestManager_Current_TamperedToken(t *testing.T) {
	manager, _ := setupManager(t)

	cookie := issueCookie(t, manager, "alice")
	cookie.Value = cookie.Value + "x"

	r := httptest.NewRequest("GET", "/users/alice", nil)
	r.AddCookie(cookie)

	if _, err := manager.Current(r); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession for tampered token, got %v", err)
	}
}

func TestManager_Current_WrongSecret(t *testing.T) {
	manager, _ := setupManager(t)
	cookie := issueCookie(t, manager, "alice")

	otherClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	log, _ := logger.New("", "test", "info")
	other := session.NewManager(
		"another-session-secret-also-32-bytes!!",
		time.Hour,
		crypto.NewUUIDGenerator(),
		otherClock,
		log,
	)

	r := httptest.NewRequest("GET", "/users/alice", nil)
	r.AddCookie(cookie)

	if _, err := other.Current(r); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession for foreign signature, got %v", err)
	}
}

func TestManager_Current_Expired(t *testing.T) {
	manager, mockClock := setupManager(t)

	cookie := issueCookie(t, manager, "alice")

	mockClock.Advance(2 * time.Hour)

	r := httptest.NewRequest("GET", "/users/alice", nil)
	r.AddCookie(cookie)

	if _, err := manager.Current(r); !errors.Is(err, session.ErrNoSession) {
		t.Errorf("expected ErrNoSession for expired token, got %v", err)
	}
}

func TestManager_Clear(t *testing.T) {
	manager, _ := setupManager(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/logout", nil)

	manager.Clear(w, r)

	var cleared *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == session.CookieName {
			cleared = cookie
		}
	}
	if cleared == nil {
		t.Fatal("expected session cookie in response")
	}
	if cleared.MaxAge >= 0 {
		t.Errorf("expected expired cookie, got max-age %d", cleared.MaxAge)
	}
}

func TestFlash_SetAndTake(t *testing.T) {
	setRecorder := httptest.NewRecorder()
	session.SetFlash(setRecorder, "You must be logged in to view!")

	var flashCookie *http.Cookie
	for _, cookie := range setRecorder.Result().Cookies() {
		if cookie.Name != session.CookieName {
			flashCookie = cookie
		}
	}
	if flashCookie == nil {
		t.Fatal("expected flash cookie to be set")
	}

	r := httptest.NewRequest("GET", "/login", nil)
	r.AddCookie(flashCookie)
	takeRecorder := httptest.NewRecorder()

	message := session.TakeFlash(takeRecorder, r)
	if message != "You must be logged in to view!" {
		t.Errorf("expected flash message, got %q", message)
	}

	var afterTake *http.Cookie
	for _, cookie := range takeRecorder.Result().Cookies() {
		if cookie.Name == flashCookie.Name {
			afterTake = cookie
		}
	}
	if afterTake == nil || afterTake.MaxAge >= 0 {
		t.Error("expected flash cookie to be cleared after take")
	}
}

func TestFlash_TakeWithoutSet(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/login", nil)

	if message := session.TakeFlash(w, r); message != "" {
		t.Errorf("expected empty flash, got %q", message)
	}
}
