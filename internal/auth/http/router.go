package http

import (
	"errors"
	"net/http"

	authservice "github.com/mzhuravlev/feedback-board/internal/auth/service"
	commonhttp "github.com/mzhuravlev/feedback-board/internal/common/http"
	"github.com/mzhuravlev/feedback-board/internal/common/logger"
	"github.com/mzhuravlev/feedback-board/internal/session"
	"github.com/mzhuravlev/feedback-board/internal/web/forms"
	"github.com/mzhuravlev/feedback-board/internal/web/view"
)

type Handler struct {
	auth     *authservice.AuthService
	sessions *session.Manager
	renderer view.Renderer
	errors   *commonhttp.ErrorHandler
	log      *logger.Logger
}

func NewHandler(
	auth *authservice.AuthService,
	sessions *session.Manager,
	renderer view.Renderer,
	log *logger.Logger,
) *Handler {
	return &Handler{
		auth:     auth,
		sessions: sessions,
		renderer: renderer,
		errors:   commonhttp.NewErrorHandler(log),
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/register", h.handleRegister)
	mux.HandleFunc("/login", h.handleLogin)
	mux.HandleFunc("/logout", h.handleLogout)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.showRegister(w, r)
	case http.MethodPost:
		h.register(w, r)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed,
			commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) showRegister(w http.ResponseWriter, r *http.Request) {
	if username, err := h.sessions.Current(r); err == nil {
		http.Redirect(w, r, "/users/"+username, http.StatusFound)
		return
	}

	h.renderer.Render(w, http.StatusOK, view.Page{
		Name:  "register",
		Flash: session.TakeFlash(w, r),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	form := forms.ParseRegister(r)
	if problems := forms.Validate(form); problems != nil {
		h.renderer.Render(w, http.StatusBadRequest, view.Page{
			Name:   "register",
			Errors: problems,
		})
		return
	}

	user, err := h.auth.Register(r.Context(), authservice.RegisterInput{
		Username:  form.Username,
		Password:  form.Password,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUsernameTaken):
			h.renderer.Render(w, http.StatusConflict, view.Page{
				Name:   "register",
				Errors: map[string]string{"username": "username already exists"},
			})
		case errors.Is(err, authservice.ErrEmailTaken):
			h.renderer.Render(w, http.StatusConflict, view.Page{
				Name:   "register",
				Errors: map[string]string{"email": "email already exists"},
			})
		default:
			h.errors.HandleError(w, r, err)
		}
		return
	}

	if err := h.sessions.Issue(w, r, user.Username); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.showLogin(w, r)
	case http.MethodPost:
		h.login(w, r)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed,
			commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	if username, err := h.sessions.Current(r); err == nil {
		http.Redirect(w, r, "/users/"+username, http.StatusFound)
		return
	}

	h.renderer.Render(w, http.StatusOK, view.Page{
		Name:  "login",
		Flash: session.TakeFlash(w, r),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	form := forms.ParseLogin(r)
	if problems := forms.Validate(form); problems != nil {
		h.renderer.Render(w, http.StatusBadRequest, view.Page{
			Name:   "login",
			Errors: problems,
		})
		return
	}

	user, err := h.auth.Authenticate(r.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			h.renderer.Render(w, http.StatusUnauthorized, view.Page{
				Name:   "login",
				Errors: map[string]string{"username": "bad name/password"},
			})
			return
		}
		h.errors.HandleError(w, r, err)
		return
	}

	if err := h.sessions.Issue(w, r, user.Username); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users/"+user.Username, http.StatusSeeOther)
}

// Logging out without an active session is a no-op that still redirects.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed,
			commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
		return
	}

	h.sessions.Clear(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
