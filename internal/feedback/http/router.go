package http

import (
	"net/http"

	authservice "github.com/mzhuravlev/feedback-board/internal/auth/service"
	commonhttp "github.com/mzhuravlev/feedback-board/internal/common/http"
	"github.com/mzhuravlev/feedback-board/internal/common/logger"
	"github.com/mzhuravlev/feedback-board/internal/feedback/domain"
	feedbackservice "github.com/mzhuravlev/feedback-board/internal/feedback/service"
	"github.com/mzhuravlev/feedback-board/internal/session"
	userdomain "github.com/mzhuravlev/feedback-board/internal/user/domain"
	"github.com/mzhuravlev/feedback-board/internal/web/forms"
	"github.com/mzhuravlev/feedback-board/internal/web/view"
)

const loginRequiredNotice = "You must be logged in to view!"

type Handler struct {
	auth     *authservice.AuthService
	feedback *feedbackservice.FeedbackService
	sessions *session.Manager
	renderer view.Renderer
	errors   *commonhttp.ErrorHandler
	log      *logger.Logger
}

func NewHandler(
	auth *authservice.AuthService,
	feedback *feedbackservice.FeedbackService,
	sessions *session.Manager,
	renderer view.Renderer,
	log *logger.Logger,
) *Handler {
	return &Handler{
		auth:     auth,
		feedback: feedback,
		sessions: sessions,
		renderer: renderer,
		errors:   commonhttp.NewErrorHandler(log),
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/users/", h.handleUsers)
	mux.HandleFunc("/feedback/", h.handleFeedback)
	mux.HandleFunc("/delete/", h.handleDelete)
}

// userView is the public projection of a user: no password hash.
type userView struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type feedbackView struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

type userPage struct {
	User     userView       `json:"user"`
	Feedback []feedbackView `json:"feedback"`
}

func toUserView(user userdomain.User) userView {
	return userView{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func toFeedbackView(feedback domain.Feedback) feedbackView {
	return feedbackView{
		ID:      feedback.ID,
		Title:   feedback.Title,
		Content: feedback.Content,
		Owner:   feedback.Username,
	}
}

// requireSession returns the logged-in username, or redirects to the
// login page with a notice and reports ok=false.
func (h *Handler) requireSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, err := h.sessions.Current(r)
	if err != nil {
		session.SetFlash(w, loginRequiredNotice)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return "", false
	}
	return username, true
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound,
			commonhttp.CodeNotFound, "not found", nil, "")
		return
	}
	if r.Method != http.MethodGet {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed,
			commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
		return
	}
	http.Redirect(w, r, "/register", http.StatusFound)
}

// handleUsers serves GET /users/{username} (the user page with that
// user's feedback) and POST /users/{username}/feedback (create).
func (h *Handler) handleUsers(w http.ResponseWriter, r *http.Request) {
	username, rest, ok := commonhttp.PathSegment(r.URL.Path, "/users/")
	if !ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound,
			commonhttp.CodeInvalidPath, "not found", nil, "")
		return
	}

	switch {
	case rest == "" && r.Method == http.MethodGet:
		h.showUserPage(w, r, username)
	case rest == "/feedback" && r.Method == http.MethodGet:
		h.showCreateForm(w, r, username)
	case rest == "/feedback" && r.Method == http.MethodPost:
		h.createFeedback(w, r, username)
	case rest == "" || rest == "/feedback":
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed,
			commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound,
			commonhttp.CodeInvalidPath, "not found", nil, "")
	}
}

func (h *Handler) showUserPage(w http.ResponseWriter, r *http.Request, username string) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	user, err := h.auth.GetByUsername(r.Context(), username)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	items, err := h.feedback.ListForUser(r.Context(), username)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	views := make([]feedbackView, 0, len(items))
	for _, item := range items {
		views = append(views, toFeedbackView(item))
	}

	h.renderer.Render(w, http.StatusOK, view.Page{
		Name:  "user",
		Flash: session.TakeFlash(w, r),
		Data: userPage{
			User:     toUserView(user),
			Feedback: views,
		},
	})
}

func (h *Handler) showCreateForm(w http.ResponseWriter, r *http.Request, owner string) {
	if _, ok := h.requireSession(w, r); !ok {
		return
	}

	if _, err := h.auth.GetByUsername(r.Context(), owner); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	h.renderer.Render(w, http.StatusOK, view.Page{
		Name:  "feedback_form",
		Flash: session.TakeFlash(w, r),
		Data:  map[string]string{"owner": owner},
	})
}

func (h *Handler) createFeedback(w http.ResponseWriter, r *http.Request, owner string) {
	actor, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	form := forms.ParseFeedback(r)
	if problems := forms.Validate(form); problems != nil {
		h.renderer.Render(w, http.StatusBadRequest, view.Page{
			Name:   "feedback_form",
			Errors: problems,
		})
		return
	}

	_, err := h.feedback.Create(r.Context(), actor, owner, feedbackservice.FeedbackInput{
		Title:   form.Title,
		Content: form.Content,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users/"+owner, http.StatusSeeOther)
}

// handleFeedback serves GET /feedback/{id} (the edit page) and
// POST /feedback/{id} (update).
func (h *Handler) handleFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := commonhttp.PathID(r.URL.Path, "/feedback/")
	if !ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound,
			commonhttp.CodeInvalidPath, "not found", nil, "")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.showEditPage(w, r, id)
	case http.MethodPost:
		h.updateFeedback(w, r, id)
	default:
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed,
			commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
	}
}

func (h *Handler) showEditPage(w http.ResponseWriter, r *http.Request, id int64) {
	actor, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	feedback, err := h.feedback.Get(r.Context(), id)
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}
	if feedback.Username != actor {
		h.errors.HandleError(w, r, feedbackservice.ErrNotOwner)
		return
	}

	h.renderer.Render(w, http.StatusOK, view.Page{
		Name:  "feedback_edit",
		Flash: session.TakeFlash(w, r),
		Data:  toFeedbackView(feedback),
	})
}

func (h *Handler) updateFeedback(w http.ResponseWriter, r *http.Request, id int64) {
	actor, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	form := forms.ParseFeedback(r)
	if problems := forms.Validate(form); problems != nil {
		h.renderer.Render(w, http.StatusBadRequest, view.Page{
			Name:   "feedback_edit",
			Errors: problems,
		})
		return
	}

	_, err := h.feedback.Update(r.Context(), actor, id, feedbackservice.FeedbackInput{
		Title:   form.Title,
		Content: form.Content,
	})
	if err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users/"+actor, http.StatusSeeOther)
}

// The original UI deletes through plain links, so GET is accepted
// alongside POST.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		commonhttp.WriteErrorEnvelope(w, http.StatusMethodNotAllowed,
			commonhttp.CodeMethodNotAllowed, "method not allowed", nil, "")
		return
	}

	id, ok := commonhttp.PathID(r.URL.Path, "/delete/")
	if !ok {
		commonhttp.WriteErrorEnvelope(w, http.StatusNotFound,
			commonhttp.CodeInvalidPath, "not found", nil, "")
		return
	}

	actor, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	if _, err := h.feedback.Delete(r.Context(), actor, id); err != nil {
		h.errors.HandleError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users/"+actor, http.StatusSeeOther)
}
