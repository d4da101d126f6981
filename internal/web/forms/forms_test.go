package forms_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mzhuravlev/feedback-board/internal/web/forms"
)

func formRequest(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

func TestValidate_RegisterForm_Valid(t *testing.T) {
	form := forms.RegisterForm{
		Username:  "alice",
		Password:  "password123",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	if problems := forms.Validate(form); problems != nil {
		t.Errorf("expected no problems, got %v", problems)
	}
}

func TestValidate_RegisterForm_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		form  forms.RegisterForm
		field string
	}{
		{
			name: "short username",
			form: forms.RegisterForm{
				Username: "ab", Password: "password123",
				Email: "a@b.com", FirstName: "A", LastName: "B",
			},
			field: "username",
		},
		{
			name: "username with symbols",
			form: forms.RegisterForm{
				Username: "al ice!", Password: "password123",
				Email: "a@b.com", FirstName: "A", LastName: "B",
			},
			field: "username",
		},
		{
			name: "short password",
			form: forms.RegisterForm{
				Username: "alice", Password: "short",
				Email: "a@b.com", FirstName: "A", LastName: "B",
			},
			field: "password",
		},
		{
			name: "long password",
			form: forms.RegisterForm{
				Username: "alice", Password: strings.Repeat("x", 73),
				Email: "a@b.com", FirstName: "A", LastName: "B",
			},
			field: "password",
		},
		{
			name: "bad email",
			form: forms.RegisterForm{
				Username: "alice", Password: "password123",
				Email: "not-an-email", FirstName: "A", LastName: "B",
			},
			field: "email",
		},
		{
			name: "missing first name",
			form: forms.RegisterForm{
				Username: "alice", Password: "password123",
				Email: "a@b.com", FirstName: "", LastName: "B",
			},
			field: "first_name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			problems := forms.Validate(tc.form)
			if problems == nil {
				t.Fatal("expected validation problems")
			}
			if _, ok := problems[tc.field]; !ok {
				t.Errorf("expected problem for field %q, got %v", tc.field, problems)
			}
		})
	}
}

func TestValidate_LoginForm(t *testing.T) {
	if problems := forms.Validate(forms.LoginForm{Username: "alice", Password: "x"}); problems != nil {
		t.Errorf("expected no problems, got %v", problems)
	}

	problems := forms.Validate(forms.LoginForm{})
	if problems == nil {
		t.Fatal("expected validation problems")
	}
	if _, ok := problems["username"]; !ok {
		t.Errorf("expected problem for username, got %v", problems)
	}
	if _, ok := problems["password"]; !ok {
		t.Errorf("expected problem for password, got %v", problems)
	}
}

func TestValidate_FeedbackForm(t *testing.T) {
	valid := forms.FeedbackForm{Title: "Great service", Content: "Everything worked."}
	if problems := forms.Validate(valid); problems != nil {
		t.Errorf("expected no problems, got %v", problems)
	}

	tooLong := forms.FeedbackForm{
		Title:   strings.Repeat("t", 101),
		Content: "ok",
	}
	problems := forms.Validate(tooLong)
	if problems == nil {
		t.Fatal("expected validation problems")
	}
	if _, ok := problems["title"]; !ok {
		t.Errorf("expected problem for title, got %v", problems)
	}
}

func TestParseRegister_TrimsWhitespace(t *testing.T) {
	values := url.Values{}
	values.Set("username", "  alice  ")
	values.Set("password", "password123")
	values.Set("email", " alice@example.com ")
	values.Set("first_name", " Alice ")
	values.Set("last_name", " Smith ")

	r := httptest.NewRequest("POST", "/register", formRequest(values))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form := forms.ParseRegister(r)

	if form.Username != "alice" {
		t.Errorf("expected trimmed username, got %q", form.Username)
	}
	if form.Email != "alice@example.com" {
		t.Errorf("expected trimmed email, got %q", form.Email)
	}
	if form.Password != "password123" {
		t.Errorf("expected untouched password, got %q", form.Password)
	}
}
