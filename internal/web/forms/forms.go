package forms

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := field.Tag.Get("form")
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Form field limits mirror the database schema.
type RegisterForm struct {
	Username  string `form:"username" validate:"required,min=3,max=32,alphanum"`
	Password  string `form:"password" validate:"required,min=8,max=72"`
	Email     string `form:"email" validate:"required,email,max=120"`
	FirstName string `form:"first_name" validate:"required,max=50"`
	LastName  string `form:"last_name" validate:"required,max=50"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type FeedbackForm struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required,max=4000"`
}

func ParseRegister(r *http.Request) RegisterForm {
	return RegisterForm{
		Username:  strings.TrimSpace(r.FormValue("username")),
		Password:  r.FormValue("password"),
		Email:     strings.TrimSpace(r.FormValue("email")),
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
	}
}

func ParseLogin(r *http.Request) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
}

func ParseFeedback(r *http.Request) FeedbackForm {
	return FeedbackForm{
		Title:   strings.TrimSpace(r.FormValue("title")),
		Content: r.FormValue("content"),
	}
}

// Validate returns a field -> message map, empty when the form is valid.
func Validate(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": "invalid form"}
	}

	problems := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		problems[fe.Field()] = messageFor(fe)
	}
	return problems
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "alphanum":
		return "must contain only letters and digits"
	default:
		return "invalid value"
	}
}
