package service

import (
	"net/http"

	commonerrors "github.com/mzhuravlev/feedback-board/internal/common/errors"
)

var (
	ErrFeedbackNotFound = commonerrors.NewDomainError(
		"FEEDBACK_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusNotFound,
		"feedback not found",
	)

	// ErrNotOwner is returned when the acting user tries to create
	// feedback under another user's page or mutate feedback they do
	// not own.
	ErrNotOwner = commonerrors.NewDomainError(
		"NOT_OWNER",
		commonerrors.CategoryForbidden,
		http.StatusForbidden,
		"you don't have permission to do that",
	)
)
