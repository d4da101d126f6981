package service_test

import (
	"context"

	"github.com/mzhuravlev/feedback-board/internal/feedback/domain"
)

type mockFeedbackRepo struct {
	createFunc         func(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error)
	findByIDFunc       func(ctx context.Context, id int64) (domain.Feedback, error)
	updateFunc         func(ctx context.Context, feedback domain.Feedback) error
	deleteFunc         func(ctx context.Context, id int64) error
	listByUsernameFunc func(ctx context.Context, username string) ([]domain.Feedback, error)
}

func (m *mockFeedbackRepo) Create(ctx context.Context, feedback domain.Feedback) (domain.Feedback, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, feedback)
	}
	feedback.ID = 1
	return feedback, nil
}

func (m *mockFeedbackRepo) FindByID(ctx context.Context, id int64) (domain.Feedback, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return domain.Feedback{}, nil
}

func (m *mockFeedbackRepo) Update(ctx context.Context, feedback domain.Feedback) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, feedback)
	}
	return nil
}

func (m *mockFeedbackRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockFeedbackRepo) ListByUsername(ctx context.Context, username string) ([]domain.Feedback, error) {
	if m.listByUsernameFunc != nil {
		return m.listByUsernameFunc(ctx, username)
	}
	return nil, nil
}
