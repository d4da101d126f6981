package service

import (
	"context"
	"errors"

	"github.com/mzhuravlev/feedback-board/internal/common/clock"
	commonerrors "github.com/mzhuravlev/feedback-board/internal/common/errors"
	"github.com/mzhuravlev/feedback-board/internal/common/logger"
	"github.com/mzhuravlev/feedback-board/internal/feedback/domain"
	feedbackrepo "github.com/mzhuravlev/feedback-board/internal/feedback/repository"
	"github.com/mzhuravlev/feedback-board/internal/observability/metrics"
)

type FeedbackService struct {
	repo  feedbackrepo.Repository
	clock clock.Clock
	log   *logger.Logger
}

func NewFeedbackService(repo feedbackrepo.Repository, clk clock.Clock, log *logger.Logger) *FeedbackService {
	return &FeedbackService{
		repo:  repo,
		clock: clk,
		log:   log,
	}
}

type FeedbackInput struct {
	Title   string
	Content string
}

// Create adds feedback under owner's page. The actor must be the owner.
func (s *FeedbackService) Create(ctx context.Context, actor, owner string, input FeedbackInput) (domain.Feedback, error) {
	if actor != owner {
		s.log.WithFields(ctx, logger.Fields{
			"actor":  actor,
			"owner":  owner,
			"action": "feedback_create_denied",
		}).Warn("feedback create denied")
		return domain.Feedback{}, ErrNotOwner
	}

	now := s.clock.Now()
	feedback := domain.Feedback{
		Title:     input.Title,
		Content:   input.Content,
		Username:  owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, feedback)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": owner,
			"action":   "feedback_create_failed",
		}).Errorf("feedback create failed: %v", err)
		return domain.Feedback{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	metrics.FeedbackCreated.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"username":    owner,
		"feedback_id": created.ID,
		"action":      "feedback_created",
	}).Info("feedback created")

	return created, nil
}

func (s *FeedbackService) Get(ctx context.Context, id int64) (domain.Feedback, error) {
	feedback, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, feedbackrepo.ErrFeedbackNotFound) {
			return domain.Feedback{}, ErrFeedbackNotFound
		}
		return domain.Feedback{}, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return feedback, nil
}

// Update replaces the title and content of an existing feedback. The id
// and owner are preserved; only the stored owner may update.
func (s *FeedbackService) Update(ctx context.Context, actor string, id int64, input FeedbackInput) (domain.Feedback, error) {
	feedback, err := s.Get(ctx, id)
	if err != nil {
		return domain.Feedback{}, err
	}

	if feedback.Username != actor {
		s.log.WithFields(ctx, logger.Fields{
			"actor":       actor,
			"owner":       feedback.Username,
			"feedback_id": id,
			"action":      "feedback_update_denied",
		}).Warn("feedback update denied")
		return domain.Feedback{}, ErrNotOwner
	}

	feedback.Title = input.Title
	feedback.Content = input.Content
	feedback.UpdatedAt = s.clock.Now()

	if err := s.repo.Update(ctx, feedback); err != nil {
		if errors.Is(err, feedbackrepo.ErrFeedbackNotFound) {
			return domain.Feedback{}, ErrFeedbackNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"feedback_id": id,
			"action":      "feedback_update_failed",
		}).Errorf("feedback update failed: %v", err)
		return domain.Feedback{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	metrics.FeedbackUpdated.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"username":    actor,
		"feedback_id": id,
		"action":      "feedback_updated",
	}).Info("feedback updated")

	return feedback, nil
}

// Delete removes an existing feedback. Only the stored owner may delete.
func (s *FeedbackService) Delete(ctx context.Context, actor string, id int64) (domain.Feedback, error) {
	feedback, err := s.Get(ctx, id)
	if err != nil {
		return domain.Feedback{}, err
	}

	if feedback.Username != actor {
		s.log.WithFields(ctx, logger.Fields{
			"actor":       actor,
			"owner":       feedback.Username,
			"feedback_id": id,
			"action":      "feedback_delete_denied",
		}).Warn("feedback delete denied")
		return domain.Feedback{}, ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, feedbackrepo.ErrFeedbackNotFound) {
			return domain.Feedback{}, ErrFeedbackNotFound
		}
		s.log.WithFields(ctx, logger.Fields{
			"feedback_id": id,
			"action":      "feedback_delete_failed",
		}).Errorf("feedback delete failed: %v", err)
		return domain.Feedback{}, commonerrors.ErrDatabaseError.WithCause(err)
	}

	metrics.FeedbackDeleted.Inc()

	s.log.WithFields(ctx, logger.Fields{
		"username":    actor,
		"feedback_id": id,
		"action":      "feedback_deleted",
	}).Info("feedback deleted")

	return feedback, nil
}

func (s *FeedbackService) ListForUser(ctx context.Context, username string) ([]domain.Feedback, error) {
	items, err := s.repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, commonerrors.ErrDatabaseError.WithCause(err)
	}
	return items, nil
}
