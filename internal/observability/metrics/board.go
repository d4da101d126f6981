package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of registered users",
		},
	)

	LoginFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "login_failures_total",
			Help: "Total number of failed login attempts",
		},
	)

	SessionsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_issued_total",
			Help: "Total number of sessions issued",
		},
	)

	SessionsCleared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_cleared_total",
			Help: "Total number of sessions cleared on logout",
		},
	)

	FeedbackCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_created_total",
			Help: "Total number of feedback entries created",
		},
	)

	FeedbackUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_updated_total",
			Help: "Total number of feedback entries updated",
		},
	)

	FeedbackDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_deleted_total",
			Help: "Total number of feedback entries deleted",
		},
	)
)
