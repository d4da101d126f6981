package main

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	authhttp "github.com/mzhuravlev/feedback-board/internal/auth/http"
	authservice "github.com/mzhuravlev/feedback-board/internal/auth/service"
	"github.com/mzhuravlev/feedback-board/internal/common/clock"
	"github.com/mzhuravlev/feedback-board/internal/common/config"
	commoncrypto "github.com/mzhuravlev/feedback-board/internal/common/crypto"
	"github.com/mzhuravlev/feedback-board/internal/common/db"
	commonhttp "github.com/mzhuravlev/feedback-board/internal/common/http"
	"github.com/mzhuravlev/feedback-board/internal/common/logger"
	"github.com/mzhuravlev/feedback-board/internal/common/server"
	feedbackhttp "github.com/mzhuravlev/feedback-board/internal/feedback/http"
	feedbackrepo "github.com/mzhuravlev/feedback-board/internal/feedback/repository"
	feedbackservice "github.com/mzhuravlev/feedback-board/internal/feedback/service"
	"github.com/mzhuravlev/feedback-board/internal/session"
	userrepo "github.com/mzhuravlev/feedback-board/internal/user/repository"
	"github.com/mzhuravlev/feedback-board/internal/web/view"
)

const serviceName = "feedback-board"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog, err := logger.New(cfg.LogDir, serviceName, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	pool := db.NewPool(appLog, cfg.DatabaseURL)

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	defer migrateCancel()
	if err := db.Migrate(migrateCtx, pool); err != nil {
		appLog.Fatalf("failed to run migrations: %v", err)
	}

	realClock := clock.NewRealClock()
	hasher := commoncrypto.NewBcryptHasher(cfg.BcryptCost)
	idGenerator := commoncrypto.NewUUIDGenerator()

	users := userrepo.NewPgRepository(pool)
	feedback := feedbackrepo.NewPgRepository(pool)

	auth := authservice.NewAuthService(users, hasher, realClock, appLog)
	board := feedbackservice.NewFeedbackService(feedback, realClock, appLog)

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, idGenerator, realClock, appLog)
	renderer := view.NewJSONRenderer()

	mux := http.NewServeMux()
	authhttp.NewHandler(auth, sessions, renderer, appLog).RegisterRoutes(mux)
	feedbackhttp.NewHandler(auth, board, sessions, renderer, appLog).RegisterRoutes(mux)
	mux.HandleFunc("/health", commonhttp.HealthHandler(serviceName))
	mux.Handle("/metrics", promhttp.Handler())

	handler := commonhttp.BuildBaseHandler(appLog, mux)

	srv := server.NewServer(server.DefaultServerConfig(cfg.HTTPPort), handler)

	server.StartWithGracefulShutdown(srv, appLog, serviceName, []server.ShutdownHook{
		func(ctx context.Context) error {
			pool.Close()
			return nil
		},
	})
}
