package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"go.uber.org/zap"

	"sprintassign/internal/app/config"
	httpapi "sprintassign/internal/app/http"
	"sprintassign/internal/app/http/handler"
	"sprintassign/internal/domain"
	"sprintassign/internal/domain/assignment"
	"sprintassign/internal/domain/member"
	"sprintassign/internal/domain/recommend"
	"sprintassign/internal/domain/stats"
	"sprintassign/internal/domain/team"
	"sprintassign/internal/domain/workitem"
	"sprintassign/internal/infrastructure/async"
	"sprintassign/internal/infrastructure/db/pg"
	"sprintassign/internal/infrastructure/logging"
	"sprintassign/internal/infrastructure/metrics"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open error", zap.Error(err))
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("db ping error", zap.Error(err))
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("goose dialect error", zap.Error(err))
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatal("goose up error", zap.Error(err))
	}

	uow := pg.NewTxManager(db)

	eventBus := async.NewAsyncEventBus(ctx, cfg.EventWorkers, cfg.EventQueue, log)
	defer eventBus.Close()

	m := metrics.New()
	for _, eventType := range domain.EventTypes() {
		eventBus.Subscribe(eventType, func(_ context.Context, e domain.Event) {
			m.ObserveEvent(e.Type)
		})
	}

	engine := recommend.NewEngine(workitem.NewClassifier(cfg.Vocabulary), cfg.Weights)

	teamRepo := pg.NewTeamRepository(db)
	memberRepo := pg.NewMemberRepository(db)
	workItemRepo := pg.NewWorkItemRepository(db)

	teamSvc := team.NewService(uow, teamRepo, memberRepo, eventBus)
	memberSvc := member.NewService(uow, memberRepo, eventBus)
	workItemSvc := workitem.NewService(uow, workItemRepo, eventBus)
	assignmentSvc := assignment.NewService(workItemRepo, memberRepo, workItemRepo, engine, eventBus, m, log.Named("assignment"))
	statsSvc := stats.NewService(workItemRepo, engine)

	h := handler.New(teamSvc, memberSvc, workItemSvc, assignmentSvc, statsSvc, log)
	router := httpapi.NewRouter(h, log, m)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
