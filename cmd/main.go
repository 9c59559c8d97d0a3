package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/piyussh25/misinformation-checker/internal/analysis"
	httpctx "github.com/piyussh25/misinformation-checker/internal/api/http/context"
	"github.com/piyussh25/misinformation-checker/internal/api/http/router"
	httpserver "github.com/piyussh25/misinformation-checker/internal/api/http/server"
	"github.com/piyussh25/misinformation-checker/internal/config"
	"github.com/piyussh25/misinformation-checker/internal/logger"
	"github.com/piyussh25/misinformation-checker/internal/mail"
	"github.com/piyussh25/misinformation-checker/internal/model"
	"github.com/piyussh25/misinformation-checker/internal/repository/postgres"
	"github.com/piyussh25/misinformation-checker/internal/service"
	"github.com/piyussh25/misinformation-checker/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	historyRepo := postgres.NewHistoryRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	ctxMgr := httpctx.NewManager()

	mailer, err := mail.NewSMTP(mail.Config{
		Host:            cfg.SMTP.Host,
		Port:            cfg.SMTP.Port,
		Username:        cfg.SMTP.Username,
		Password:        cfg.SMTP.Password,
		From:            cfg.SMTP.From,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}, logger)
	if err != nil {
		logger.Fatal("failed to create mailer", "error", err)
	}

	analyzer := analysis.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, logger)

	authService := service.NewAuth(userRepo, tokenManager, mailer, logger)
	analysisService := service.NewAnalysis(analyzer, historyRepo, logger)

	r := router.New(authService, analysisService, tokenManager, ctxMgr, db, cfg.Analyze.RequireAuth, logger)
	httpServer := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = httpserver.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = httpserver.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
