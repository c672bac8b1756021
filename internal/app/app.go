package app

import (
	"context"
	stdlog "log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"soga/quote_backend/internal/app/config"
	apphttp "soga/quote_backend/internal/app/http"
	"soga/quote_backend/internal/app/http/handlers"
	pdfgen "soga/quote_backend/internal/domain/quotation/pdf/gofpdf"
	translategen "soga/quote_backend/internal/domain/translate/openai"
	"soga/quote_backend/internal/infra/db/postgres"
	"soga/quote_backend/internal/logger"
)

func Run() {
	cfg := config.MustLoad()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("logger: %v", err)
	}
	defer log.Sync()

	ctx := context.Background()
	db, err := postgres.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer db.Close()

	repo := postgres.NewQuotationRepo(db)
	if err := repo.Init(ctx); err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	h := handlers.New(
		repo,
		cfg,
		log,
		pdfgen.New(cfg.PDFFontDir),
		translategen.New(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel),
	)
	router := apphttp.NewRouter(cfg, log, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
