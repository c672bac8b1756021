package handlers

import (
	"context"

	"go.uber.org/zap"

	"soga/quote_backend/internal/app/config"
	"soga/quote_backend/internal/domain/quotation"
	"soga/quote_backend/internal/domain/quotation/pdf"
	"soga/quote_backend/internal/domain/translate"
	"soga/quote_backend/internal/infra/db/postgres"
)

// QuotationStore is the persistence surface the handlers need. Implemented
// by postgres.QuotationRepo; tests substitute an in-memory fake.
type QuotationStore interface {
	List(ctx context.Context, userID string) ([]postgres.QuotationRecord, error)
	Get(ctx context.Context, userID string, id int64) (postgres.QuotationRecord, error)
	Create(ctx context.Context, userID string, doc quotation.Document) (postgres.QuotationRecord, error)
	Update(ctx context.Context, userID string, id int64, doc quotation.Document) error
	Delete(ctx context.Context, userID string, id int64) error
}

type Handlers struct {
	Store      QuotationStore
	Cfg        config.Config
	Log        *zap.Logger
	PDF        pdf.Generator
	Translator translate.Translator
}

func New(store QuotationStore, cfg config.Config, log *zap.Logger, gen pdf.Generator, tr translate.Translator) *Handlers {
	return &Handlers{
		Store:      store,
		Cfg:        cfg,
		Log:        log,
		PDF:        gen,
		Translator: tr,
	}
}
