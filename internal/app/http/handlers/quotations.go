package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/samber/lo"

	"soga/quote_backend/internal/domain/quotation"
	"soga/quote_backend/internal/infra/db/postgres"
)

// QuotationSummary is one row of the saved-quotations list.
type QuotationSummary struct {
	ID           int64              `json:"id"`
	Title        string             `json:"title"`
	CustomerName string             `json:"customerName"`
	Language     quotation.Language `json:"language"`
	Total        int64              `json:"total"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// QuotationResponse is a full quotation with its derived money summary.
// Totals and the amount-in-words line are recomputed on every response, never
// read from storage.
type QuotationResponse struct {
	ID            int64              `json:"id"`
	Title         string             `json:"title"`
	CustomerName  string             `json:"customerName"`
	Data          quotation.Document `json:"data"`
	Totals        quotation.Totals   `json:"totals"`
	AmountInWords string             `json:"amountInWords"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func quotationResponse(rec postgres.QuotationRecord) QuotationResponse {
	totals := quotation.ComputeTotals(rec.Data.Sections, rec.Data.VATRate)
	return QuotationResponse{
		ID:            rec.ID,
		Title:         rec.Title,
		CustomerName:  rec.CustomerName,
		Data:          rec.Data,
		Totals:        totals,
		AmountInWords: quotation.AmountInWords(rec.Data.Language, totals.Total),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func (h *Handlers) ListQuotations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.List(r.Context(), owner(r).ID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	summaries := lo.Map(recs, func(rec postgres.QuotationRecord, _ int) QuotationSummary {
		return QuotationSummary{
			ID:           rec.ID,
			Title:        rec.Title,
			CustomerName: rec.CustomerName,
			Language:     rec.Data.Language,
			Total:        quotation.ComputeTotals(rec.Data.Sections, rec.Data.VATRate).Total,
			UpdatedAt:    rec.UpdatedAt,
		}
	})
	h.respondJSON(w, http.StatusOK, summaries)
}

func (h *Handlers) QuotationTemplate(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, quotation.Template())
}

func (h *Handlers) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var doc quotation.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	rec, err := h.Store.Create(r.Context(), owner(r).ID, quotation.Normalize(doc))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, quotationResponse(rec))
}

func (h *Handlers) GetQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := quotationID(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	rec, err := h.Store.Get(r.Context(), owner(r).ID, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, quotationResponse(rec))
}

func (h *Handlers) UpdateQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := quotationID(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	var doc quotation.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	doc = quotation.Normalize(doc)
	if err := h.Store.Update(r.Context(), owner(r).ID, id, doc); err != nil {
		h.respondError(w, err)
		return
	}
	rec, err := h.Store.Get(r.Context(), owner(r).ID, id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, quotationResponse(rec))
}

func (h *Handlers) DeleteQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := quotationID(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if err := h.Store.Delete(r.Context(), owner(r).ID, id); err != nil {
		h.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
