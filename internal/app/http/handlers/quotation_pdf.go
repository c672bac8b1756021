package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"soga/quote_backend/internal/domain/quotation"
)

func (h *Handlers) QuotationPDF(w http.ResponseWriter, r *http.Request) {
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
	h.writePDF(w, rec.Data)
}

// PreviewQuotationPDF renders an unsaved document, so the editor can print
// without persisting first.
func (h *Handlers) PreviewQuotationPDF(w http.ResponseWriter, r *http.Request) {
	var doc quotation.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.writePDF(w, quotation.Normalize(doc))
}

func (h *Handlers) writePDF(w http.ResponseWriter, doc quotation.Document) {
	out, err := h.PDF.Generate(doc)
	if err != nil {
		h.respondError(w, fmt.Errorf("pdf generation: %w", err))
		return
	}
	name := doc.Meta.QuoteNumber
	if name == "" {
		name = "quotation"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}
