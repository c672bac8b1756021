package handlers

import (
	"encoding/json"
	"net/http"

	"soga/quote_backend/internal/domain/quotation"
)

type translateRequest struct {
	Language quotation.Language `json:"language"`
}

// TranslateQuotation translates a saved document's text fields into the
// requested language and stores the result. Numbers, identities and section
// order survive the round trip untouched.
func (h *Handlers) TranslateQuotation(w http.ResponseWriter, r *http.Request) {
	id, err := quotationID(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if req.Language != quotation.LanguageVI && req.Language != quotation.LanguageEN {
		http.Error(w, "unsupported language", http.StatusBadRequest)
		return
	}
	userID := owner(r).ID

	rec, err := h.Store.Get(r.Context(), userID, id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	translated, err := h.Translator.Translate(r.Context(), rec.Data, req.Language)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if err := h.Store.Update(r.Context(), userID, id, translated); err != nil {
		h.respondError(w, err)
		return
	}
	rec.Data = translated
	h.respondJSON(w, http.StatusOK, quotationResponse(rec))
}
