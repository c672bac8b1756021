package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"soga/quote_backend/internal/domain/quotation"
)

// Structural section edits. Each loads the document, applies one sequencer
// operation and saves the result; the whole section list is relabeled on
// every edit.

type appendSectionRequest struct {
	Title string `json:"title"`
}

type moveSectionRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (h *Handlers) AppendSection(w http.ResponseWriter, r *http.Request) {
	var req appendSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.editSections(w, r, func(sections []quotation.Section) []quotation.Section {
		return quotation.AppendSection(sections, req.Title)
	})
}

func (h *Handlers) DeleteSection(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")
	h.editSections(w, r, func(sections []quotation.Section) []quotation.Section {
		return quotation.RemoveSection(sections, sectionID)
	})
}

func (h *Handlers) MoveSection(w http.ResponseWriter, r *http.Request) {
	var req moveSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	h.editSections(w, r, func(sections []quotation.Section) []quotation.Section {
		return quotation.MoveSection(sections, req.From, req.To)
	})
}

func (h *Handlers) editSections(w http.ResponseWriter, r *http.Request, edit func([]quotation.Section) []quotation.Section) {
	id, err := quotationID(r)
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	userID := owner(r).ID

	rec, err := h.Store.Get(r.Context(), userID, id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	doc := rec.Data
	doc.Sections = edit(doc.Sections)
	if err := h.Store.Update(r.Context(), userID, id, doc); err != nil {
		h.respondError(w, err)
		return
	}
	rec.Data = doc
	h.respondJSON(w, http.StatusOK, quotationResponse(rec))
}
