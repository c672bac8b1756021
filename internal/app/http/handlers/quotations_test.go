package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"soga/quote_backend/internal/app/config"
	apphttp "soga/quote_backend/internal/app/http"
	"soga/quote_backend/internal/app/http/handlers"
	"soga/quote_backend/internal/domain/quotation"
	"soga/quote_backend/internal/infra/db/postgres"
)

const testSecret = "test-secret"

// fakeStore keeps quotations in memory with the same owner-scoping rules as
// the postgres repository.
type fakeStore struct {
	nextID  int64
	records map[int64]postgres.QuotationRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, records: map[int64]postgres.QuotationRecord{}}
}

func (s *fakeStore) List(_ context.Context, userID string) ([]postgres.QuotationRecord, error) {
	var out []postgres.QuotationRecord
	for _, rec := range s.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeStore) Get(_ context.Context, userID string, id int64) (postgres.QuotationRecord, error) {
	rec, ok := s.records[id]
	if !ok || rec.UserID != userID {
		return postgres.QuotationRecord{}, postgres.ErrNotFound
	}
	return rec, nil
}

func (s *fakeStore) Create(_ context.Context, userID string, doc quotation.Document) (postgres.QuotationRecord, error) {
	rec := postgres.QuotationRecord{
		ID:           s.nextID,
		UserID:       userID,
		Title:        doc.Meta.QuoteNumber,
		CustomerName: doc.Customer.CompanyName,
		Data:         doc,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	s.records[rec.ID] = rec
	s.nextID++
	return rec, nil
}

func (s *fakeStore) Update(ctx context.Context, userID string, id int64, doc quotation.Document) error {
	rec, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	rec.Title = doc.Meta.QuoteNumber
	rec.CustomerName = doc.Customer.CompanyName
	rec.Data = doc
	rec.UpdatedAt = time.Now()
	s.records[id] = rec
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, userID string, id int64) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	delete(s.records, id)
	return nil
}

type stubPDF struct{}

func (stubPDF) Generate(quotation.Document) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type stubTranslator struct{}

func (stubTranslator) Translate(_ context.Context, doc quotation.Document, target quotation.Language) (quotation.Document, error) {
	doc.Language = target
	return doc, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *fakeStore) {
	t.Helper()
	cfg := config.Config{AuthJWTSecret: testSecret, CORSAllowOrigin: "*"}
	store := newFakeStore()
	log := zaptest.NewLogger(t)
	h := handlers.New(store, cfg, log, stubPDF{}, stubTranslator{})
	srv := httptest.NewServer(apphttp.NewRouter(cfg, log, h))
	t.Cleanup(srv.Close)
	return srv, store
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": sub + "@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse(t *testing.T, resp *http.Response) handlers.QuotationResponse {
	t.Helper()
	defer resp.Body.Close()
	var out handlers.QuotationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func testDocument() quotation.Document {
	return quotation.Document{
		Language: quotation.LanguageVI,
		Meta:     quotation.MetaInfo{QuoteNumber: "BG-2024-01"},
		Customer: quotation.CustomerInfo{CompanyName: "ACME"},
		VATRate:  8,
		Sections: []quotation.Section{
			{Title: "A", Items: []quotation.LineItem{{Name: "x", Quantity: 1, Price: 400000}}},
			{Title: "B", Items: []quotation.LineItem{
				{Name: "y", Quantity: 2, Price: 100000},
				{Name: "z", Quantity: 1, Price: 250000},
			}},
			{Title: "C", Items: []quotation.LineItem{{Name: "w", Quantity: 1, Price: 150000}}},
		},
	}
}

func TestRequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doRequest(t, srv, http.MethodGet, "/v1/quotations", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	badToken := signToken(t, "user") + "tampered"
	resp = doRequest(t, srv, http.MethodGet, "/v1/quotations", badToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateAndGetQuotation(t *testing.T) {
	srv, _ := newTestServer(t)
	token := signToken(t, "user-1")

	resp := doRequest(t, srv, http.MethodPost, "/v1/quotations", token, testDocument())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeResponse(t, resp)

	assert.Equal(t, "BG-2024-01", created.Title)
	assert.Equal(t, "ACME", created.CustomerName)
	assert.Equal(t, int64(1000000), created.Totals.Subtotal)
	assert.Equal(t, int64(80000), created.Totals.VATAmount)
	assert.Equal(t, int64(1080000), created.Totals.Total)
	assert.Equal(t, "Một triệu không trăm tám mươi nghìn đồng chẵn", created.AmountInWords)

	// Labels and identities were normalized on the way in.
	require.Len(t, created.Data.Sections, 3)
	assert.Equal(t, "I", created.Data.Sections[0].RomanIndex)
	assert.Equal(t, "III", created.Data.Sections[2].RomanIndex)
	assert.NotEmpty(t, created.Data.Sections[0].ID)
	assert.NotEmpty(t, created.Data.Sections[0].Items[0].ID)

	resp = doRequest(t, srv, http.MethodGet, "/v1/quotations/1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeResponse(t, resp)
	assert.Equal(t, created.Data, got.Data)
}

func TestOwnerScoping(t *testing.T) {
	srv, _ := newTestServer(t)
	tokenA := signToken(t, "user-a")
	tokenB := signToken(t, "user-b")

	resp := doRequest(t, srv, http.MethodPost, "/v1/quotations", tokenA, testDocument())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, srv, http.MethodGet, "/v1/quotations/1", tokenB, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodDelete, "/v1/quotations/1", tokenB, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var summaries []handlers.QuotationSummary
	resp = doRequest(t, srv, http.MethodGet, "/v1/quotations", tokenB, nil)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summaries))
	resp.Body.Close()
	assert.Empty(t, summaries)
}

func TestSectionEdits(t *testing.T) {
	srv, _ := newTestServer(t)
	token := signToken(t, "user-1")

	resp := doRequest(t, srv, http.MethodPost, "/v1/quotations", token, testDocument())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeResponse(t, resp)
	secondID := created.Data.Sections[1].ID

	// Append: new section gets label IV.
	resp = doRequest(t, srv, http.MethodPost, "/v1/quotations/1/sections", token, map[string]string{"title": "D"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeResponse(t, resp)
	require.Len(t, got.Data.Sections, 4)
	assert.Equal(t, "IV", got.Data.Sections[3].RomanIndex)
	assert.Equal(t, "D", got.Data.Sections[3].Title)

	// Move the new section to the front.
	resp = doRequest(t, srv, http.MethodPost, "/v1/quotations/1/sections/move", token, map[string]int{"from": 3, "to": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got = decodeResponse(t, resp)
	assert.Equal(t, "D", got.Data.Sections[0].Title)
	assert.Equal(t, "I", got.Data.Sections[0].RomanIndex)
	assert.Equal(t, "II", got.Data.Sections[1].RomanIndex)

	// Delete the old second section; the rest relabel.
	resp = doRequest(t, srv, http.MethodDelete, "/v1/quotations/1/sections/"+secondID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got = decodeResponse(t, resp)
	require.Len(t, got.Data.Sections, 3)
	for i, sec := range got.Data.Sections {
		assert.NotEqual(t, secondID, sec.ID)
		assert.Equal(t, []string{"I", "II", "III"}[i], sec.RomanIndex)
	}
	// Totals shrank with the deleted items.
	assert.Equal(t, int64(550000), got.Totals.Subtotal)
}

func TestUpdateAndDelete(t *testing.T) {
	srv, _ := newTestServer(t)
	token := signToken(t, "user-1")

	resp := doRequest(t, srv, http.MethodPost, "/v1/quotations", token, testDocument())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	doc := testDocument()
	doc.Meta.QuoteNumber = "BG-2024-02"
	doc.VATRate = 10
	resp = doRequest(t, srv, http.MethodPut, "/v1/quotations/1", token, doc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeResponse(t, resp)
	assert.Equal(t, "BG-2024-02", updated.Title)
	assert.Equal(t, int64(100000), updated.Totals.VATAmount)

	resp = doRequest(t, srv, http.MethodDelete, "/v1/quotations/1", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, srv, http.MethodGet, "/v1/quotations/1", token, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTemplateAndPreview(t *testing.T) {
	srv, _ := newTestServer(t)
	token := signToken(t, "user-1")

	resp := doRequest(t, srv, http.MethodGet, "/v1/quotations/template", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var doc quotation.Document
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	resp.Body.Close()
	assert.NotEmpty(t, doc.Sections)

	resp = doRequest(t, srv, http.MethodPost, "/v1/quotations/preview", token, doc)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()
}

func TestTranslateQuotation(t *testing.T) {
	srv, _ := newTestServer(t)
	token := signToken(t, "user-1")

	resp := doRequest(t, srv, http.MethodPost, "/v1/quotations", token, testDocument())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, srv, http.MethodPost, "/v1/quotations/1/translate", token, map[string]string{"language": "en"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeResponse(t, resp)
	assert.Equal(t, quotation.LanguageEN, got.Data.Language)
	assert.Equal(t, "one million eighty thousand VND only", got.AmountInWords)

	resp = doRequest(t, srv, http.MethodPost, "/v1/quotations/1/translate", token, map[string]string{"language": "fr"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
