package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"soga/quote_backend/internal/domain/quotation"
)

// ErrNotFound is returned when a quotation does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("quotation not found")

// QuotationRecord is a stored quotation. The document itself lives in a
// jsonb column; title and customer name are denormalized for listing.
type QuotationRecord struct {
	ID           int64              `json:"id"`
	UserID       string             `json:"-"`
	Title        string             `json:"title"`
	CustomerName string             `json:"customerName"`
	Data         quotation.Document `json:"data"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type QuotationRepo struct {
	db *DB
}

func NewQuotationRepo(db *DB) *QuotationRepo {
	return &QuotationRepo{db: db}
}

// Init creates the quotations table if it does not exist yet.
func (r *QuotationRepo) Init(ctx context.Context) error {
	_, err := r.db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS quotations (
			id SERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT,
			customer_name TEXT,
			data JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create quotations table: %w", err)
	}
	return nil
}

func (r *QuotationRepo) List(ctx context.Context, userID string) ([]QuotationRecord, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, user_id, title, customer_name, data, created_at, updated_at
		FROM quotations WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QuotationRecord
	for rows.Next() {
		rec, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *QuotationRepo) Get(ctx context.Context, userID string, id int64) (QuotationRecord, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT id, user_id, title, customer_name, data, created_at, updated_at
		FROM quotations WHERE id = $1 AND user_id = $2`, id, userID)
	rec, err := scanQuotation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return QuotationRecord{}, ErrNotFound
	}
	return rec, err
}

func (r *QuotationRepo) Create(ctx context.Context, userID string, doc quotation.Document) (QuotationRecord, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return QuotationRecord{}, err
	}

	rec := QuotationRecord{
		UserID:       userID,
		Title:        doc.Meta.QuoteNumber,
		CustomerName: doc.Customer.CompanyName,
		Data:         doc,
	}
	err = r.db.Pool.QueryRow(ctx, `
		INSERT INTO quotations (user_id, title, customer_name, data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		userID, rec.Title, rec.CustomerName, data,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return QuotationRecord{}, err
	}
	return rec, nil
}

func (r *QuotationRepo) Update(ctx context.Context, userID string, id int64, doc quotation.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE quotations
		SET title = $1, customer_name = $2, data = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND user_id = $5`,
		doc.Meta.QuoteNumber, doc.Customer.CompanyName, data, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuotationRepo) Delete(ctx context.Context, userID string, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM quotations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanQuotation(row pgx.Row) (QuotationRecord, error) {
	var rec QuotationRecord
	var data []byte
	if err := row.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.CustomerName, &data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return QuotationRecord{}, err
	}
	if err := json.Unmarshal(data, &rec.Data); err != nil {
		return QuotationRecord{}, fmt.Errorf("decode quotation %d: %w", rec.ID, err)
	}
	return rec, nil
}
