package quotation

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"soga/quote_backend/internal/domain/numword"
)

type Language string

const (
	LanguageVI Language = "vi"
	LanguageEN Language = "en"
)

// Document is the full quotation as edited and stored. JSON tags match the
// editor's wire format, so saved documents round-trip unchanged.
type Document struct {
	Language Language     `json:"language"`
	Company  CompanyInfo  `json:"company"`
	Customer CustomerInfo `json:"customer"`
	Meta     MetaInfo     `json:"meta"`
	Sections []Section    `json:"sections"`
	VATRate  float64      `json:"vatRate"`
	Terms    Terms        `json:"terms"`
}

type CompanyInfo struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	OfficeAddress string `json:"officeAddress,omitempty"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	TaxID         string `json:"taxId"`
	LogoURL       string `json:"logoUrl"`
}

type CustomerInfo struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson"`
	ProjectName   string `json:"projectName"`
}

type MetaInfo struct {
	QuoteNumber  string `json:"quoteNumber"`
	Date         string `json:"date"`
	ValidityDays int    `json:"validityDays"`
}

type Terms struct {
	Payment string `json:"payment"`
	Notes   string `json:"notes"`
}

// Section is a labeled, ordered group of line items. RomanIndex is a derived
// display value; Resequence overwrites it after every structural edit.
type Section struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	RomanIndex string     `json:"romanIndex"`
	Items      []LineItem `json:"items"`
}

type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Price       int64   `json:"price"` // unit price in whole đồng
}

// LineAmount is quantity × unit price, rounded half away from zero to the
// whole đồng.
func (it LineItem) LineAmount() int64 {
	return decimal.NewFromFloat(it.Quantity).
		Mul(decimal.NewFromInt(it.Price)).
		Round(0).
		IntPart()
}

// NewID generates an identity for a section or line item. Identities are
// never reused; deleted ids stay dead.
func NewID() string {
	return uuid.NewString()
}

// AmountInWords reads an amount in the document's language. Anything that is
// not English falls back to Vietnamese, the editor's primary language.
func AmountInWords(lang Language, amount int64) string {
	if lang == LanguageEN {
		return numword.ReadAmountEN(amount)
	}
	return numword.ReadAmountVN(amount)
}
