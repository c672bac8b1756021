package gofpdf

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"soga/quote_backend/internal/domain/quotation"
)

// labels carries the printable captions per document language.
type labels struct {
	title       string
	quoteNumber string
	date        string
	validity    string
	customer    string
	contact     string
	project     string
	colNo       string
	colName     string
	colUnit     string
	colQty      string
	colPrice    string
	colAmount   string
	subtotal    string
	vat         string
	total       string
	inWords     string
	payment     string
	notes       string
}

var labelsByLang = map[quotation.Language]labels{
	quotation.LanguageVI: {
		title:       "BÁO GIÁ DỊCH VỤ",
		quoteNumber: "Số",
		date:        "Ngày",
		validity:    "Hiệu lực báo giá: %d ngày",
		customer:    "Khách hàng",
		contact:     "Người liên hệ",
		project:     "Dự án",
		colNo:       "STT",
		colName:     "Hạng mục",
		colUnit:     "ĐVT",
		colQty:      "SL",
		colPrice:    "Đơn giá",
		colAmount:   "Thành tiền",
		subtotal:    "Tạm tính",
		vat:         "Thuế VAT (%s%%)",
		total:       "Tổng cộng",
		inWords:     "Bằng chữ",
		payment:     "Điều khoản thanh toán",
		notes:       "Ghi chú",
	},
	quotation.LanguageEN: {
		title:       "QUOTATION",
		quoteNumber: "No.",
		date:        "Date",
		validity:    "Valid for %d days",
		customer:    "Customer",
		contact:     "Contact",
		project:     "Project",
		colNo:       "No.",
		colName:     "Description",
		colUnit:     "Unit",
		colQty:      "Qty",
		colPrice:    "Unit price",
		colAmount:   "Amount",
		subtotal:    "Subtotal",
		vat:         "VAT (%s%%)",
		total:       "Total",
		inWords:     "In words",
		payment:     "Payment terms",
		notes:       "Notes",
	},
}

type Generator struct {
	fontDir string
}

func New(fontDir string) *Generator {
	return &Generator{fontDir: fontDir}
}

func (g *Generator) Generate(doc quotation.Document) ([]byte, error) {
	lb, ok := labelsByLang[doc.Language]
	if !ok {
		lb = labelsByLang[quotation.LanguageVI]
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(lb.title, true)
	pdf.AddUTF8Font("DejaVu", "", filepath.Join(g.fontDir, "DejaVuSans.ttf"))
	pdf.AddUTF8Font("DejaVu", "B", filepath.Join(g.fontDir, "DejaVuSans-Bold.ttf"))
	if err := pdf.Error(); err != nil {
		return nil, err
	}
	pdf.AddPage()

	// Company header
	pdf.SetFont("DejaVu", "B", 13)
	pdf.Cell(0, 7, doc.Company.Name)
	pdf.Ln(6)
	pdf.SetFont("DejaVu", "", 9)
	for _, line := range []string{
		doc.Company.Address,
		doc.Company.OfficeAddress,
		joinNonEmpty(" • ", doc.Company.Phone, doc.Company.Email),
		prefixNonEmpty("MST: ", doc.Company.TaxID),
	} {
		if line == "" {
			continue
		}
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}

	pdf.Ln(4)
	pdf.SetFont("DejaVu", "B", 16)
	pdf.CellFormat(0, 10, lb.title, "", 1, "C", false, 0, "")
	pdf.SetFont("DejaVu", "", 10)
	meta := fmt.Sprintf("%s %s – %s %s", lb.quoteNumber, doc.Meta.QuoteNumber, lb.date, doc.Meta.Date)
	pdf.CellFormat(0, 6, meta, "", 1, "C", false, 0, "")
	if doc.Meta.ValidityDays > 0 {
		pdf.CellFormat(0, 5, fmt.Sprintf(lb.validity, doc.Meta.ValidityDays), "", 1, "C", false, 0, "")
	}

	// Customer block
	pdf.Ln(3)
	pdf.SetFont("DejaVu", "B", 10)
	pdf.Cell(0, 6, lb.customer+": "+doc.Customer.CompanyName)
	pdf.Ln(5)
	pdf.SetFont("DejaVu", "", 9)
	if doc.Customer.ContactPerson != "" {
		pdf.Cell(0, 5, lb.contact+": "+doc.Customer.ContactPerson)
		pdf.Ln(5)
	}
	if doc.Customer.ProjectName != "" {
		pdf.Cell(0, 5, lb.project+": "+doc.Customer.ProjectName)
		pdf.Ln(5)
	}

	// Item table
	pdf.Ln(3)
	pdf.SetFont("DejaVu", "B", 9)
	pdf.CellFormat(12, 7, lb.colNo, "1", 0, "C", false, 0, "")
	pdf.CellFormat(78, 7, lb.colName, "1", 0, "L", false, 0, "")
	pdf.CellFormat(18, 7, lb.colUnit, "1", 0, "C", false, 0, "")
	pdf.CellFormat(14, 7, lb.colQty, "1", 0, "C", false, 0, "")
	pdf.CellFormat(34, 7, lb.colPrice, "1", 0, "R", false, 0, "")
	pdf.CellFormat(34, 7, lb.colAmount, "1", 1, "R", false, 0, "")

	for _, sec := range doc.Sections {
		pdf.SetFont("DejaVu", "B", 9)
		pdf.CellFormat(190, 7, sec.RomanIndex+". "+sec.Title, "1", 1, "L", false, 0, "")
		pdf.SetFont("DejaVu", "", 9)
		for i, it := range sec.Items {
			name := it.Name
			if it.Description != "" {
				name += " — " + it.Description
			}
			pdf.CellFormat(12, 6, strconv.Itoa(i+1), "1", 0, "C", false, 0, "")
			pdf.CellFormat(78, 6, trim(name, 58), "1", 0, "L", false, 0, "")
			pdf.CellFormat(18, 6, it.Unit, "1", 0, "C", false, 0, "")
			pdf.CellFormat(14, 6, formatQty(it.Quantity), "1", 0, "C", false, 0, "")
			pdf.CellFormat(34, 6, formatMoney(it.Price), "1", 0, "R", false, 0, "")
			pdf.CellFormat(34, 6, formatMoney(it.LineAmount()), "1", 1, "R", false, 0, "")
		}
	}

	// Totals
	totals := quotation.ComputeTotals(doc.Sections, doc.VATRate)
	rate := strconv.FormatFloat(doc.VATRate, 'f', -1, 64)
	pdf.SetFont("DejaVu", "", 10)
	pdf.CellFormat(156, 7, lb.subtotal, "1", 0, "R", false, 0, "")
	pdf.CellFormat(34, 7, formatMoney(totals.Subtotal), "1", 1, "R", false, 0, "")
	pdf.CellFormat(156, 7, fmt.Sprintf(lb.vat, rate), "1", 0, "R", false, 0, "")
	pdf.CellFormat(34, 7, formatMoney(totals.VATAmount), "1", 1, "R", false, 0, "")
	pdf.SetFont("DejaVu", "B", 10)
	pdf.CellFormat(156, 8, lb.total, "1", 0, "R", false, 0, "")
	pdf.CellFormat(34, 8, formatMoney(totals.Total), "1", 1, "R", false, 0, "")

	pdf.SetFont("DejaVu", "", 9)
	pdf.MultiCell(190, 5, lb.inWords+": "+quotation.AmountInWords(doc.Language, totals.Total), "", "L", false)

	// Terms
	if doc.Terms.Payment != "" {
		pdf.Ln(3)
		pdf.SetFont("DejaVu", "B", 9)
		pdf.Cell(0, 5, lb.payment)
		pdf.Ln(5)
		pdf.SetFont("DejaVu", "", 9)
		pdf.MultiCell(190, 5, doc.Terms.Payment, "", "L", false)
	}
	if doc.Terms.Notes != "" {
		pdf.Ln(2)
		pdf.SetFont("DejaVu", "B", 9)
		pdf.Cell(0, 5, lb.notes)
		pdf.Ln(5)
		pdf.SetFont("DejaVu", "", 9)
		pdf.MultiCell(190, 5, doc.Terms.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// formatMoney groups thousands with dots, the vi-VN convention (1.000.000).
func formatMoney(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var b []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			b = append(b, '.')
		}
		b = append(b, c)
	}
	if neg {
		return "-" + string(b)
	}
	return string(b)
}

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}

func prefixNonEmpty(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
