package pdf

import "soga/quote_backend/internal/domain/quotation"

type Generator interface {
	Generate(doc quotation.Document) ([]byte, error)
}
