package textparse

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// Parser converts pasted free text into a draft transaction. Parsing
// never fails: every field degrades to a default instead.
type Parser interface {
	Parse(text string, now time.Time) model.Transaction
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&ReceiptParser{})
	r.Register(&KakaoParser{})
	return r
}

// ReceiptParser is the generic parser: the amount, date, type and
// description extractors composed over the whole text.
type ReceiptParser struct{}

// Format returns the parser name.
func (p *ReceiptParser) Format() string { return "receipt" }

// Parse builds a draft transaction from receipt-like text. Amount
// defaults to zero and date to now when extraction finds nothing.
func (p *ReceiptParser) Parse(text string, now time.Time) model.Transaction {
	amount, ok := ExtractAmount(text)
	if !ok {
		amount = decimal.Zero
	}
	date, ok := ExtractDate(text, now)
	if !ok {
		date = now
	}

	return model.Transaction{
		Date:         date,
		Type:         DetectType(text),
		Amount:       amount,
		Description:  ExtractDescription(text),
		Source:       model.SourceReceipt,
		OriginalText: text,
	}
}
