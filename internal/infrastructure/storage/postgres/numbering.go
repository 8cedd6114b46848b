package postgres

import (
	"context"
	"fmt"
	"time"
)

// NumberGenerator issues sequential document numbers per prefix and year
// using an UPSERT with RETURNING on doc_sequences. Numbers are gapless as
// long as the call happens inside the document's transaction: a rollback
// releases the row lock and the increment with it.
type NumberGenerator struct {
	txManager *TxManager
	padWidth  int
}

// NewNumberGenerator creates a new document number generator.
func NewNumberGenerator(txManager *TxManager) *NumberGenerator {
	return &NumberGenerator{
		txManager: txManager,
		padWidth:  5,
	}
}

// Next returns the next number for the prefix, formatted as
// PREFIX-YEAR-XXXXX. The counter resets each year.
func (g *NumberGenerator) Next(ctx context.Context, prefix string, period time.Time) (string, error) {
	if period.IsZero() {
		period = time.Now().UTC()
	}

	var num int64
	err := g.txManager.GetQuerier(ctx).QueryRow(ctx, `
		INSERT INTO doc_sequences (prefix, year, current_val)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, year) DO UPDATE SET current_val = doc_sequences.current_val + 1
		RETURNING current_val
	`, prefix, period.Year()).Scan(&num)
	if err != nil {
		return "", fmt.Errorf("next document number: %w", err)
	}

	return fmt.Sprintf("%s-%d-%0*d", prefix, period.Year(), g.padWidth, num), nil
}
