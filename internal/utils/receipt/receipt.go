// Package receipt generates human-facing receipt numbers.
//
// A receipt number looks like RCP-202506-4821: a year+month prefix plus a
// 4-digit random suffix. The suffix alone is not collision-proof, so the
// payments table enforces uniqueness and the recorder retries once with a
// fresh number on a collision.
package receipt

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const prefix = "RCP"

var suffixRange = big.NewInt(10000)

// NewNumber generates a receipt number for the given payment date.
func NewNumber(paymentDate time.Time) (string, error) {
	n, err := rand.Int(rand.Reader, suffixRange)
	if err != nil {
		return "", fmt.Errorf("failed to read random suffix: %w", err)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, paymentDate.Format("200601"), n.Int64()), nil
}
