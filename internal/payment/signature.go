// AngelaMos | 2026
// signature.go

package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/dheerghayush/storefront-api/internal/core"
)

// Signer computes and checks the gateway's payment signature: the hex
// HMAC-SHA256 of "{gateway order id}|{payment id}" keyed by the API secret.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) Sign(gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares case-sensitively; an upper-case hex signature is rejected.
func (s *Signer) Verify(gatewayOrderID, paymentID, signature string) error {
	expected := s.Sign(gatewayOrderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("verify payment %s: %w", paymentID, core.ErrPaymentVerification)
	}
	return nil
}
