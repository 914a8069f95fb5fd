package payment

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// Gateway is the provider-agnostic interface a payment adapter must
// implement. To add a real provider (Stripe, card networks), implement
// this interface and swap it in at wiring time.
type Gateway interface {
	// Charge attempts to collect the given amount and returns the
	// provider transaction reference.
	Charge(ctx context.Context, req Request) (*Response, error)
}

// stubGateway accepts every charge. It exists so the checkout flow can
// be exercised end to end without a real provider account.
type stubGateway struct{}

// NewStubGateway returns a Gateway that always succeeds.
func NewStubGateway() Gateway { return &stubGateway{} }

func (g *stubGateway) Charge(ctx context.Context, req Request) (*Response, error) {
	id := uuid.New()
	ref := "TXN-" + strings.ToUpper(hex.EncodeToString(id[:])[:16])
	return &Response{
		Success:       true,
		TransactionID: ref,
		Message:       "Payment processed successfully (stub)",
	}, nil
}
