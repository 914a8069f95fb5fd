package payment

import (
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txnRefPattern = regexp.MustCompile(`^TXN-[0-9A-F]{16}$`)

func TestProcessSucceedsWithTransactionRef(t *testing.T) {
	svc := NewService(NewStubGateway())

	resp, err := svc.Process(context.Background(), Request{
		OrderID:       uuid.New().String(),
		Amount:        139.97,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Regexp(t, txnRefPattern, resp.TransactionID)
	assert.NotEmpty(t, resp.Message)
}

func TestProcessGeneratesUniqueRefs(t *testing.T) {
	svc := NewService(NewStubGateway())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		resp, err := svc.Process(ctx, Request{OrderID: uuid.New().String(), Amount: 1})
		require.NoError(t, err)
		assert.False(t, seen[resp.TransactionID])
		seen[resp.TransactionID] = true
	}
}

func TestProcessValidation(t *testing.T) {
	svc := NewService(NewStubGateway())
	ctx := context.Background()

	_, err := svc.Process(ctx, Request{OrderID: "not-a-uuid", Amount: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Process(ctx, Request{OrderID: uuid.New().String(), Amount: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Process(ctx, Request{OrderID: uuid.New().String(), Amount: -5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
