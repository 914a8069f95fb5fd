package payment

import "errors"

// Request is the payload to process a payment for an order.
type Request struct {
	OrderID       string  `json:"orderId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Response reports the outcome of a payment attempt.
type Response struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message,omitempty"`
}

// ErrInvalidInput wraps request validation failures.
var ErrInvalidInput = errors.New("invalid input")
