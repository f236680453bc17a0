package services

// ProcessPaymentCommand carries the raw inbound fields plus the authenticated
// merchant identity. The merchant ID is never taken from the request body.
type ProcessPaymentCommand struct {
	MerchantID  string
	CardNumber  string
	ExpiryMonth string
	ExpiryYear  string
	Currency    string
	Amount      int64
	Cvv         string
}
