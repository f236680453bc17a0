package application

// AuthorisationRequest is the acquiring bank's wire shape. The card number is
// sent unmasked and the expiry date is formatted as MM/YYYY.
type AuthorisationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

type AuthorisationResponse struct {
	Authorised        bool   `json:"authorized"`
	AuthorisationCode string `json:"authorization_code"`
}
