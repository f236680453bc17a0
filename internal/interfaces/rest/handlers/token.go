package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/cardpay/gateway/internal/auth"
	"github.com/cardpay/gateway/internal/interfaces/rest"
)

type tokenRequest struct {
	GrantType    string `validate:"required,eq=client_credentials"`
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	Scope        string
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// HandleToken issues a merchant access token
// @Summary      Issue an access token
// @Description  Client-credentials token endpoint. Returns a bearer token carrying the merchant identity and granted scopes.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Success      200  {object}  tokenResponse
// @Failure      400  {object}  rest.APIResponse
// @Failure      401  {object}  rest.APIResponse
// @Router       /connect/token [post]
func (h *Handlers) HandleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_BODY",
			Message: "request body must be form-encoded",
		})
		return
	}

	req := tokenRequest{
		GrantType:    r.PostFormValue("grant_type"),
		ClientID:     r.PostFormValue("client_id"),
		ClientSecret: r.PostFormValue("client_secret"),
		Scope:        r.PostFormValue("scope"),
	}

	if err := h.validate.Struct(req); err != nil {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_GRANT",
			Message: "grant_type must be client_credentials and client credentials are required",
		})
		return
	}

	if !h.clientCredentialsMatch(req.ClientID, req.ClientSecret) {
		rest.RespondWithJSON(w, http.StatusUnauthorized, &rest.APIError{
			Code:    "INVALID_CLIENT",
			Message: "unknown client or bad credentials",
		})
		return
	}

	granted, ok := h.grantScopes(req.Scope)
	if !ok {
		rest.RespondWithJSON(w, http.StatusBadRequest, &rest.APIError{
			Code:    "INVALID_SCOPE",
			Message: "requested scope is not allowed for this client",
		})
		return
	}

	token, err := h.tokens.IssueToken(h.authConfig.MerchantID, granted)
	if err != nil {
		h.logger.Error("failed to issue token", "client_id", req.ClientID, "error", err)
		rest.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	rest.EncodeJSON(w, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokens.TokenTTL().Seconds()),
		Scope:       strings.Join(granted, " "),
	})
}

func (h *Handlers) clientCredentialsMatch(clientID, clientSecret string) bool {
	idMatch := subtle.ConstantTimeCompare([]byte(clientID), []byte(h.authConfig.ClientID))
	secretMatch := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(h.authConfig.ClientSecret))
	return idMatch == 1 && secretMatch == 1
}

// grantScopes intersects the requested scopes with the client's configured
// allowance; an empty request grants everything the client is allowed.
func (h *Handlers) grantScopes(requested string) ([]string, bool) {
	allowed := strings.Fields(h.authConfig.Scopes)
	if len(allowed) == 0 {
		allowed = []string{auth.ScopePaymentRead, auth.ScopePaymentWrite}
	}

	if strings.TrimSpace(requested) == "" {
		return allowed, true
	}

	allowedSet := make(map[string]bool, len(allowed))
	for _, s := range allowed {
		allowedSet[s] = true
	}

	var granted []string
	for _, s := range strings.Fields(requested) {
		if !allowedSet[s] {
			return nil, false
		}
		granted = append(granted, s)
	}
	return granted, true
}
