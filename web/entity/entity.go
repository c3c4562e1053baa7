// Package entity defines the response shapes of the web layer.
package entity

// TokenResponse is the body of a successful POST /token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
