package rpcclient

import (
	"golang.org/x/oauth2"
)

// AuthScheme produces the single authentication header attached to a client
// by WithAuth.
type AuthScheme interface {
	// HeaderName returns the HTTP header name to set.
	HeaderName() string
	// HeaderValue returns the complete header value.
	HeaderValue() string
}

// APIKey authenticates requests with an x-api-key header, the scheme used by
// commercial NEAR RPC providers.
type APIKey string

// HeaderName implements the AuthScheme interface.
func (k APIKey) HeaderName() string {
	return "X-Api-Key"
}

// HeaderValue implements the AuthScheme interface.
func (k APIKey) HeaderValue() string {
	return string(k)
}

// BearerToken authenticates requests with an RFC 6750 Authorization header.
type BearerToken string

// HeaderName implements the AuthScheme interface.
func (t BearerToken) HeaderName() string {
	return "Authorization"
}

// HeaderValue implements the AuthScheme interface.
func (t BearerToken) HeaderValue() string {
	return "Bearer " + string(t)
}

// BearerFromTokenSource obtains a token from the given oauth2 source and wraps
// it as a BearerToken. The token is captured once, callers with expiring
// credentials should fork a fresh authorized client when the token rolls over.
func BearerFromTokenSource(src oauth2.TokenSource) (BearerToken, error) {
	tok, err := src.Token()
	if err != nil {
		return "", err
	}
	return BearerToken(tok.AccessToken), nil
}
