package common

const (
	// AuthorizationHeaderName is the HTTP header and gRPC metadata key that
	// carries the bearer token.
	AuthorizationHeaderName = "authorization"

	// BearerScheme prefixes the token inside the authorization header.
	BearerScheme = "Bearer"
)
