package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix is prepended to the token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName carries a per-request UUID for server-side correlation.
const RequestIDHeaderName = "X-Request-Id"
