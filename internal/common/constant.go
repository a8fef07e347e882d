// Package common contains shared constants, sentinel errors and small
// helpers used across notto client and server components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// bearer token on outbound requests.
const AccessTokenHeaderName = "access_token"

// UsernameHeaderName is the gRPC metadata key naming the user a call targets.
// The server checks it against the token subject on every authenticated call.
const UsernameHeaderName = "username"
