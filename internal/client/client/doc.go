// Package client talks to the notto server and bootstraps the device
// database.
//
// GRPCClient implements Client over gRPC with the JSON codec from package
// rpc. Every call is bounded by the configured timeout unless the caller's
// context already has a deadline. Authenticated calls carry the username and
// bearer token as metadata.
//
// gRPC status codes are mapped onto the shared error taxonomy:
//
//	Unauthenticated                  common.ErrorUnauthorized (bad credentials)
//	PermissionDenied                 common.ErrInvalidToken (token rejected)
//	Unavailable, DeadlineExceeded    common.ErrTransport
//	AlreadyExists                    common.ErrUserAlreadyExists
//
// InitDatabase opens the SQLite file with the pure-Go modernc driver and
// applies the embedded goose migrations.
package client
