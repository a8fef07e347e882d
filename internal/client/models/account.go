package models

import "github.com/dmitrijs2005/notto/internal/cryptox"

// Account is the device-local copy of a user's key material. The username
// is the durable user identifier on both client and server. Only the
// password copy of the MEK is cached; recovery always goes through the
// server.
type Account struct {
	ID             int64
	Username       string
	AuthParams     cryptox.KDFParams
	SaltAuth       []byte
	SaltServerAuth []byte
	PasswordKey    cryptox.WrappedKey
	Token          string
	ServerAddress  string
}
