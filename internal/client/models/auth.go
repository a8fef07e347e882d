package models

import "github.com/dmitrijs2005/notto/internal/cryptox"

// Credential is the server-side half of one auth path: the salt auth_hash is
// derived with, the server salt and the re-hardened hash.
type Credential struct {
	Params     cryptox.KDFParams
	Salt       []byte
	ServerSalt []byte
	StoredHash []byte
}

// Registration is everything create-account sends. Nothing in it can unwrap
// the MEK without the password or the recovery phrase.
type Registration struct {
	Username    string
	Password    Credential
	Recovery    Credential
	PasswordKey cryptox.WrappedKey
	RecoveryKey cryptox.WrappedKey
}

// Challenge holds the auth-path salts returned by login-request.
type Challenge struct {
	Params     cryptox.KDFParams
	Salt       []byte
	ServerSalt []byte
}

// Grant is a successful login: the wrapped MEK of the path used and a bearer
// token.
type Grant struct {
	Key   cryptox.WrappedKey
	Token string
}
