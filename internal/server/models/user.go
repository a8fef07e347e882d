package models

import (
	"time"

	"github.com/dmitrijs2005/notto/internal/cryptox"
)

// Credential is the stored half of one auth path. StoredHash is the client's
// auth hash re-hardened under ServerSalt.
type Credential struct {
	Params     cryptox.KDFParams `json:"params"`
	Salt       []byte            `json:"salt"`
	ServerSalt []byte            `json:"server_salt"`
	StoredHash []byte            `json:"stored_hash"`
}

// User owns two auth paths, each paired with a wrapped copy of the MEK.
// Revision is the per-user counter stamped on every stored note.
type User struct {
	ID          string
	Username    string
	Password    Credential
	Recovery    Credential
	PasswordKey cryptox.WrappedKey
	RecoveryKey cryptox.WrappedKey
	Revision    int64
	CreatedAt   time.Time
}
