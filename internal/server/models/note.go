package models

import (
	"time"

	"github.com/dmitrijs2005/notto/internal/rpc"
)

// Note is one stored record. When blob offload is on, Ciphertext is empty
// in the row and BlobKey names the object holding it.
type Note struct {
	ID         int64
	UserID     string
	Ciphertext []byte
	BlobKey    string
	Nonce      []byte
	Timestamp  int64
	Deleted    bool
	Revision   int64
	UpdatedAt  time.Time
}

// PushStatus is the verdict for one pushed note.
type PushStatus string

const (
	PushOK       PushStatus = rpc.PushStatusOK
	PushConflict PushStatus = rpc.PushStatusConflict
)

// PushItem is one note offered by a client. ID is zero for a note the
// server has never seen.
type PushItem struct {
	ClientID   int64
	ID         int64
	Ciphertext []byte
	Nonce      []byte
	Timestamp  int64
	Deleted    bool
}

// PushResult answers one PushItem. Current is set on conflict.
type PushResult struct {
	ClientID int64
	ID       int64
	Status   PushStatus
	Revision int64
	Current  *Note
}
