// Package models defines the client-side records of notto: locally stored
// notes, their remote counterparts, conflicts and the cached account.
package models

import "github.com/dmitrijs2005/notto/internal/rpc"

// Note is one locally stored, encrypted note. ServerID is zero until the
// server acknowledges the first push.
type Note struct {
	ID         int64
	ServerID   int64
	UserID     string
	Ciphertext []byte
	Nonce      []byte
	Timestamp  int64
	Synced     bool
	Deleted    bool
	Conflict   bool
}

// RemoteNote is a note as stored by the server.
type RemoteNote struct {
	ServerID   int64
	Ciphertext []byte
	Nonce      []byte
	Timestamp  int64
	Deleted    bool
	Revision   int64
}

// PushStatus is the server's verdict on one pushed note.
type PushStatus string

const (
	PushOK       PushStatus = rpc.PushStatusOK
	PushConflict PushStatus = rpc.PushStatusConflict
)

// PushVerdict pairs a pushed note with the server's answer. Current is the
// server's stored version when Status is PushConflict.
type PushVerdict struct {
	ClientID int64
	ServerID int64
	Status   PushStatus
	Revision int64
	Current  *RemoteNote
}

// Conflict is an unresolved remote version kept next to a diverged local note.
type Conflict struct {
	NoteID     int64
	ServerID   int64
	Ciphertext []byte
	Nonce      []byte
	Timestamp  int64
	Deleted    bool
	DetectedAt int64
}

// Remote returns the conflicting server version.
func (c *Conflict) Remote() *RemoteNote {
	return &RemoteNote{
		ServerID:   c.ServerID,
		Ciphertext: c.Ciphertext,
		Nonce:      c.Nonce,
		Timestamp:  c.Timestamp,
		Deleted:    c.Deleted,
	}
}
