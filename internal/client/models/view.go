package models

// NoteView is a decrypted note as shown to the user.
type NoteView struct {
	ID        int64
	Title     string
	Content   string
	Timestamp int64
	Synced    bool
	Conflict  bool
}

// ConflictView shows both sides of an unresolved conflict. Remote is nil
// when the remote side is a deletion.
type ConflictView struct {
	NoteID int64
	Local  *NoteView
	Remote *NoteView
}
