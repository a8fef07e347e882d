// Package rpc converts between the NoteService protobuf messages in
// internal/proto and the key material types of internal/cryptox, and names
// the push verdicts carried on the wire.
package rpc
