package cryptox

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/notto/internal/common"
)

// NotePayload is the plaintext of one note. Only its sealed form leaves memory.
type NotePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EncryptNote serializes p and seals it directly under the MEK.
// The nonce is always generated here.
func EncryptNote(p NotePayload, mek []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(p)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	defer common.WipeByteArray(plaintext)

	nonce, ciphertext, err = Seal(mek, plaintext, nil)
	if err != nil {
		return nil, nil, err
	}
	return ciphertext, nonce, nil
}

// DecryptNote opens a note sealed by EncryptNote. Errors match
// ErrAuthenticationFailure or ErrMalformedNonce so callers can skip the
// single note and carry on.
func DecryptNote(ciphertext, nonce, mek []byte) (*NotePayload, error) {
	plaintext, err := Open(mek, nonce, ciphertext, nil)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(plaintext)

	var p NotePayload
	if err := json.Unmarshal(plaintext, &p); err != nil {
		return nil, fmt.Errorf("%w: note payload: %v", common.ErrCrypto, err)
	}
	return &p, nil
}
