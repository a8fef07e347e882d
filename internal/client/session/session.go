// Package session holds the unlocked state of the signed-in user.
package session

import (
	"sync"

	"github.com/dmitrijs2005/notto/internal/common"
)

// Snapshot is a consistent copy of the session's identity fields.
type Snapshot struct {
	UserID        string
	Token         string
	ServerAddress string
}

// Session is shared between the UI and the sync engine. The master key never
// leaves it by reference; use WithMasterKey.
type Session struct {
	mu         sync.RWMutex
	userID     string
	token      string
	serverAddr string
	mek        []byte
}

func New() *Session {
	return &Session{}
}

// Open installs a freshly unlocked identity, wiping any previous key.
func (s *Session) Open(userID, token, serverAddr string, mek []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	common.WipeByteArray(s.mek)
	s.userID, s.token, s.serverAddr = userID, token, serverAddr
	s.mek = append([]byte(nil), mek...)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{UserID: s.userID, Token: s.token, ServerAddress: s.serverAddr}
}

// Ready reports whether the session is unlocked and carries a server token,
// which is what a sync round needs.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID != "" && s.token != "" && len(s.mek) > 0
}

// Unlocked reports whether a master key is present.
func (s *Session) Unlocked() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mek) > 0
}

// WithMasterKey calls fn with the master key under the read lock.
// fn must not retain the slice.
func (s *Session) WithMasterKey(fn func(mek []byte) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.mek) == 0 {
		return common.ErrorUnauthorized
	}
	return fn(s.mek)
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Close wipes the master key and forgets the identity.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	common.WipeByteArray(s.mek)
	s.mek = nil
	s.userID, s.token, s.serverAddr = "", "", ""
}
