package cryptox

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/tyler-smith/go-bip39"
)

// RecoveryWords is the number of words in a recovery phrase.
const RecoveryWords = 24

// NewRecoveryPhrase returns a 24-word BIP-39 mnemonic over 256 bits of fresh
// entropy. It is independent of any password.
func NewRecoveryPhrase() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	defer common.WipeByteArray(entropy)

	phrase, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	return phrase, nil
}

// NormalizeRecoveryPhrase lowercases the phrase, collapses whitespace and
// checks the word count and BIP-39 checksum.
func NormalizeRecoveryPhrase(phrase string) (string, error) {
	words := strings.Fields(strings.ToLower(phrase))
	if len(words) != RecoveryWords {
		return "", fmt.Errorf("%w: recovery phrase must have %d words, got %d", common.ErrCrypto, RecoveryWords, len(words))
	}
	normalized := strings.Join(words, " ")
	if !bip39.IsMnemonicValid(normalized) {
		return "", fmt.Errorf("%w: invalid recovery phrase", common.ErrCrypto)
	}
	return normalized, nil
}
