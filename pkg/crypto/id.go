package crypto

import "crypto/rand"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"
	idLength   = 22 // 22 * 6 = 132 bits of entropy, slightly above uuid's 128
)

// NewID generates a URL-safe random identifier for stores that do not
// assign their own keys.
func NewID() (string, error) {
	id := make([]byte, idLength)
	buf := make([]byte, idLength)

	for pos := 0; pos < idLength; {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for i := 0; i < len(buf) && pos < idLength; i++ {
			// The alphabet has 64 entries, so a 6-bit mask never needs
			// rejection sampling.
			id[pos] = idAlphabet[buf[i]&63]
			pos++
		}
	}

	return string(id), nil
}
