package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"math/big"
	mrand "math/rand/v2"
	"sync"

	"golang.org/x/crypto/chacha20"
)

var ErrInvalidBound = errors.New("random bound must be positive")

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

type secureSource struct{}

// SecureSource returns a Source backed by crypto/rand.
func SecureSource() Source {
	return secureSource{}
}

func (secureSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic ChaCha20 keystream source. The same seed
// always yields the same sequence.
type SeededSource struct {
	mu     sync.Mutex
	stream *chacha20.Cipher
}

// NewSeededSource creates a SeededSource keyed by seed with a zero nonce.
func NewSeededSource(seed [chacha20.KeySize]byte) (*SeededSource, error) {
	nonce := make([]byte, chacha20.NonceSize)
	stream, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		return nil, err
	}
	return &SeededSource{stream: stream}, nil
}

// IntN draws from the keystream with rejection sampling to avoid modulo bias.
func (s *SeededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)

	s.mu.Lock()
	defer s.mu.Unlock()

	var buf [8]byte
	for {
		clear(buf[:])
		s.stream.XORKeyStream(buf[:], buf[:])
		v := binary.LittleEndian.Uint64(buf[:])
		if v < limit {
			return int(v % bound), nil
		}
	}
}

type mathSource struct {
	mu sync.Mutex
	r  *mrand.Rand
}

// MathSource adapts a math/rand/v2 generator. It is not suitable for
// credentials unless r is itself backed by a cryptographic stream.
func MathSource(r *mrand.Rand) Source {
	return &mathSource{r: r}
}

func (m *mathSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.r.IntN(n), nil
}
