package mcpi

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand/v2"
)

// Source produces full-width random 32-bit values.
type Source interface {
	Uint32() uint32
}

// cryptoBufferSize is the read-ahead buffer for CryptoSource.
// One sample consumes four draws (16 bytes).
const cryptoBufferSize = 4096

// CryptoSource is a Source backed by the operating system's
// cryptographically secure generator. Statistical quality is favored over
// speed: a weak generator shows visible lattice patterns on the canvas
// after a few million samples.
//
// CryptoSource is NOT safe for concurrent use.
type CryptoSource struct {
	r   *bufio.Reader
	buf [4]byte
}

// NewCryptoSource creates a CryptoSource reading from crypto/rand.
// A probe read verifies the source before it is handed out; failure is
// reported as ErrRandomSource.
func NewCryptoSource() (*CryptoSource, error) {
	return newCryptoSource(rand.Reader)
}

func newCryptoSource(r io.Reader) (*CryptoSource, error) {
	s := &CryptoSource{r: bufio.NewReaderSize(r, cryptoBufferSize)}
	if _, err := s.r.Peek(len(s.buf)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return s, nil
}

// Uint32 returns the next random value.
// It panics if the underlying reader fails after initialization; the
// operating system generator does not fail once it has produced output.
func (s *CryptoSource) Uint32() uint32 {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		panic("mcpi: crypto source read failed: " + err.Error())
	}
	return binary.LittleEndian.Uint32(s.buf[:])
}

// PCGSource is a seeded Source for reproducible runs.
type PCGSource struct {
	r *mrand.Rand
}

// NewPCGSource creates a PCG-backed Source with the given seed.
func NewPCGSource(seed1, seed2 uint64) *PCGSource {
	return &PCGSource{r: mrand.New(mrand.NewPCG(seed1, seed2))}
}

// Uint32 returns the next value of the PCG stream.
func (s *PCGSource) Uint32() uint32 {
	return s.r.Uint32()
}
