//
// sha1.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in RFC
// 3174. The hash state is incremental: input can be absorbed in
// arbitrary pieces with Update, and the state can be reset and reused
// for further messages, or cloned when several messages share a
// common prefix. SHA-1 is cryptographically broken and this package
// makes no attempt at constant-time operation; use it for checksums,
// not for security.
package sha1

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Size is the length of a SHA-1 digest in bytes.
const Size = 20

// BlockSize is the SHA-1 block size in bytes.
const BlockSize = 64

// Initial hash values from RFC 3174, section 6.1.
const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

// Hash is a SHA-1 digest as five 32-bit words, in the order
// h0,h1,h2,h3,h4.
type Hash [5]uint32

// Bytes returns the canonical 20-byte form of the digest. Each word
// is serialized big-endian.
func (h Hash) Bytes() [Size]byte {
	var buf [Size]byte
	for i, w := range h {
		binary.BigEndian.PutUint32(buf[i*4:], w)
	}
	return buf
}

func (h Hash) String() string {
	buf := h.Bytes()
	return fmt.Sprintf("%x", buf[:])
}

// Sha1 holds the state of one hash computation. It can be reset and
// reused, but it computes one hash at a time. The zero value is not
// ready for use; create states with New.
type Sha1 struct {
	// chunk buffers input until a full 512-bit block is available.
	chunk [BlockSize]byte

	// used counts the valid bytes in chunk. It is always less than
	// BlockSize between calls.
	used int

	// chunksProcessed counts compressed blocks. Finish uses it to
	// reconstruct the total message length.
	chunksProcessed uint64

	h0, h1, h2, h3, h4 uint32
}

// New returns a new Sha1 in its initial state.
func New() *Sha1 {
	s := new(Sha1)
	s.Reset()
	return s
}

// Reset returns the state to its initial values so that it can hash a
// new message. The chunk buffer is not cleared: with used back at
// zero its stale bytes are unreachable.
func (s *Sha1) Reset() {
	s.used = 0
	s.chunksProcessed = 0
	s.h0 = init0
	s.h1 = init1
	s.h2 = init2
	s.h3 = init3
	s.h4 = init4
}

// Clone returns an independent copy of the state. The copy and the
// original can be updated and finished separately, so a common prefix
// needs to be hashed only once.
func (s *Sha1) Clone() *Sha1 {
	c := *s
	return &c
}

// Update absorbs data into the hash. A block is compressed for every
// 64 bytes passed through Update, counting bytes carried over from
// earlier calls; the remainder is buffered. Update always leaves at
// least one byte free in the chunk buffer.
func (s *Sha1) Update(data []byte) {
	free := BlockSize - s.used

	// While the input can fill the rest of the chunk, fill it and
	// compress.
	for len(data) >= free {
		copy(s.chunk[s.used:], data[:free])
		s.block()

		data = data[free:]
		s.used = 0
		free = BlockSize
	}

	copy(s.chunk[s.used:], data)
	s.used += len(data)
}

// Finish pads the message and returns its digest. The state is
// consumed: calling Update or Finish again without an intervening
// Reset never faults but continues hashing past the padding and
// produces a meaningless digest.
func (s *Sha1) Finish() Hash {
	// Total message length in bits, captured before padding.
	messageLength := s.chunksProcessed*512 + 8*uint64(s.used)

	// Terminator bit.
	s.chunk[s.used] = 0x80
	s.used++

	if s.used <= 56 {
		// Zero fill between the terminator and the length field.
		for i := s.used; i < 56; i++ {
			s.chunk[i] = 0
		}
	} else {
		// No room for the length field in this block. Zero fill
		// to the end, compress, and start a zeroed block.
		for i := s.used; i < BlockSize; i++ {
			s.chunk[i] = 0
		}
		s.block()
		for i := 0; i < 56; i++ {
			s.chunk[i] = 0
		}
	}

	binary.BigEndian.PutUint64(s.chunk[56:], messageLength)
	s.block()

	// Leave the buffer empty so that further calls on the consumed
	// state stay in bounds.
	s.used = 0

	return Hash{s.h0, s.h1, s.h2, s.h3, s.h4}
}

// Write absorbs p via Update. It implements io.Writer so that a read
// loop can be piped straight into the hasher; it never fails.
func (s *Sha1) Write(p []byte) (int, error) {
	s.Update(p)
	return len(p), nil
}

// Digest returns the SHA-1 digest of data.
func Digest(data []byte) Hash {
	s := New()
	s.Update(data)
	return s.Finish()
}

// DigestReader hashes everything readable from r and returns the
// digest and the number of bytes read. On a read error it returns the
// error and the zero Hash, never a partial digest.
func DigestReader(r io.Reader) (Hash, int64, error) {
	s := New()
	n, err := io.Copy(s, r)
	if err != nil {
		return Hash{}, n, fmt.Errorf("sha1: read: %w", err)
	}
	return s.Finish(), n, nil
}

// DigestFile hashes the contents of the named file and returns the
// digest and the file size in bytes.
func DigestFile(path string) (Hash, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return Hash{}, 0, err
	}
	defer f.Close()

	return DigestReader(f)
}
