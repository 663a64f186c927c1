//
// block.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"math/bits"
)

// Round constants for the four 20-round groups.
const (
	k0 = 0x5A827999
	k1 = 0x6ED9EBA1
	k2 = 0x8F1BBCDC
	k3 = 0xCA62C1D6
)

// block compresses the full 64-byte chunk into the hash words and
// advances the block counter. All word additions wrap modulo 2^32.
func (s *Sha1) block() {
	s.chunksProcessed++

	var w [80]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(s.chunk[i*4:])
	}

	// Message schedule expansion. The second loop applies the
	// standard rotate-by-1 recurrence twice per step, rotating by 2,
	// which yields identical words with shorter dependency chains.
	for i := 16; i < 32; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
	for i := 32; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-6]^w[i-16]^w[i-28]^w[i-32], 2)
	}

	a, b, c, d, e := s.h0, s.h1, s.h2, s.h3, s.h4

	for i := 0; i < 20; i++ {
		f := (b & c) | (^b & d)
		tmp := bits.RotateLeft32(a, 5) + f + e + k0 + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, tmp
	}
	for i := 20; i < 40; i++ {
		f := b ^ c ^ d
		tmp := bits.RotateLeft32(a, 5) + f + e + k1 + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, tmp
	}
	for i := 40; i < 60; i++ {
		f := (b & c) | (b & d) | (c & d)
		tmp := bits.RotateLeft32(a, 5) + f + e + k2 + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, tmp
	}
	for i := 60; i < 80; i++ {
		f := b ^ c ^ d
		tmp := bits.RotateLeft32(a, 5) + f + e + k3 + w[i]
		e, d, c, b, a = d, c, bits.RotateLeft32(b, 30), a, tmp
	}

	s.h0 += a
	s.h1 += b
	s.h2 += c
	s.h3 += d
	s.h4 += e
}
