//
// bench_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"crypto/rand"
	stdsha1 "crypto/sha1"
	"fmt"
	"io"
	"testing"
)

func benchmarkDigest(b *testing.B, length int64) {
	buf := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		b.Fatal(err)
	}
	b.SetBytes(length)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Digest(buf)
	}
}

func BenchmarkDigestSmall(b *testing.B) {
	benchmarkDigest(b, 64)
}

func BenchmarkDigestMedium(b *testing.B) {
	benchmarkDigest(b, 1024)
}

func BenchmarkDigestLarge(b *testing.B) {
	benchmarkDigest(b, 1024*1024)
}

func BenchmarkVsStdlib(b *testing.B) {
	buf := make([]byte, 8192)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		b.Fatal(err)
	}
	impls := []struct {
		name string
		fn   func([]byte)
	}{
		{"sha1.Digest", func(p []byte) { Digest(p) }},
		{"crypto/sha1", func(p []byte) { stdsha1.Sum(p) }},
	}
	for _, impl := range impls {
		b.Run(fmt.Sprintf("impl=%s", impl.name), func(b *testing.B) {
			b.SetBytes(int64(len(buf)))
			for i := 0; i < b.N; i++ {
				impl.fn(buf)
			}
		})
	}
}
