//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Benchmark harness comparing this implementation against the
// standard library's crypto/sha1 over identical inputs.
package main

import (
	"bytes"
	stdsha1 "crypto/sha1"
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/sha1"
	"github.com/markkurossi/sha1/timing"
)

func main() {
	log.SetFlags(0)
	size := flag.Int("size", 1024*1024, "message size in bytes")
	iter := flag.Int("iter", 64, "iterations per implementation")
	flag.Parse()

	data := randomData(*size)
	total := uint64(*size) * uint64(*iter)

	fmt.Printf("hashing %s x %d\n", timing.FileSize(*size), *iter)

	t := timing.NewTiming()

	var self sha1.Hash
	for i := 0; i < *iter; i++ {
		self = sha1.Digest(data)
	}
	t.Sample("sha1.Digest", total)

	var std [stdsha1.Size]byte
	for i := 0; i < *iter; i++ {
		std = stdsha1.Sum(data)
	}
	t.Sample("crypto/sha1", total)

	selfBytes := self.Bytes()
	if !bytes.Equal(selfBytes[:], std[:]) {
		log.Fatalf("digest mismatch: %s != %x", self, std)
	}

	t.Print()
	fmt.Printf("digest: %s\n", self)
}

// randomData expands a fixed ChaCha20 key into size pseudo-random
// bytes so that runs are comparable across invocations.
func randomData(size int) []byte {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	copy(key[:], "sha1bench input generator")

	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		log.Fatalf("sha1bench: %s", err)
	}
	buf := make([]byte, size)
	cipher.XORKeyStream(buf, buf)
	return buf
}
