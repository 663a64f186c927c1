//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/sha1"
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if flag.NArg() == 0 {
		hash, _, err := sha1.DigestReader(os.Stdin)
		if err != nil {
			log.Fatalf("sha1sum: %s", err)
		}
		fmt.Printf("%s  -\n", hash)
		return
	}

	var failed bool
	for _, path := range flag.Args() {
		hash, _, err := sha1.DigestFile(path)
		if err != nil {
			log.Printf("sha1sum: %s", err)
			failed = true
			continue
		}
		fmt.Printf("%s  %s\n", hash, path)
	}
	if failed {
		os.Exit(1)
	}
}
