package main

import (
	"fmt"
	"log"
	"os"

	"topic-lab/auth"
)

// Produces the TEACHER_CODE_HASH value for a plaintext access code.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <access-code>\n", os.Args[0])
		os.Exit(2)
	}
	digest, err := auth.HashAccessCode(os.Args[1])
	if err != nil {
		log.Fatalf("Hashing failed: %v", err)
	}
	fmt.Println(digest)
}
