package main

import (
	"fmt"
	"os"

	"go-internhub-backend/pkg/hash"
)

// Prints a bcrypt digest for each password given on the command line so an
// initial admin row can be inserted by hand.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password> [password...]")
		os.Exit(1)
	}

	for _, pass := range os.Args[1:] {
		digest, err := hash.Password(pass)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", pass, digest)
	}
}
