// hash-admin-key prints the bcrypt hash of an admin key for private.yaml.
//
// Usage: hash-admin-key <key>
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: hash-admin-key <key>")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash key: %s", err)
	}

	fmt.Println(string(hash))
}
