//go:build ignore

// This script generates the receipt signing key and an API key for a client.
// Run with: go run scripts/generate_keys.go -client teresa
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func fail(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	client := flag.String("client", "default", "name recorded in audit logs for requests using the API key")
	flag.Parse()

	// 32 bytes = 256 bits for HS256
	signingKey, err := generateSecureKey(32)
	if err != nil {
		fail("receipt signing key", err)
	}

	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("API key", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		fail("API key hash", err)
	}

	fmt.Println("=== Laundry Pricing Key Generator ===")
	fmt.Println()
	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Signs the PDF download links in quote responses")
	fmt.Printf("RECEIPT_SIGNING_KEY=%s\n", signingKey)
	fmt.Println()
	fmt.Println("# Only the hash is stored; single quotes keep godotenv from expanding $")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("API_KEYS='%s:%s'\n", *client, hash)
	fmt.Println()
	fmt.Printf("Give this key to %s (X-API-Key header):\n", *client)
	fmt.Println(apiKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment (dev, staging, prod)")
	fmt.Println("- The API key is shown once; generate a new one if it is lost")
}
