// Command kuznyechik is a thin shell over the kuznyechik core: it reads
// one input file, encrypts it under a demo hex master key, and writes the
// result to output/encrypted_<name>, then decrypts that output back to
// output/decrypted_<name>. This CLI is a reference driver only; any
// caller needing a different key source should call the package API
// directly instead.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grasshopper-go/kuznyechik"
)

// demoHexKey is the standard's published test-vector master key. A real
// deployment must not hardcode its key; this CLI has no other key source.
const demoHexKey = "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef"

func main() {
	if len(os.Args) != 2 {
		log.Printf("Usage: %s <input_filename>\n", os.Args[0])
		os.Exit(1)
	}

	inputPath := os.Args[1]

	if err := os.MkdirAll("output", 0o755); err != nil {
		log.Fatalf("output dir: %v\n", err)
	}

	base := filepath.Base(inputPath)
	encryptedPath := filepath.Join("output", "encrypted_"+base)
	decryptedPath := filepath.Join("output", "decrypted_"+base)

	if err := encryptFile(inputPath, encryptedPath); err != nil {
		log.Fatalf("encryption error: %v\n", err)
	}
	log.Printf("Encryption completed: %s\n", encryptedPath)

	if err := decryptFile(encryptedPath, decryptedPath); err != nil {
		log.Fatalf("decryption error: %v\n", err)
	}
	log.Printf("Decryption completed: %s\n", decryptedPath)
}

func encryptFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return kuznyechik.EncryptFileHex(in, out, demoHexKey)
}

func decryptFile(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return kuznyechik.DecryptFileHex(in, out, demoHexKey)
}
