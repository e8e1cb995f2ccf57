/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serde

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/suparena/tablekit/schema"
)

// aead constructs an AES-GCM cipher from the encryptor's key material.
// The key length selects the AES variant (16/24/32 bytes).
func aead(enc *schema.Encryptor) (cipher.AEAD, error) {
	if err := enc.Validate(); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher([]byte(enc.Key))
	if err != nil {
		return nil, fmt.Errorf("construct %s cipher: %w", enc.Type, err)
	}
	return cipher.NewGCM(block)
}

// seal encrypts plaintext and prepends the random nonce, so the ciphertext
// is self-contained on the decode path.
func seal(enc *schema.Encryptor, plaintext []byte) ([]byte, error) {
	gcm, err := aead(enc)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// open splits the nonce prefix off ciphertext and decrypts the remainder.
func open(enc *schema.Encryptor, ciphertext []byte) ([]byte, error) {
	gcm, err := aead(enc)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext shorter than nonce (%d bytes)", len(ciphertext))
	}
	nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("authenticated decryption failed: %w", err)
	}
	return plaintext, nil
}
