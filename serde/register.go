/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serde

import (
	"github.com/suparena/tablekit/registry"
	"github.com/suparena/tablekit/schema"
)

// Built-in serializer names resolvable through the registry.
const (
	SerializerString          = "string"
	SerializerJSON            = "json"
	SerializerCompressedJSON  = "compressed-json"
	SerializerEncryptedJSON   = "encrypted-json"
	SerializerEncryptedString = "encrypted-string"
)

func init() {
	registry.RegisterSerializer(SerializerString, func(*schema.Encryptor) (schema.Serializer, error) {
		return StringSerializer{}, nil
	})
	registry.RegisterSerializer(SerializerJSON, func(*schema.Encryptor) (schema.Serializer, error) {
		return JSONSerializer{}, nil
	})
	registry.RegisterSerializer(SerializerCompressedJSON, func(*schema.Encryptor) (schema.Serializer, error) {
		return NewCompressedJSONSerializer(), nil
	})
	registry.RegisterSerializer(SerializerEncryptedJSON, func(enc *schema.Encryptor) (schema.Serializer, error) {
		return NewEncryptedJSONSerializer(enc)
	})
	registry.RegisterSerializer(SerializerEncryptedString, func(enc *schema.Encryptor) (schema.Serializer, error) {
		return NewEncryptedStringSerializer(enc)
	})
}
