/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/tablekit/errors"
)

// Serializer converts between a domain value and a single-tag wire record.
// Implementations must be exact inverses of themselves:
// Deserialize(Serialize(v)) == v for every value in their declared domain.
//
// The serde package provides the built-in implementations; the interface
// lives here so an Attribute can carry one without the schema layer
// depending on any particular pipeline.
type Serializer interface {
	Serialize(v any) (types.AttributeValue, error)
	Deserialize(av types.AttributeValue) (any, error)
}

// Encryptor is a symmetric-key configuration owned by the Attribute that
// references it. Key must be exactly Type.KeySize() bytes.
type Encryptor struct {
	Type EncryptionType
	Key  string
}

// Validate checks the encryptor configuration. Violations surface as
// configuration errors since they represent missing setup, not bad data.
func (e *Encryptor) Validate() error {
	if !e.Type.Valid() {
		return errors.NewConfigurationError("encryptor", fmt.Sprintf("unknown encryption type %q", e.Type))
	}
	if len(e.Key) != e.Type.KeySize() {
		return errors.NewConfigurationError("encryptor",
			fmt.Sprintf("%s requires a %d-byte key, got %d bytes", e.Type, e.Type.KeySize(), len(e.Key)))
	}
	return nil
}

// Attribute describes one stored field. The serializer and encryptor, when
// present, govern how values of this attribute are encoded on the wire.
type Attribute struct {
	Name       string
	DataType   DataType
	Serializer Serializer
	Encryptor  *Encryptor
}

// Validate checks the attribute definition.
func (a *Attribute) Validate() error {
	if a.Name == "" {
		return errors.NewValidationError("Name", "attribute name must not be empty")
	}
	if !a.DataType.Valid() {
		return errors.NewValidationError(a.Name, fmt.Sprintf("unknown data type %q", a.DataType))
	}
	if a.Encryptor != nil {
		if err := a.Encryptor.Validate(); err != nil {
			return err
		}
	}
	return nil
}
