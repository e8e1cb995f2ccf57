/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DataType enumerates the primitive wire types an attribute can carry.
// The values double as the single-key tags on attribute value records.
type DataType string

const (
	DataTypeString  DataType = "S"
	DataTypeNumber  DataType = "N"
	DataTypeBinary  DataType = "B"
	DataTypeBoolean DataType = "BOOL"
)

// Valid reports whether d is one of the declared data types.
func (d DataType) Valid() bool {
	switch d {
	case DataTypeString, DataTypeNumber, DataTypeBinary, DataTypeBoolean:
		return true
	}
	return false
}

// Keyable reports whether d may appear in a key schema. DynamoDB only
// permits scalar S/N/B attributes as key components.
func (d DataType) Keyable() bool {
	switch d {
	case DataTypeString, DataTypeNumber, DataTypeBinary:
		return true
	}
	return false
}

// ScalarAttributeType maps d onto the wire-format attribute definition type.
func (d DataType) ScalarAttributeType() types.ScalarAttributeType {
	return types.ScalarAttributeType(d)
}

// KeyType enumerates the roles a key attribute can play in a key schema.
type KeyType string

const (
	KeyTypeHash  KeyType = "HASH"
	KeyTypeRange KeyType = "RANGE"
)

// Valid reports whether k is a declared key type.
func (k KeyType) Valid() bool {
	return k == KeyTypeHash || k == KeyTypeRange
}

// IndexType enumerates the supported secondary index flavors.
type IndexType string

const (
	IndexTypeGlobalSecondary IndexType = "GLOBAL_SECONDARY"
	IndexTypeLocalSecondary  IndexType = "LOCAL_SECONDARY"
)

// Valid reports whether i is a declared index type.
func (i IndexType) Valid() bool {
	return i == IndexTypeGlobalSecondary || i == IndexTypeLocalSecondary
}

// EncryptionType enumerates the supported symmetric algorithms, keyed by
// AES key length.
type EncryptionType string

const (
	EncryptionTypeAES128 EncryptionType = "AES128"
	EncryptionTypeAES192 EncryptionType = "AES192"
	EncryptionTypeAES256 EncryptionType = "AES256"
)

// Valid reports whether e is a declared encryption type.
func (e EncryptionType) Valid() bool {
	switch e {
	case EncryptionTypeAES128, EncryptionTypeAES192, EncryptionTypeAES256:
		return true
	}
	return false
}

// KeySize returns the required key length in bytes, or 0 for an unknown type.
func (e EncryptionType) KeySize() int {
	switch e {
	case EncryptionTypeAES128:
		return 16
	case EncryptionTypeAES192:
		return 24
	case EncryptionTypeAES256:
		return 32
	}
	return 0
}
