/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serde

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/klauspost/compress/gzip"
	"github.com/suparena/tablekit/errors"
	"github.com/suparena/tablekit/schema"
)

// stage is one reversible byte transform. decode must be the byte-exact
// inverse of encode.
type stage struct {
	name   string
	encode func([]byte) ([]byte, error)
	decode func([]byte) ([]byte, error)
}

// pipeline applies its stages in declaration order on the encode path and
// in reverse order on the decode path. Layering order is therefore
// identical on both paths regardless of how many stages are stacked.
type pipeline []stage

func (p pipeline) run(data []byte) ([]byte, error) {
	var err error
	for _, st := range p {
		data, err = st.encode(data)
		if err != nil {
			return nil, errors.NewSerializationError(st.name, err)
		}
	}
	return data, nil
}

func (p pipeline) reverse(data []byte) ([]byte, error) {
	var err error
	for i := len(p) - 1; i >= 0; i-- {
		data, err = p[i].decode(data)
		if err != nil {
			return nil, errors.NewSerializationError("un"+p[i].name, err)
		}
	}
	return data, nil
}

func compressStage() stage {
	return stage{
		name: "compress",
		encode: func(data []byte) ([]byte, error) {
			var buf bytes.Buffer
			zw := gzip.NewWriter(&buf)
			if _, err := zw.Write(data); err != nil {
				return nil, err
			}
			if err := zw.Close(); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
		decode: func(data []byte) ([]byte, error) {
			zr, err := gzip.NewReader(bytes.NewReader(data))
			if err != nil {
				return nil, err
			}
			out, err := io.ReadAll(zr)
			if err != nil {
				return nil, err
			}
			if err := zr.Close(); err != nil {
				return nil, err
			}
			return out, nil
		},
	}
}

func encryptStage(enc *schema.Encryptor) stage {
	return stage{
		name:   "encrypt",
		encode: func(data []byte) ([]byte, error) { return seal(enc, data) },
		decode: func(data []byte) ([]byte, error) { return open(enc, data) },
	}
}

// CompressedJSONSerializer JSON-encodes the object, compresses the byte
// sequence, and tags the result as binary. Decoding decompresses, then
// JSON-parses.
type CompressedJSONSerializer struct {
	stages pipeline
}

// NewCompressedJSONSerializer constructs the compressed JSON pipeline.
func NewCompressedJSONSerializer() *CompressedJSONSerializer {
	return &CompressedJSONSerializer{stages: pipeline{compressStage()}}
}

func (c *CompressedJSONSerializer) Serialize(v any) (types.AttributeValue, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.NewSerializationError("json encode", err)
	}
	out, err := c.stages.run(data)
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberB{Value: out}, nil
}

func (c *CompressedJSONSerializer) Deserialize(av types.AttributeValue) (any, error) {
	b, ok := av.(*types.AttributeValueMemberB)
	if !ok {
		return nil, errors.NewSerializationError("deserialize", fmt.Errorf("expected binary-tagged record, got %T", av))
	}
	data, err := c.stages.reverse(b.Value)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.NewSerializationError("json decode", err)
	}
	return v, nil
}

// EncryptedJSONSerializer extends the compressed pipeline: after
// compression the byte sequence is encrypted with the attribute's
// configured encryptor. Decoding decrypts, decompresses, then parses.
type EncryptedJSONSerializer struct {
	stages pipeline
}

// NewEncryptedJSONSerializer constructs the encrypted JSON pipeline.
// A nil or invalid encryptor is a configuration error.
func NewEncryptedJSONSerializer(enc *schema.Encryptor) (*EncryptedJSONSerializer, error) {
	if enc == nil {
		return nil, errors.NewConfigurationError("serde", "attribute has no encryptor")
	}
	if err := enc.Validate(); err != nil {
		return nil, err
	}
	return &EncryptedJSONSerializer{
		stages: pipeline{compressStage(), encryptStage(enc)},
	}, nil
}

func (e *EncryptedJSONSerializer) Serialize(v any) (types.AttributeValue, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.NewSerializationError("json encode", err)
	}
	out, err := e.stages.run(data)
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberB{Value: out}, nil
}

func (e *EncryptedJSONSerializer) Deserialize(av types.AttributeValue) (any, error) {
	b, ok := av.(*types.AttributeValueMemberB)
	if !ok {
		return nil, errors.NewSerializationError("deserialize", fmt.Errorf("expected binary-tagged record, got %T", av))
	}
	data, err := e.stages.reverse(b.Value)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.NewSerializationError("json decode", err)
	}
	return v, nil
}

// EncryptedStringSerializer encrypts the raw string directly, with no JSON
// encoding and no compression, and tags the result as binary. Decoding
// decrypts and returns the string unchanged.
type EncryptedStringSerializer struct {
	stages pipeline
}

// NewEncryptedStringSerializer constructs the encrypted string pipeline.
// A nil or invalid encryptor is a configuration error.
func NewEncryptedStringSerializer(enc *schema.Encryptor) (*EncryptedStringSerializer, error) {
	if enc == nil {
		return nil, errors.NewConfigurationError("serde", "attribute has no encryptor")
	}
	if err := enc.Validate(); err != nil {
		return nil, err
	}
	return &EncryptedStringSerializer{stages: pipeline{encryptStage(enc)}}, nil
}

func (e *EncryptedStringSerializer) Serialize(v any) (types.AttributeValue, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.NewSerializationError("serialize", fmt.Errorf("expected string, got %T", v))
	}
	out, err := e.stages.run([]byte(s))
	if err != nil {
		return nil, err
	}
	return &types.AttributeValueMemberB{Value: out}, nil
}

func (e *EncryptedStringSerializer) Deserialize(av types.AttributeValue) (any, error) {
	b, ok := av.(*types.AttributeValueMemberB)
	if !ok {
		return nil, errors.NewSerializationError("deserialize", fmt.Errorf("expected binary-tagged record, got %T", av))
	}
	data, err := e.stages.reverse(b.Value)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
