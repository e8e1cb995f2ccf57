/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serde

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/tablekit/errors"
	"github.com/suparena/tablekit/schema"
)

// Codec encodes and decodes whole records against a set of attribute
// definitions. Attributes carrying a serializer go through their configured
// pipeline; everything else falls back to plain attributevalue marshaling.
type Codec struct {
	attrs map[string]*schema.Attribute
}

// NewCodec builds a codec over the given attributes. Each attribute must
// validate, and names must be unique.
func NewCodec(attrs ...*schema.Attribute) (*Codec, error) {
	m := make(map[string]*schema.Attribute, len(attrs))
	for _, a := range attrs {
		if a == nil {
			continue
		}
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, exists := m[a.Name]; exists {
			return nil, errors.NewConfigurationError("codec", fmt.Sprintf("duplicate attribute %q", a.Name))
		}
		m[a.Name] = a
	}
	return &Codec{attrs: m}, nil
}

// EncodeFields converts a map of domain values into a wire record map.
func (c *Codec) EncodeFields(fields map[string]any) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(fields))
	for name, value := range fields {
		if a, ok := c.attrs[name]; ok && a.Serializer != nil {
			av, err := a.Serializer.Serialize(value)
			if err != nil {
				return nil, err
			}
			item[name] = av
			continue
		}
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, errors.NewSerializationError("marshal "+name, err)
		}
		item[name] = av
	}
	return item, nil
}

// DecodeFields converts a wire record map back into domain values.
func (c *Codec) DecodeFields(item map[string]types.AttributeValue) (map[string]any, error) {
	fields := make(map[string]any, len(item))
	for name, av := range item {
		if a, ok := c.attrs[name]; ok && a.Serializer != nil {
			v, err := a.Serializer.Deserialize(av)
			if err != nil {
				return nil, err
			}
			fields[name] = v
			continue
		}
		var v any
		if err := attributevalue.Unmarshal(av, &v); err != nil {
			return nil, errors.NewSerializationError("unmarshal "+name, err)
		}
		fields[name] = v
	}
	return fields, nil
}

// EncodeEntity marshals an entity struct and reroutes serializer-governed
// attributes through their pipelines.
func (c *Codec) EncodeEntity(entity any) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return nil, errors.NewSerializationError("marshal entity", err)
	}
	for name, a := range c.attrs {
		if a.Serializer == nil {
			continue
		}
		av, ok := item[name]
		if !ok {
			continue
		}
		var v any
		if err := attributevalue.Unmarshal(av, &v); err != nil {
			return nil, errors.NewSerializationError("unmarshal "+name, err)
		}
		encoded, err := a.Serializer.Serialize(v)
		if err != nil {
			return nil, err
		}
		item[name] = encoded
	}
	return item, nil
}

// DecodeEntity reverses serializer-governed attributes in a wire record,
// then unmarshals the whole record into out.
func (c *Codec) DecodeEntity(item map[string]types.AttributeValue, out any) error {
	decoded := make(map[string]types.AttributeValue, len(item))
	for name, av := range item {
		a, ok := c.attrs[name]
		if !ok || a.Serializer == nil {
			decoded[name] = av
			continue
		}
		v, err := a.Serializer.Deserialize(av)
		if err != nil {
			return err
		}
		plain, err := attributevalue.Marshal(v)
		if err != nil {
			return errors.NewSerializationError("marshal "+name, err)
		}
		decoded[name] = plain
	}
	if err := attributevalue.UnmarshalMap(decoded, out); err != nil {
		return errors.NewSerializationError("unmarshal entity", err)
	}
	return nil
}
