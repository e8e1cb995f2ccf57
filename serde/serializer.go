/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serde

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/tablekit/errors"
)

// StringSerializer maps a string to a string-tagged record and back,
// unchanged.
type StringSerializer struct{}

func (StringSerializer) Serialize(v any) (types.AttributeValue, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.NewSerializationError("serialize", fmt.Errorf("expected string, got %T", v))
	}
	return &types.AttributeValueMemberS{Value: s}, nil
}

func (StringSerializer) Deserialize(av types.AttributeValue) (any, error) {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.NewSerializationError("deserialize", fmt.Errorf("expected string-tagged record, got %T", av))
	}
	return s.Value, nil
}

// JSONSerializer maps a domain object to its JSON text, tagged as string.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(v any) (types.AttributeValue, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.NewSerializationError("json encode", err)
	}
	return &types.AttributeValueMemberS{Value: string(data)}, nil
}

func (JSONSerializer) Deserialize(av types.AttributeValue) (any, error) {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.NewSerializationError("deserialize", fmt.Errorf("expected string-tagged record, got %T", av))
	}
	var v any
	if err := json.Unmarshal([]byte(s.Value), &v); err != nil {
		return nil, errors.NewSerializationError("json decode", err)
	}
	return v, nil
}
