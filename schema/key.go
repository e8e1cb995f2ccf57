/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/tablekit/errors"
)

// Key binds an attribute to a role in a key schema. It references the
// attribute; it does not own it.
type Key struct {
	Attribute *Attribute
	Type      KeyType
}

// Validate checks the key and the attribute it references.
func (k *Key) Validate() error {
	if k.Attribute == nil {
		return errors.NewValidationError("Attribute", "key must reference an attribute")
	}
	if err := k.Attribute.Validate(); err != nil {
		return err
	}
	if !k.Type.Valid() {
		return errors.NewValidationError(k.Attribute.Name, fmt.Sprintf("unknown key type %q", k.Type))
	}
	if !k.Attribute.DataType.Keyable() {
		return errors.NewValidationError(k.Attribute.Name,
			fmt.Sprintf("data type %q cannot be used as a key", k.Attribute.DataType))
	}
	return nil
}

// Index describes a secondary index: an alternate query path over the table
// with its own ordered key schema.
type Index struct {
	Name       string
	Keys       []Key
	Type       IndexType
	Projection types.ProjectionType
}

// Validate checks the index definition and every key it carries.
func (i *Index) Validate() error {
	if i.Name == "" {
		return errors.NewValidationError("Name", "index name must not be empty")
	}
	if len(i.Keys) == 0 {
		return errors.NewValidationError(i.Name, "index must have at least one key")
	}
	hashKeys := 0
	for idx := range i.Keys {
		if err := i.Keys[idx].Validate(); err != nil {
			return err
		}
		if i.Keys[idx].Type == KeyTypeHash {
			hashKeys++
		}
	}
	if hashKeys != 1 {
		return errors.NewValidationError(i.Name,
			fmt.Sprintf("index must have exactly one HASH key, found %d", hashKeys))
	}
	if !i.Type.Valid() {
		return errors.NewValidationError(i.Name, fmt.Sprintf("unknown index type %q", i.Type))
	}
	return nil
}

// projection returns the configured projection, defaulting to ALL.
func (i *Index) projection() *types.Projection {
	pt := i.Projection
	if pt == "" {
		pt = types.ProjectionTypeAll
	}
	return &types.Projection{ProjectionType: pt}
}

// ProvisionedThroughput declares read and write capacity for a table.
// Both values must be positive.
type ProvisionedThroughput struct {
	Read  int64
	Write int64
}

// Validate checks that both capacity values are positive.
func (p *ProvisionedThroughput) Validate() error {
	if p.Read <= 0 {
		return errors.NewValidationError("Read", fmt.Sprintf("read capacity must be positive, got %d", p.Read))
	}
	if p.Write <= 0 {
		return errors.NewValidationError("Write", fmt.Sprintf("write capacity must be positive, got %d", p.Write))
	}
	return nil
}
