/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/tablekit/errors"
)

// Table is the root of the schema model. It is constructed once from static
// configuration, validated on demand, and projected into an immutable
// wire-format snapshot; it is never mutated after construction.
type Table struct {
	Name       string
	Keys       []Key
	Indices    []Index
	Throughput ProvisionedThroughput
}

// Attribute returns the declared attribute with the given name, searching
// table keys first and then index keys. Returns nil if no key references it.
func (t *Table) Attribute(name string) *Attribute {
	for i := range t.Keys {
		if a := t.Keys[i].Attribute; a != nil && a.Name == name {
			return a
		}
	}
	for i := range t.Indices {
		for j := range t.Indices[i].Keys {
			if a := t.Indices[i].Keys[j].Attribute; a != nil && a.Name == name {
				return a
			}
		}
	}
	return nil
}

// Validate checks the table invariants in order and fails with a validation
// error naming the first violation:
//
//  1. the table name is non-empty
//  2. the key set is non-empty
//  3. exactly one key has type HASH
//  4. key attribute names are unique within the table
//  5. index names are unique within the table
//  6. every key and every index independently validates
//  7. the provisioned throughput validates
func (t *Table) Validate() error {
	if t.Name == "" {
		return errors.NewValidationError("Name", "table name must not be empty")
	}
	if len(t.Keys) == 0 {
		return errors.NewValidationError(t.Name, "table must have at least one key")
	}
	hashKeys := 0
	for i := range t.Keys {
		if t.Keys[i].Type == KeyTypeHash {
			hashKeys++
		}
	}
	if hashKeys != 1 {
		return errors.NewValidationError(t.Name,
			fmt.Sprintf("table must have exactly one HASH key, found %d", hashKeys))
	}
	seenAttrs := make(map[string]bool, len(t.Keys))
	for i := range t.Keys {
		if a := t.Keys[i].Attribute; a != nil {
			if seenAttrs[a.Name] {
				return errors.NewValidationError(a.Name, "duplicate key attribute name")
			}
			seenAttrs[a.Name] = true
		}
	}
	seenIndices := make(map[string]bool, len(t.Indices))
	for i := range t.Indices {
		if seenIndices[t.Indices[i].Name] {
			return errors.NewValidationError(t.Indices[i].Name, "duplicate index name")
		}
		seenIndices[t.Indices[i].Name] = true
	}
	for i := range t.Keys {
		if err := t.Keys[i].Validate(); err != nil {
			return err
		}
	}
	for i := range t.Indices {
		if err := t.Indices[i].Validate(); err != nil {
			return err
		}
	}
	if err := t.Throughput.Validate(); err != nil {
		return err
	}
	return nil
}

// WireSchema is the immutable wire-format projection of a Table. The two
// index slices are nil, not empty, when no index of that type exists;
// callers distinguish "no GSIs" from "empty GSI list" by field absence.
type WireSchema struct {
	TableName              string
	AttributeDefinitions   []types.AttributeDefinition
	KeySchema              []types.KeySchemaElement
	Throughput             *types.ProvisionedThroughput
	GlobalSecondaryIndexes []types.GlobalSecondaryIndex
	LocalSecondaryIndexes  []types.LocalSecondaryIndex
}

// CreateTableInput converts the wire schema into a DynamoDB CreateTable
// request. Nil index slices stay absent from the request.
func (w *WireSchema) CreateTableInput() *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:              aws.String(w.TableName),
		AttributeDefinitions:   w.AttributeDefinitions,
		KeySchema:              w.KeySchema,
		ProvisionedThroughput:  w.Throughput,
		GlobalSecondaryIndexes: w.GlobalSecondaryIndexes,
		LocalSecondaryIndexes:  w.LocalSecondaryIndexes,
	}
}

// ToWireSchema validates the table and projects it into its wire-format
// definition. Attribute definitions cover every attribute referenced by the
// table keys or an index key schema, deduplicated by name.
func (t *Table) ToWireSchema() (*WireSchema, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	ws := &WireSchema{
		TableName: t.Name,
		KeySchema: keySchemaElements(t.Keys),
		Throughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(t.Throughput.Read),
			WriteCapacityUnits: aws.Int64(t.Throughput.Write),
		},
	}

	defined := make(map[string]bool)
	addDefinition := func(a *Attribute) {
		if defined[a.Name] {
			return
		}
		defined[a.Name] = true
		ws.AttributeDefinitions = append(ws.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(a.Name),
			AttributeType: a.DataType.ScalarAttributeType(),
		})
	}
	for i := range t.Keys {
		addDefinition(t.Keys[i].Attribute)
	}
	for i := range t.Indices {
		for j := range t.Indices[i].Keys {
			addDefinition(t.Indices[i].Keys[j].Attribute)
		}
	}

	for i := range t.Indices {
		idx := &t.Indices[i]
		switch idx.Type {
		case IndexTypeGlobalSecondary:
			ws.GlobalSecondaryIndexes = append(ws.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
				IndexName:  aws.String(idx.Name),
				KeySchema:  keySchemaElements(idx.Keys),
				Projection: idx.projection(),
				ProvisionedThroughput: &types.ProvisionedThroughput{
					ReadCapacityUnits:  aws.Int64(t.Throughput.Read),
					WriteCapacityUnits: aws.Int64(t.Throughput.Write),
				},
			})
		case IndexTypeLocalSecondary:
			ws.LocalSecondaryIndexes = append(ws.LocalSecondaryIndexes, types.LocalSecondaryIndex{
				IndexName:  aws.String(idx.Name),
				KeySchema:  keySchemaElements(idx.Keys),
				Projection: idx.projection(),
			})
		}
	}

	return ws, nil
}

// keySchemaElements emits the key schema with the HASH key first, then the
// remaining keys in declaration order.
func keySchemaElements(keys []Key) []types.KeySchemaElement {
	elems := make([]types.KeySchemaElement, 0, len(keys))
	for i := range keys {
		if keys[i].Type == KeyTypeHash {
			elems = append(elems, types.KeySchemaElement{
				AttributeName: aws.String(keys[i].Attribute.Name),
				KeyType:       types.KeyTypeHash,
			})
		}
	}
	for i := range keys {
		if keys[i].Type != KeyTypeHash {
			elems = append(elems, types.KeySchemaElement{
				AttributeName: aws.String(keys[i].Attribute.Name),
				KeyType:       types.KeyTypeRange,
			})
		}
	}
	return elems
}
