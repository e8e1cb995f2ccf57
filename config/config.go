/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/tablekit/errors"
	"github.com/suparena/tablekit/registry"
	"github.com/suparena/tablekit/schema"
	"gopkg.in/yaml.v3"
)

// tableFile is the YAML shape of a declarative table definition.
type tableFile struct {
	Name       string          `yaml:"name"`
	Throughput throughputFile  `yaml:"throughput"`
	Attributes []attributeFile `yaml:"attributes"`
	Keys       []keyFile       `yaml:"keys"`
	Indexes    []indexFile     `yaml:"indexes"`
}

type throughputFile struct {
	Read  int64 `yaml:"read"`
	Write int64 `yaml:"write"`
}

type attributeFile struct {
	Name       string          `yaml:"name"`
	Type       string          `yaml:"type"`
	Serializer string          `yaml:"serializer"`
	Encryption *encryptionFile `yaml:"encryption"`
}

type encryptionFile struct {
	Algorithm string `yaml:"algorithm"`
	Key       string `yaml:"key"`
	// KeyEnv names an environment variable holding the key material, so
	// definition files never need to embed secrets.
	KeyEnv string `yaml:"keyEnv"`
}

type keyFile struct {
	Attribute string `yaml:"attribute"`
	Type      string `yaml:"type"`
}

type indexFile struct {
	Name       string    `yaml:"name"`
	Type       string    `yaml:"type"`
	Keys       []keyFile `yaml:"keys"`
	Projection string    `yaml:"projection"`
}

// TableDefinition is the result of parsing a definition file: the validated
// table schema plus every declared attribute, including non-key attributes
// that only govern value encoding.
type TableDefinition struct {
	Table      *schema.Table
	Attributes []*schema.Attribute
}

// Attribute returns the declared attribute with the given name, or nil.
func (d *TableDefinition) Attribute(name string) *schema.Attribute {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// ParseTable builds a validated table definition from YAML. Serializer
// names are resolved through the registry.
func ParseTable(data []byte) (*TableDefinition, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.NewConfigurationError("config", "malformed table definition: "+err.Error())
	}

	attrs := make(map[string]*schema.Attribute, len(file.Attributes))
	for _, af := range file.Attributes {
		a := &schema.Attribute{
			Name:     af.Name,
			DataType: schema.DataType(af.Type),
		}
		if af.Encryption != nil {
			key := af.Encryption.Key
			if af.Encryption.KeyEnv != "" {
				key = os.Getenv(af.Encryption.KeyEnv)
			}
			a.Encryptor = &schema.Encryptor{
				Type: schema.EncryptionType(af.Encryption.Algorithm),
				Key:  key,
			}
		}
		if af.Serializer != "" {
			factory, err := registry.GetSerializerFactory(af.Serializer)
			if err != nil {
				return nil, errors.NewConfigurationError("config", err.Error())
			}
			s, err := factory(a.Encryptor)
			if err != nil {
				return nil, err
			}
			a.Serializer = s
		}
		if _, exists := attrs[a.Name]; exists {
			return nil, errors.NewConfigurationError("config", fmt.Sprintf("duplicate attribute %q", a.Name))
		}
		attrs[a.Name] = a
	}

	resolveKeys := func(kfs []keyFile) ([]schema.Key, error) {
		keys := make([]schema.Key, 0, len(kfs))
		for _, kf := range kfs {
			a, ok := attrs[kf.Attribute]
			if !ok {
				return nil, errors.NewConfigurationError("config",
					fmt.Sprintf("key references undeclared attribute %q", kf.Attribute))
			}
			keys = append(keys, schema.Key{Attribute: a, Type: schema.KeyType(kf.Type)})
		}
		return keys, nil
	}

	table := &schema.Table{
		Name: file.Name,
		Throughput: schema.ProvisionedThroughput{
			Read:  file.Throughput.Read,
			Write: file.Throughput.Write,
		},
	}
	var err error
	if table.Keys, err = resolveKeys(file.Keys); err != nil {
		return nil, err
	}
	for _, idx := range file.Indexes {
		keys, err := resolveKeys(idx.Keys)
		if err != nil {
			return nil, err
		}
		table.Indices = append(table.Indices, schema.Index{
			Name:       idx.Name,
			Keys:       keys,
			Type:       schema.IndexType(idx.Type),
			Projection: types.ProjectionType(idx.Projection),
		})
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	def := &TableDefinition{Table: table}
	for _, af := range file.Attributes {
		def.Attributes = append(def.Attributes, attrs[af.Name])
	}
	return def, nil
}

// LoadTable reads and parses a table definition file.
func LoadTable(path string) (*TableDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigurationError("config", "read table definition: "+err.Error())
	}
	return ParseTable(data)
}
