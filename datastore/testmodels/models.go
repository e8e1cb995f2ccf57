/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package testmodels

import (
	"github.com/go-openapi/strfmt"
	"github.com/suparena/tablekit/schema"
)

// Measurement is a sensor reading keyed by sensor id and timestamp.
type Measurement struct {
	ID       string           `dynamodbav:"id" json:"id"`
	Ts       int64            `dynamodbav:"ts" json:"ts"`
	Site     string           `dynamodbav:"site" json:"site"`
	Payload  map[string]any   `dynamodbav:"payload,omitempty" json:"payload,omitempty"`
	Recorded *strfmt.DateTime `dynamodbav:"recorded,omitempty" json:"recorded,omitempty"`
}

// Site is a physical location measurements are reported from.
type Site struct {
	Name     string  `dynamodbav:"site" json:"site"`
	Region   string  `dynamodbav:"region" json:"region"`
	Lat      float64 `dynamodbav:"lat" json:"lat"`
	Lon      float64 `dynamodbav:"lon" json:"lon"`
	Decommed bool    `dynamodbav:"decommed" json:"decommed"`
}

// MeasurementsTable returns the schema used by the Measurement model: hash
// key on the sensor id, range key on the timestamp, and a global secondary
// index for lookups by site.
func MeasurementsTable() *schema.Table {
	id := &schema.Attribute{Name: "id", DataType: schema.DataTypeString}
	ts := &schema.Attribute{Name: "ts", DataType: schema.DataTypeNumber}
	site := &schema.Attribute{Name: "site", DataType: schema.DataTypeString}

	return &schema.Table{
		Name: "measurements",
		Keys: []schema.Key{
			{Attribute: id, Type: schema.KeyTypeHash},
			{Attribute: ts, Type: schema.KeyTypeRange},
		},
		Indices: []schema.Index{
			{
				Name: "by-site",
				Type: schema.IndexTypeGlobalSecondary,
				Keys: []schema.Key{
					{Attribute: site, Type: schema.KeyTypeHash},
					{Attribute: ts, Type: schema.KeyTypeRange},
				},
			},
		},
		Throughput: schema.ProvisionedThroughput{Read: 5, Write: 5},
	}
}

// SitesTable returns the single-key schema used by the Site model.
func SitesTable() *schema.Table {
	name := &schema.Attribute{Name: "site", DataType: schema.DataTypeString}
	return &schema.Table{
		Name: "sites",
		Keys: []schema.Key{
			{Attribute: name, Type: schema.KeyTypeHash},
		},
		Throughput: schema.ProvisionedThroughput{Read: 1, Write: 1},
	}
}
