/*
Package schema defines the table schema model for TableKit: attributes,
keys, secondary indices, provisioned throughput, and the Table root that
validates them and projects the whole definition into its DynamoDB
wire format.

A schema is built once from static configuration and never mutated:

	id := &schema.Attribute{Name: "id", DataType: schema.DataTypeString}
	ts := &schema.Attribute{Name: "ts", DataType: schema.DataTypeNumber}

	table := &schema.Table{
	    Name: "events",
	    Keys: []schema.Key{
	        {Attribute: id, Type: schema.KeyTypeHash},
	        {Attribute: ts, Type: schema.KeyTypeRange},
	    },
	    Throughput: schema.ProvisionedThroughput{Read: 5, Write: 5},
	}

	ws, err := table.ToWireSchema()

ToWireSchema calls Validate first; a schema that violates any invariant
never produces a wire definition. The GSI and LSI slices of the resulting
WireSchema are nil when no index of that type exists, so a CreateTable
request built from it omits those fields entirely.

Attributes may carry a Serializer (see the serde package) and an Encryptor
configuration governing how values of that attribute are encoded at rest.
*/
package schema
