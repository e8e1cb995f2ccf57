/*
Package tablekit provides a schema-driven storage toolkit for DynamoDB-style
tables: a validated table schema model, layered attribute serialization with
optional compression and encryption, and backpressure-aware scan streaming.

The library is organized around three concerns:

  - Schema: declare a table's attributes, keys, indices, and throughput as
    plain Go values (package schema) or load them from a YAML definition
    file (package config). A validated schema projects into the wire format
    understood by the provider.
  - Serialization: bind a serializer pipeline to an attribute by registry
    name. Pipelines layer JSON encoding, gzip compression, and AES-GCM
    encryption; records pass through the codec on the way in and out
    (package serde).
  - Streaming: scan a table as a pull-based sequence of result batches with
    consumer backpressure (package scan).

Basic usage:

	provider, _ := ddb.NewProvider(ctx, cfg, logger)
	_ = provider.Start(ctx)
	defer provider.Dispose(ctx)

	def, _ := config.LoadTable("measurements.yaml")
	client, _ := tablekit.NewClientFromDefinition[Measurement](provider, def, logger)

	_ = client.CreateTable(ctx)
	_ = client.Put(ctx, m)
	got, _ := client.Get(ctx, map[string]any{"id": m.ID, "ts": m.Ts})

Clients for multiple entity types are managed through a MultiTypeSet:

	mts := tablekit.NewMultiTypeSet()
	_ = tablekit.RegisterClient(mts, "measurements", client)
	c, _ := tablekit.GetClient[Measurement](mts, "measurements")

For more information, see the documentation at https://github.com/suparena/tablekit
*/
package tablekit
