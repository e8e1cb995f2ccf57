/*
Package ddb provides the DynamoDB implementation of the datastore.Provider
facade.

The provider wraps a narrowed DynamoDB client interface and adds:

  - A scoped start/dispose lifecycle: Start is required once before first
    use, Dispose releases the provider exactly once, and every operation on
    a provider outside that window fails with a configuration error.
  - Scan pagination: ScanChunk maps a scan descriptor onto a DynamoDB Scan
    request and threads the ExclusiveStartKey/LastEvaluatedKey continuation
    token through unchanged.
  - Table provisioning: CreateTable projects a schema.Table into its wire
    schema and issues the CreateTable request, with the configured
    table-name prefix applied.

Configuration comes from the environment:

	_ = godotenv.Load()
	cfg, err := ddb.ConfigFromEnv()
	provider, err := ddb.NewProvider(ctx, cfg, logger)

The provider performs no retries; transient failures surface as provider
errors and retry policy stays with the caller.
*/
package ddb
