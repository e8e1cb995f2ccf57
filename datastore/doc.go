/*
Package datastore defines the provider facade contract consumed by the
TableKit core.

The main interface is Provider, a narrow view of a wide-column store:

	type Provider interface {
	    Start(ctx context.Context) error
	    Dispose(ctx context.Context) error
	    ScanChunk(ctx context.Context, s *scan.Scan, cursor scan.Cursor) (*scan.Chunk, error)
	    CreateTable(ctx context.Context, table *schema.Table) error
	    PutRecord(ctx context.Context, table string, item scan.Record) error
	    GetRecord(ctx context.Context, table string, key scan.Record) (scan.Record, error)
	    DeleteRecord(ctx context.Context, table string, key scan.Record) error
	}

Implementations:
  - ddb: DynamoDB implementation

Providers report failures; they never silently drop data. Retry and backoff
policy is deliberately left to callers.
*/
package datastore
