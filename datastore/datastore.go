/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/tablekit/scan"
	"github.com/suparena/tablekit/schema"
)

// Provider is the narrow contract the core consumes from a storage backend:
// a scoped start/dispose lifecycle plus a handful of named operations.
// Start is called once before first use; Dispose releases the provider
// exactly once regardless of the success or failure of any operation in
// between.
type Provider interface {
	Start(ctx context.Context) error

	Dispose(ctx context.Context) error

	// ScanChunk fetches one page of a scan. The cursor is nil on the first
	// call; a nil cursor in the returned chunk signals the last page.
	ScanChunk(ctx context.Context, s *scan.Scan, cursor scan.Cursor) (*scan.Chunk, error)

	// CreateTable provisions a table from its validated wire schema.
	CreateTable(ctx context.Context, table *schema.Table) error

	PutRecord(ctx context.Context, table string, item scan.Record) error

	GetRecord(ctx context.Context, table string, key scan.Record) (scan.Record, error)

	DeleteRecord(ctx context.Context, table string, key scan.Record) error
}
