/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablekit

import (
	"context"
	"io"
	"log/slog"

	"github.com/suparena/tablekit/config"
	"github.com/suparena/tablekit/datastore"
	"github.com/suparena/tablekit/errors"
	"github.com/suparena/tablekit/scan"
	"github.com/suparena/tablekit/schema"
	"github.com/suparena/tablekit/serde"
)

// Client binds a table schema, its serialization codec, and a storage
// provider into type-safe operations on entities of type T.
type Client[T any] struct {
	provider datastore.Provider
	table    *schema.Table
	codec    *serde.Codec
	logger   *slog.Logger
}

// NewClient builds a client for entities of type T stored in the given
// table. attrs lists every attribute that carries a serializer pipeline;
// key attributes without one may be omitted. The logger may be nil.
func NewClient[T any](provider datastore.Provider, table *schema.Table, attrs []*schema.Attribute, logger *slog.Logger) (*Client[T], error) {
	if provider == nil {
		return nil, errors.NewConfigurationError("client", "provider is required")
	}
	if table == nil {
		return nil, errors.NewConfigurationError("client", "table schema is required")
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	codec, err := serde.NewCodec(attrs...)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client[T]{
		provider: provider,
		table:    table,
		codec:    codec,
		logger:   logger,
	}, nil
}

// NewClientFromDefinition builds a client from a parsed YAML table
// definition, carrying over every declared attribute.
func NewClientFromDefinition[T any](provider datastore.Provider, def *config.TableDefinition, logger *slog.Logger) (*Client[T], error) {
	if def == nil {
		return nil, errors.NewConfigurationError("client", "table definition is required")
	}
	return NewClient[T](provider, def.Table, def.Attributes, logger)
}

// Table returns the schema the client operates on.
func (c *Client[T]) Table() *schema.Table { return c.table }

// CreateTable provisions the client's table through the provider.
func (c *Client[T]) CreateTable(ctx context.Context) error {
	return c.provider.CreateTable(ctx, c.table)
}

// Put stores one entity, routing serializer-governed attributes through
// their pipelines.
func (c *Client[T]) Put(ctx context.Context, entity T) error {
	item, err := c.codec.EncodeEntity(entity)
	if err != nil {
		return err
	}
	return c.provider.PutRecord(ctx, c.table.Name, item)
}

// Get fetches one entity by its key fields. A missing item returns
// (nil, nil).
func (c *Client[T]) Get(ctx context.Context, key map[string]any) (*T, error) {
	wireKey, err := c.codec.EncodeFields(key)
	if err != nil {
		return nil, err
	}
	item, err := c.provider.GetRecord(ctx, c.table.Name, wireKey)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	out := new(T)
	if err := c.codec.DecodeEntity(item, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one entity by its key fields.
func (c *Client[T]) Delete(ctx context.Context, key map[string]any) error {
	wireKey, err := c.codec.EncodeFields(key)
	if err != nil {
		return err
	}
	return c.provider.DeleteRecord(ctx, c.table.Name, wireKey)
}

// Decode converts a raw scanned record into an entity, reversing any
// serializer pipelines. Pair it with Scan, whose consumer receives raw
// records.
func (c *Client[T]) Decode(item scan.Record) (*T, error) {
	out := new(T)
	if err := c.codec.DecodeEntity(item, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Scan builds a stream reader over the client's table. The reader is
// returned idle; call Pull to start fetching.
func (c *Client[T]) Scan(consumer scan.Consumer, opts ...scan.Option) *scan.StreamReader {
	s := scan.New(c.table.Name, opts...)
	return scan.NewStreamReader(c.provider, s, consumer, c.logger)
}
