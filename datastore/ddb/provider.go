/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/suparena/tablekit/errors"
	"github.com/suparena/tablekit/scan"
	"github.com/suparena/tablekit/schema"
)

// DynamoDBAPI is the slice of the DynamoDB client the provider uses.
// Narrowing the dependency keeps the provider testable without a live
// endpoint.
type DynamoDBAPI interface {
	Scan(ctx context.Context, params *sdk.ScanInput, optFns ...func(*sdk.Options)) (*sdk.ScanOutput, error)
	CreateTable(ctx context.Context, params *sdk.CreateTableInput, optFns ...func(*sdk.Options)) (*sdk.CreateTableOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// Provider implements datastore.Provider on top of AWS DynamoDB.
type Provider struct {
	client DynamoDBAPI
	cfg    Config
	logger *slog.Logger

	mu       sync.Mutex
	started  bool
	disposed bool
}

// NewProvider builds a provider with its own DynamoDB client from the given
// configuration. The logger may be nil.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.NewConfigurationError("ddb", "failed to load AWS configuration: "+err.Error())
	}

	return NewProviderWithClient(sdk.NewFromConfig(awsCfg), cfg, logger)
}

// NewProviderWithClient builds a provider around an existing client.
func NewProviderWithClient(client DynamoDBAPI, cfg Config, logger *slog.Logger) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Provider{client: client, cfg: cfg, logger: logger}, nil
}

// Start acquires the provider. It must be called once before first use;
// starting twice or starting a disposed provider is a configuration error.
func (p *Provider) Start(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return errors.NewConfigurationError("ddb", "provider already disposed")
	}
	if p.started {
		return errors.NewConfigurationError("ddb", "provider already started")
	}
	p.started = true
	p.logger.Info("dynamodb provider started", "region", p.cfg.Region, "prefix", p.cfg.TablePrefix)
	return nil
}

// Dispose releases the provider. The release happens exactly once; further
// calls are no-ops.
func (p *Provider) Dispose(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return nil
	}
	p.disposed = true
	p.logger.Info("dynamodb provider disposed")
	return nil
}

// ready reports whether operations are allowed in the current lifecycle
// state.
func (p *Provider) ready() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disposed {
		return errors.NewConfigurationError("ddb", "provider already disposed")
	}
	if !p.started {
		return errors.NewConfigurationError("ddb", "provider not started")
	}
	return nil
}

// tableName applies the configured table-name prefix.
func (p *Provider) tableName(name string) string {
	return p.cfg.TablePrefix + name
}

// ScanChunk fetches one page of a scan. The returned chunk carries the
// provider's continuation token as-is; a nil token means the last page.
func (p *Provider) ScanChunk(ctx context.Context, s *scan.Scan, cursor scan.Cursor) (*scan.Chunk, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}

	input := &sdk.ScanInput{
		TableName:                 aws.String(p.tableName(s.TableName())),
		IndexName:                 s.IndexName(),
		FilterExpression:          s.FilterExpression(),
		ExpressionAttributeValues: s.ExpressionAttributeValues(),
		Limit:                     s.PageSize(),
	}
	if len(cursor) > 0 {
		input.ExclusiveStartKey = cursor
	}

	out, err := p.client.Scan(ctx, input)
	if err != nil {
		return nil, errors.NewProviderError("Scan", err)
	}

	chunk := &scan.Chunk{Items: make([]scan.Record, 0, len(out.Items))}
	for _, item := range out.Items {
		chunk.Items = append(chunk.Items, item)
	}
	if len(out.LastEvaluatedKey) > 0 {
		chunk.NextCursor = out.LastEvaluatedKey
	}
	return chunk, nil
}

// CreateTable provisions the table from its wire schema. Validation errors
// surface before any request is made.
func (p *Provider) CreateTable(ctx context.Context, table *schema.Table) error {
	if err := p.ready(); err != nil {
		return err
	}

	ws, err := table.ToWireSchema()
	if err != nil {
		return err
	}
	input := ws.CreateTableInput()
	input.TableName = aws.String(p.tableName(*input.TableName))

	if _, err := p.client.CreateTable(ctx, input); err != nil {
		return errors.NewProviderError("CreateTable", err)
	}
	p.logger.Info("table created", "table", *input.TableName)
	return nil
}

// PutRecord stores one wire record.
func (p *Provider) PutRecord(ctx context.Context, table string, item scan.Record) error {
	if err := p.ready(); err != nil {
		return err
	}
	_, err := p.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(p.tableName(table)),
		Item:      item,
	})
	if err != nil {
		return errors.NewProviderError("PutItem", err)
	}
	return nil
}

// GetRecord fetches one wire record, or nil when no item matches the key.
func (p *Provider) GetRecord(ctx context.Context, table string, key scan.Record) (scan.Record, error) {
	if err := p.ready(); err != nil {
		return nil, err
	}
	out, err := p.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(p.tableName(table)),
		Key:       key,
	})
	if err != nil {
		return nil, errors.NewProviderError("GetItem", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return out.Item, nil
}

// DeleteRecord removes one wire record by key.
func (p *Provider) DeleteRecord(ctx context.Context, table string, key scan.Record) error {
	if err := p.ready(); err != nil {
		return err
	}
	_, err := p.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: aws.String(p.tableName(table)),
		Key:       key,
	})
	if err != nil {
		return errors.NewProviderError("DeleteItem", err)
	}
	return nil
}
