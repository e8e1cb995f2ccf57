/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"testing"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/tablekit/errors"
	"github.com/suparena/tablekit/scan"
	"github.com/suparena/tablekit/schema"
)

// fakeClient records requests and plays back scripted responses.
type fakeClient struct {
	scanInputs   []*sdk.ScanInput
	scanOutputs  []*sdk.ScanOutput
	scanErr      error
	createInputs []*sdk.CreateTableInput
	putInputs    []*sdk.PutItemInput
	getOutput    *sdk.GetItemOutput
	deleteInputs []*sdk.DeleteItemInput
	err          error
}

func (f *fakeClient) Scan(_ context.Context, params *sdk.ScanInput, _ ...func(*sdk.Options)) (*sdk.ScanOutput, error) {
	f.scanInputs = append(f.scanInputs, params)
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	out := f.scanOutputs[len(f.scanInputs)-1]
	return out, nil
}

func (f *fakeClient) CreateTable(_ context.Context, params *sdk.CreateTableInput, _ ...func(*sdk.Options)) (*sdk.CreateTableOutput, error) {
	f.createInputs = append(f.createInputs, params)
	return &sdk.CreateTableOutput{}, f.err
}

func (f *fakeClient) PutItem(_ context.Context, params *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	f.putInputs = append(f.putInputs, params)
	return &sdk.PutItemOutput{}, f.err
}

func (f *fakeClient) GetItem(_ context.Context, _ *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.getOutput == nil {
		return &sdk.GetItemOutput{}, nil
	}
	return f.getOutput, nil
}

func (f *fakeClient) DeleteItem(_ context.Context, params *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	f.deleteInputs = append(f.deleteInputs, params)
	return &sdk.DeleteItemOutput{}, f.err
}

func startedProvider(t *testing.T, client *fakeClient) *Provider {
	t.Helper()
	p, err := NewProviderWithClient(client, Config{Region: "us-east-1", TablePrefix: "dev-"}, nil)
	if err != nil {
		t.Fatalf("NewProviderWithClient failed: %v", err)
	}
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return p
}

func TestProviderLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("operation before start", func(t *testing.T) {
		p, _ := NewProviderWithClient(&fakeClient{}, Config{Region: "us-east-1"}, nil)
		_, err := p.ScanChunk(ctx, scan.New("events"), nil)
		if !errors.IsConfiguration(err) {
			t.Errorf("Expected a configuration error, got %v", err)
		}
	})

	t.Run("double start", func(t *testing.T) {
		p := startedProvider(t, &fakeClient{})
		if err := p.Start(ctx); !errors.IsConfiguration(err) {
			t.Errorf("Second Start should fail, got %v", err)
		}
	})

	t.Run("dispose releases exactly once", func(t *testing.T) {
		p := startedProvider(t, &fakeClient{})
		if err := p.Dispose(ctx); err != nil {
			t.Fatalf("Dispose failed: %v", err)
		}
		if err := p.Dispose(ctx); err != nil {
			t.Errorf("Second Dispose should be a no-op, got %v", err)
		}
		if _, err := p.ScanChunk(ctx, scan.New("events"), nil); !errors.IsConfiguration(err) {
			t.Errorf("Operations after Dispose should fail, got %v", err)
		}
		if err := p.Start(ctx); !errors.IsConfiguration(err) {
			t.Errorf("Start after Dispose should fail, got %v", err)
		}
	})

	t.Run("missing region", func(t *testing.T) {
		_, err := NewProviderWithClient(&fakeClient{}, Config{}, nil)
		if !errors.IsConfiguration(err) {
			t.Errorf("Expected a configuration error, got %v", err)
		}
	})
}

func TestScanChunk(t *testing.T) {
	ctx := context.Background()
	lastKey := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: "item-25"},
	}
	client := &fakeClient{
		scanOutputs: []*sdk.ScanOutput{
			{
				Items: []map[string]types.AttributeValue{
					{"id": &types.AttributeValueMemberS{Value: "item-1"}},
					{"id": &types.AttributeValueMemberS{Value: "item-2"}},
				},
				LastEvaluatedKey: lastKey,
			},
			{
				Items: []map[string]types.AttributeValue{
					{"id": &types.AttributeValueMemberS{Value: "item-26"}},
				},
			},
		},
	}
	p := startedProvider(t, client)

	s := scan.New("events",
		scan.WithPageSize(25),
		scan.WithFilter("kind = :kind", map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: "reading"},
		}),
	)

	chunk, err := p.ScanChunk(ctx, s, nil)
	if err != nil {
		t.Fatalf("ScanChunk failed: %v", err)
	}
	if len(chunk.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(chunk.Items))
	}
	if chunk.NextCursor == nil {
		t.Fatal("Expected a continuation token")
	}

	in := client.scanInputs[0]
	if *in.TableName != "dev-events" {
		t.Errorf("Table prefix not applied: %q", *in.TableName)
	}
	if *in.Limit != 25 {
		t.Errorf("Page-size hint not forwarded: %d", *in.Limit)
	}
	if *in.FilterExpression != "kind = :kind" {
		t.Errorf("Filter not forwarded: %q", *in.FilterExpression)
	}
	if in.ExclusiveStartKey != nil {
		t.Error("First page must not carry a start key")
	}

	// Second page resumes from the continuation token and is the last one
	chunk, err = p.ScanChunk(ctx, s, chunk.NextCursor)
	if err != nil {
		t.Fatalf("ScanChunk failed: %v", err)
	}
	if client.scanInputs[1].ExclusiveStartKey == nil {
		t.Error("Continuation token not forwarded as start key")
	}
	if chunk.NextCursor != nil {
		t.Error("Last page must not carry a continuation token")
	}
}

func TestScanChunkProviderError(t *testing.T) {
	client := &fakeClient{scanErr: fmt.Errorf("throughput exceeded")}
	p := startedProvider(t, client)

	_, err := p.ScanChunk(context.Background(), scan.New("events"), nil)
	if !errors.IsProvider(err) {
		t.Errorf("Expected a provider error, got %v", err)
	}
}

func TestCreateTable(t *testing.T) {
	ctx := context.Background()

	table := &schema.Table{
		Name: "events",
		Keys: []schema.Key{
			{Attribute: &schema.Attribute{Name: "id", DataType: schema.DataTypeString}, Type: schema.KeyTypeHash},
		},
		Throughput: schema.ProvisionedThroughput{Read: 5, Write: 5},
	}

	t.Run("valid table", func(t *testing.T) {
		client := &fakeClient{}
		p := startedProvider(t, client)

		if err := p.CreateTable(ctx, table); err != nil {
			t.Fatalf("CreateTable failed: %v", err)
		}
		if len(client.createInputs) != 1 {
			t.Fatalf("Expected one CreateTable request, got %d", len(client.createInputs))
		}
		in := client.createInputs[0]
		if *in.TableName != "dev-events" {
			t.Errorf("Table prefix not applied: %q", *in.TableName)
		}
		if in.GlobalSecondaryIndexes != nil || in.LocalSecondaryIndexes != nil {
			t.Error("Index fields should be absent for a table without indices")
		}
	})

	t.Run("invalid table never reaches the wire", func(t *testing.T) {
		client := &fakeClient{}
		p := startedProvider(t, client)

		bad := &schema.Table{Name: "", Keys: table.Keys, Throughput: table.Throughput}
		err := p.CreateTable(ctx, bad)
		if !errors.IsValidation(err) {
			t.Fatalf("Expected a validation error, got %v", err)
		}
		if len(client.createInputs) != 0 {
			t.Error("No request may be sent for an invalid schema")
		}
	})
}

func TestRecordOperations(t *testing.T) {
	ctx := context.Background()
	key := scan.Record{"id": &types.AttributeValueMemberS{Value: "m-1"}}

	t.Run("put", func(t *testing.T) {
		client := &fakeClient{}
		p := startedProvider(t, client)
		if err := p.PutRecord(ctx, "events", key); err != nil {
			t.Fatalf("PutRecord failed: %v", err)
		}
		if *client.putInputs[0].TableName != "dev-events" {
			t.Errorf("Table prefix not applied: %q", *client.putInputs[0].TableName)
		}
	})

	t.Run("get found", func(t *testing.T) {
		client := &fakeClient{getOutput: &sdk.GetItemOutput{Item: key}}
		p := startedProvider(t, client)
		rec, err := p.GetRecord(ctx, "events", key)
		if err != nil {
			t.Fatalf("GetRecord failed: %v", err)
		}
		if rec == nil {
			t.Fatal("Expected a record")
		}
	})

	t.Run("get not found", func(t *testing.T) {
		client := &fakeClient{}
		p := startedProvider(t, client)
		rec, err := p.GetRecord(ctx, "events", key)
		if err != nil {
			t.Fatalf("GetRecord failed: %v", err)
		}
		if rec != nil {
			t.Error("Missing item should decode to a nil record")
		}
	})

	t.Run("delete", func(t *testing.T) {
		client := &fakeClient{}
		p := startedProvider(t, client)
		if err := p.DeleteRecord(ctx, "events", key); err != nil {
			t.Fatalf("DeleteRecord failed: %v", err)
		}
		if len(client.deleteInputs) != 1 {
			t.Error("Expected one DeleteItem request")
		}
	})

	t.Run("provider error wrapping", func(t *testing.T) {
		client := &fakeClient{err: fmt.Errorf("access denied")}
		p := startedProvider(t, client)
		if err := p.PutRecord(ctx, "events", key); !errors.IsProvider(err) {
			t.Errorf("Expected a provider error, got %v", err)
		}
	})
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvRegion, "eu-west-1")
	t.Setenv(EnvTablePrefix, "prod-")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if cfg.Region != "eu-west-1" || cfg.TablePrefix != "prod-" {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	t.Setenv(EnvRegion, "")
	if _, err := ConfigFromEnv(); !errors.IsConfiguration(err) {
		t.Errorf("Expected a configuration error, got %v", err)
	}
}
