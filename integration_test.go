//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablekit_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/suparena/tablekit"
	"github.com/suparena/tablekit/datastore/ddb"
	"github.com/suparena/tablekit/datastore/testmodels"
	"github.com/suparena/tablekit/scan"
	"github.com/suparena/tablekit/schema"
	"github.com/suparena/tablekit/serde"
)

func setupProvider(t *testing.T) *ddb.Provider {
	t.Helper()
	_ = godotenv.Load()

	cfg, err := ddb.ConfigFromEnv()
	if err != nil {
		t.Skipf("%s not set, skipping integration test", ddb.EnvRegion)
	}

	ctx := context.Background()
	provider, err := ddb.NewProvider(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	if err := provider.Start(ctx); err != nil {
		t.Fatalf("Failed to start provider: %v", err)
	}
	t.Cleanup(func() {
		_ = provider.Dispose(context.Background())
	})
	return provider
}

func setupClient(t *testing.T, provider *ddb.Provider) *tablekit.Client[testmodels.Measurement] {
	t.Helper()
	payload := &schema.Attribute{
		Name:       "payload",
		DataType:   schema.DataTypeBinary,
		Serializer: serde.NewCompressedJSONSerializer(),
	}
	client, err := tablekit.NewClient[testmodels.Measurement](
		provider, testmodels.MeasurementsTable(), []*schema.Attribute{payload}, nil)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func TestIntegrationBasicOperations(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	provider := setupProvider(t)
	client := setupClient(t, provider)

	m := testmodels.Measurement{
		ID:      fmt.Sprintf("test-%d", time.Now().Unix()),
		Ts:      time.Now().UnixMilli(),
		Site:    "integration",
		Payload: map[string]any{"celsius": 21.5, "humidity": 0.4},
	}
	key := map[string]any{"id": m.ID, "ts": m.Ts}

	if err := client.Put(ctx, m); err != nil {
		t.Fatalf("Failed to put measurement: %v", err)
	}

	got, err := client.Get(ctx, key)
	if err != nil {
		t.Fatalf("Failed to get measurement: %v", err)
	}
	if got == nil {
		t.Fatal("Measurement not found after put")
	}
	if got.ID != m.ID || got.Site != m.Site {
		t.Errorf("Retrieved measurement doesn't match: got %+v, want %+v", got, m)
	}
	if got.Payload["celsius"] != 21.5 {
		t.Errorf("Payload round trip mismatch: %#v", got.Payload)
	}

	if err := client.Delete(ctx, key); err != nil {
		t.Fatalf("Failed to delete measurement: %v", err)
	}
	got, err = client.Get(ctx, key)
	if err != nil {
		t.Fatalf("Failed to re-get measurement: %v", err)
	}
	if got != nil {
		t.Error("Measurement still present after delete")
	}
}

func TestIntegrationScanStream(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	provider := setupProvider(t)
	client := setupClient(t, provider)

	id := fmt.Sprintf("scan-%d", time.Now().Unix())
	base := time.Now().UnixMilli()
	const count = 5
	for i := 0; i < count; i++ {
		m := testmodels.Measurement{
			ID:      id,
			Ts:      base + int64(i),
			Site:    "integration",
			Payload: map[string]any{"seq": float64(i)},
		}
		if err := client.Put(ctx, m); err != nil {
			t.Fatalf("Failed to put measurement %d: %v", i, err)
		}
	}
	t.Cleanup(func() {
		for i := 0; i < count; i++ {
			_ = client.Delete(context.Background(), map[string]any{"id": id, "ts": base + int64(i)})
		}
	})

	var items []scan.Record
	done := false
	consumer := consumerFuncs{
		onBatch: func(batch []scan.Record) bool {
			items = append(items, batch...)
			return true
		},
		onEnd: func() { done = true },
		onErr: func(err error) { t.Errorf("Scan failed: %v", err) },
	}

	reader := client.Scan(&consumer, scan.WithPageSize(2))
	for reader.State() != scan.StateExhausted && reader.State() != scan.StateErrored {
		reader.Pull(ctx)
	}

	if !done {
		t.Error("Scan never signaled completion")
	}
	if len(items) < count {
		t.Errorf("Expected at least %d scanned items, got %d", count, len(items))
	}
}

type consumerFuncs struct {
	onBatch func([]scan.Record) bool
	onEnd   func()
	onErr   func(error)
}

func (c *consumerFuncs) OnBatch(items []scan.Record) bool { return c.onBatch(items) }
func (c *consumerFuncs) OnEnd()                           { c.onEnd() }
func (c *consumerFuncs) OnError(err error)                { c.onErr(err) }
