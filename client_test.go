/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablekit

import (
	"context"
	"reflect"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/tablekit/datastore/testmodels"
	"github.com/suparena/tablekit/errors"
	"github.com/suparena/tablekit/scan"
	"github.com/suparena/tablekit/schema"
	"github.com/suparena/tablekit/serde"
)

// memProvider is an in-memory datastore.Provider used by the client tests.
type memProvider struct {
	items    map[string][]scan.Record
	pageSize int
	created  []*schema.Table
}

func newMemProvider() *memProvider {
	return &memProvider{items: make(map[string][]scan.Record), pageSize: 2}
}

func (m *memProvider) Start(ctx context.Context) error   { return nil }
func (m *memProvider) Dispose(ctx context.Context) error { return nil }

func (m *memProvider) CreateTable(_ context.Context, table *schema.Table) error {
	if _, err := table.ToWireSchema(); err != nil {
		return err
	}
	m.created = append(m.created, table)
	return nil
}

func (m *memProvider) PutRecord(_ context.Context, table string, item scan.Record) error {
	for i, existing := range m.items[table] {
		if keyMatches(item, existing, keyNames(existing)) {
			m.items[table][i] = item
			return nil
		}
	}
	m.items[table] = append(m.items[table], item)
	return nil
}

func (m *memProvider) GetRecord(_ context.Context, table string, key scan.Record) (scan.Record, error) {
	for _, item := range m.items[table] {
		if keyMatches(key, item, keyNames(key)) {
			return item, nil
		}
	}
	return nil, nil
}

func (m *memProvider) DeleteRecord(_ context.Context, table string, key scan.Record) error {
	records := m.items[table]
	for i, item := range records {
		if keyMatches(key, item, keyNames(key)) {
			m.items[table] = append(records[:i], records[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memProvider) ScanChunk(_ context.Context, s *scan.Scan, cursor scan.Cursor) (*scan.Chunk, error) {
	records := m.items[s.TableName()]
	start := 0
	if n, ok := cursor["pos"].(*types.AttributeValueMemberN); ok {
		start, _ = strconv.Atoi(n.Value)
	}
	end := start + m.pageSize
	if end >= len(records) {
		return &scan.Chunk{Items: records[start:]}, nil
	}
	return &scan.Chunk{
		Items:      records[start:end],
		NextCursor: scan.Cursor{"pos": &types.AttributeValueMemberN{Value: strconv.Itoa(end)}},
	}, nil
}

func keyNames(key scan.Record) []string {
	names := make([]string, 0, len(key))
	for k := range key {
		names = append(names, k)
	}
	return names
}

func keyMatches(key, item scan.Record, names []string) bool {
	for _, name := range names {
		if !reflect.DeepEqual(key[name], item[name]) {
			return false
		}
	}
	return true
}

func measurementClient(t *testing.T, p *memProvider) *Client[testmodels.Measurement] {
	t.Helper()
	payload := &schema.Attribute{
		Name:       "payload",
		DataType:   schema.DataTypeBinary,
		Serializer: serde.NewCompressedJSONSerializer(),
	}
	c, err := NewClient[testmodels.Measurement](p, testmodels.MeasurementsTable(), []*schema.Attribute{payload}, nil)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return c
}

func TestClientPutGetDelete(t *testing.T) {
	ctx := context.Background()
	p := newMemProvider()
	client := measurementClient(t, p)

	m := testmodels.Measurement{
		ID:      "sensor-1",
		Ts:      1700000000,
		Site:    "north",
		Payload: map[string]any{"celsius": float64(21.5)},
	}
	if err := client.Put(ctx, m); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// The payload attribute must be stored through its pipeline, not as a
	// plain map.
	stored := p.items["measurements"][0]
	if _, ok := stored["payload"].(*types.AttributeValueMemberB); !ok {
		t.Errorf("Payload not routed through the serializer pipeline: %T", stored["payload"])
	}

	key := map[string]any{"id": m.ID, "ts": m.Ts}
	got, err := client.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected the stored entity")
	}
	if got.ID != m.ID || got.Site != m.Site {
		t.Errorf("Round trip mismatch: %+v", got)
	}
	if got.Payload["celsius"] != float64(21.5) {
		t.Errorf("Payload round trip mismatch: %#v", got.Payload)
	}

	if err := client.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err = client.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if got != nil {
		t.Error("Deleted entity should resolve to nil")
	}
}

func TestClientCreateTable(t *testing.T) {
	p := newMemProvider()
	client := measurementClient(t, p)

	if err := client.CreateTable(context.Background()); err != nil {
		t.Fatalf("CreateTable failed: %v", err)
	}
	if len(p.created) != 1 || p.created[0].Name != "measurements" {
		t.Errorf("Unexpected provisioned tables: %+v", p.created)
	}
}

// collectingConsumer gathers every pushed batch and always accepts more.
type collectingConsumer struct {
	items []scan.Record
	ends  int
	errs  []error
}

func (c *collectingConsumer) OnBatch(items []scan.Record) bool {
	c.items = append(c.items, items...)
	return true
}
func (c *collectingConsumer) OnEnd()          { c.ends++ }
func (c *collectingConsumer) OnError(e error) { c.errs = append(c.errs, e) }

func TestClientScan(t *testing.T) {
	ctx := context.Background()
	p := newMemProvider()
	client := measurementClient(t, p)

	sites := []string{"north", "south", "north", "east", "north"}
	for i, site := range sites {
		m := testmodels.Measurement{
			ID:      "sensor-1",
			Ts:      int64(i),
			Site:    site,
			Payload: map[string]any{"seq": float64(i)},
		}
		if err := client.Put(ctx, m); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	consumer := &collectingConsumer{}
	reader := client.Scan(consumer)
	reader.Pull(ctx)

	if reader.State() != scan.StateExhausted {
		t.Fatalf("Expected an exhausted reader, got %v", reader.State())
	}
	if len(consumer.items) != len(sites) {
		t.Fatalf("Expected %d items, got %d", len(sites), len(consumer.items))
	}
	if consumer.ends != 1 || len(consumer.errs) != 0 {
		t.Errorf("Unexpected completion signals: ends=%d errs=%v", consumer.ends, consumer.errs)
	}

	// Raw scanned records decode back into entities through the client.
	first, err := client.Decode(consumer.items[0])
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if first.Site != "north" || first.Payload["seq"] != float64(0) {
		t.Errorf("Decoded entity mismatch: %+v", first)
	}
}

func TestNewClientValidation(t *testing.T) {
	table := testmodels.MeasurementsTable()

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewClient[testmodels.Measurement](nil, table, nil, nil)
		if !errors.IsConfiguration(err) {
			t.Errorf("Expected a configuration error, got %v", err)
		}
	})

	t.Run("invalid table", func(t *testing.T) {
		bad := &schema.Table{Name: "t"}
		_, err := NewClient[testmodels.Measurement](newMemProvider(), bad, nil, nil)
		if !errors.IsValidation(err) {
			t.Errorf("Expected a validation error, got %v", err)
		}
	})

	t.Run("nil definition", func(t *testing.T) {
		_, err := NewClientFromDefinition[testmodels.Measurement](newMemProvider(), nil, nil)
		if !errors.IsConfiguration(err) {
			t.Errorf("Expected a configuration error, got %v", err)
		}
	})
}
