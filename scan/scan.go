/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scan

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Record is one stored item as returned by the provider.
type Record = map[string]types.AttributeValue

// Cursor is the opaque continuation token returned alongside a results
// batch. A nil or empty cursor signals the scan is exhausted.
type Cursor = map[string]types.AttributeValue

// Scan is an immutable descriptor of a table scan. It is created per query
// and never mutated afterwards; options are applied once at construction.
type Scan struct {
	tableName        string
	indexName        *string
	filterExpression *string
	exprValues       map[string]types.AttributeValue
	pageSize         *int32
}

// Option configures a Scan at construction time.
type Option func(*Scan)

// WithIndexName scans a secondary index instead of the base table.
func WithIndexName(name string) Option {
	return func(s *Scan) {
		s.indexName = &name
	}
}

// WithFilter applies a filter expression with its placeholder values.
func WithFilter(expression string, values map[string]types.AttributeValue) Option {
	return func(s *Scan) {
		s.filterExpression = &expression
		s.exprValues = values
	}
}

// WithPageSize hints the number of items per fetched page.
func WithPageSize(size int32) Option {
	return func(s *Scan) {
		s.pageSize = &size
	}
}

// New builds a scan descriptor for the named table.
func New(tableName string, opts ...Option) *Scan {
	s := &Scan{tableName: tableName}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TableName returns the scan target table.
func (s *Scan) TableName() string { return s.tableName }

// IndexName returns the target secondary index, if any.
func (s *Scan) IndexName() *string { return s.indexName }

// FilterExpression returns the optional filter expression.
func (s *Scan) FilterExpression() *string { return s.filterExpression }

// ExpressionAttributeValues returns the filter placeholder values.
func (s *Scan) ExpressionAttributeValues() map[string]types.AttributeValue { return s.exprValues }

// PageSize returns the page-size hint, if any.
func (s *Scan) PageSize() *int32 { return s.pageSize }
