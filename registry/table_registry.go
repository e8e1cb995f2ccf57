/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"

	"github.com/suparena/tablekit/schema"
)

// TableRegistry is a registry of table schemas by name.

var (
	tableRegistry = make(map[string]*schema.Table)
	tableMu       sync.RWMutex
)

// RegisterTable validates and registers a table schema under its own name.
func RegisterTable(t *schema.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	tableMu.Lock()
	defer tableMu.Unlock()
	if _, exists := tableRegistry[t.Name]; exists {
		return fmt.Errorf("table registry: table %q already registered", t.Name)
	}
	tableRegistry[t.Name] = t
	return nil
}

// GetTable retrieves the registered schema for a table name, if any.
func GetTable(name string) (*schema.Table, bool) {
	tableMu.RLock()
	defer tableMu.RUnlock()
	t, ok := tableRegistry[name]
	return t, ok
}
