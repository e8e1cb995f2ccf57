/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablekit

import (
	"fmt"
	"reflect"
	"sync"
)

// ClientSet manages the named clients for a single entity type T.
type ClientSet[T any] struct {
	mu      sync.RWMutex
	clients map[string]*Client[T]
}

// NewClientSet creates an empty ClientSet for type T.
func NewClientSet[T any]() *ClientSet[T] {
	return &ClientSet[T]{
		clients: make(map[string]*Client[T]),
	}
}

// Register adds a client under the given key.
func (cs *ClientSet[T]) Register(key string, c *Client[T]) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, exists := cs.clients[key]; exists {
		return fmt.Errorf("client with key %q already registered", key)
	}
	cs.clients[key] = c
	return nil
}

// Get retrieves a client by key.
func (cs *ClientSet[T]) Get(key string) (*Client[T], error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	c, exists := cs.clients[key]
	if !exists {
		return nil, fmt.Errorf("client with key %q not found", key)
	}
	return c, nil
}

// Remove deletes a client by key.
func (cs *ClientSet[T]) Remove(key string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if _, exists := cs.clients[key]; !exists {
		return fmt.Errorf("client with key %q not found", key)
	}
	delete(cs.clients, key)
	return nil
}

// List returns all registered client keys.
func (cs *ClientSet[T]) List() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	keys := make([]string, 0, len(cs.clients))
	for k := range cs.clients {
		keys = append(keys, k)
	}
	return keys
}

// MultiTypeSet manages ClientSet instances across entity types.
type MultiTypeSet struct {
	mu   sync.RWMutex
	sets map[reflect.Type]any
}

// NewMultiTypeSet creates a new MultiTypeSet.
func NewMultiTypeSet() *MultiTypeSet {
	return &MultiTypeSet{
		sets: make(map[reflect.Type]any),
	}
}

// ClientSetFor returns the ClientSet for type T, creating it if necessary.
func ClientSetFor[T any](mts *MultiTypeSet) *ClientSet[T] {
	mts.mu.Lock()
	defer mts.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if set, exists := mts.sets[typ]; exists {
		return set.(*ClientSet[T])
	}

	set := NewClientSet[T]()
	mts.sets[typ] = set
	return set
}

// RegisterClient registers a client for type T under the given key.
func RegisterClient[T any](mts *MultiTypeSet, key string, c *Client[T]) error {
	return ClientSetFor[T](mts).Register(key, c)
}

// GetClient retrieves the client for type T registered under the given key.
func GetClient[T any](mts *MultiTypeSet, key string) (*Client[T], error) {
	return ClientSetFor[T](mts).Get(key)
}

// RemoveClient removes the client for type T registered under the given key.
func RemoveClient[T any](mts *MultiTypeSet, key string) error {
	return ClientSetFor[T](mts).Remove(key)
}

// ListClients lists all client keys registered for type T.
func ListClients[T any](mts *MultiTypeSet) []string {
	return ClientSetFor[T](mts).List()
}
