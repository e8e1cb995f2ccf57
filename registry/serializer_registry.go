/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/tablekit/schema"
)

// SerializerFactory builds a serializer from an optional encryptor
// configuration. Factories for unencrypted serializers ignore the argument;
// factories for encrypted ones fail with a configuration error when it is
// missing.
type SerializerFactory func(enc *schema.Encryptor) (schema.Serializer, error)

var (
	serializerRegistry = make(map[string]SerializerFactory)
	serializerMu       sync.RWMutex
)

// RegisterSerializer registers a serializer factory under the given name.
// If a factory is already registered for the name, it panics to prevent
// accidental overrides.
func RegisterSerializer(name string, factory SerializerFactory) {
	serializerMu.Lock()
	defer serializerMu.Unlock()
	if _, exists := serializerRegistry[name]; exists {
		panic(fmt.Sprintf("serializer registry: %q already registered", name))
	}
	serializerRegistry[name] = factory
}

// GetSerializerFactory returns the factory registered under name.
func GetSerializerFactory(name string) (SerializerFactory, error) {
	serializerMu.RLock()
	defer serializerMu.RUnlock()
	factory, ok := serializerRegistry[name]
	if !ok {
		return nil, fmt.Errorf("serializer registry: no serializer registered for %q", name)
	}
	return factory, nil
}

// SerializerNames returns the registered serializer names, sorted.
func SerializerNames() []string {
	serializerMu.RLock()
	defer serializerMu.RUnlock()
	names := make([]string, 0, len(serializerRegistry))
	for name := range serializerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
