package backend

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Backend)
)

// Register makes a backend available under name. Intended for init functions.
func Register(name string, b Backend) {
	if b == nil {
		panic("backend: Register with nil backend")
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("backend: Register called twice for %q", name))
	}
	registry[name] = b
}

// Resolve returns the backend registered under name.
func Resolve(name string) (Backend, error) {
	registryMu.RLock()
	b, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, &InitializationError{Backend: name, Err: ErrBackendUnavailable}
	}
	return b, nil
}

// Registered lists backend names in sorted order.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
