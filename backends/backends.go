package backends

import (
	"errors"

	"github.com/botirk38/embedmatch/backends/inmemory"
	"github.com/botirk38/embedmatch/types"
)

var ErrUnsupportedBackend = errors.New("unsupported backend type")

// NewBackend creates a new cache backend of the specified type
func NewBackend(backendType types.BackendType, config types.BackendConfig) (types.CacheBackend, error) {
	switch backendType {
	case types.BackendMap, "":
		return NewMapBackend(), nil
	case types.BackendLRU:
		return NewLRUBackend(config)
	default:
		return nil, ErrUnsupportedBackend
	}
}

// NewMapBackend creates a new unbounded map backend
func NewMapBackend() types.CacheBackend {
	return inmemory.NewMapBackend()
}

// NewLRUBackend creates a new LRU backend
func NewLRUBackend(config types.BackendConfig) (types.CacheBackend, error) {
	return inmemory.NewLRUBackend(config)
}
