//go:build windows

package locator

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// RegistryStore opens keys in the Windows registry with query access.
type RegistryStore struct{}

// NewRegistryStore returns the system registry store.
func NewRegistryStore() *RegistryStore {
	return &RegistryStore{}
}

// Open opens loc for reading.
func (s *RegistryStore) Open(loc Location) (Key, error) {
	var root registry.Key
	switch loc.Hive {
	case LocalMachine:
		root = registry.LOCAL_MACHINE
	case CurrentUser:
		root = registry.CURRENT_USER
	default:
		return nil, fmt.Errorf("open %s: unsupported hive", loc)
	}

	k, err := registry.OpenKey(root, loc.Path, registry.QUERY_VALUE)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", loc, err)
	}
	return &registryKey{key: k}, nil
}

type registryKey struct {
	key registry.Key
}

func (k *registryKey) ReadString(name string) (string, uint32, error) {
	value, valueType, err := k.key.GetStringValue(name)
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return "", valueType, ErrValueNotExist
	case errors.Is(err, registry.ErrUnexpectedType):
		return "", valueType, ErrUnexpectedType
	case err != nil:
		return "", valueType, err
	}

	// GetStringValue also accepts EXPAND_SZ; only REG_SZ is an install path.
	if valueType != registry.SZ {
		return "", valueType, ErrUnexpectedType
	}
	return value, valueType, nil
}

func (k *registryKey) Close() error {
	return k.key.Close()
}
