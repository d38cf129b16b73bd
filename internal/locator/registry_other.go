//go:build !windows

package locator

import (
	"fmt"
	"runtime"
)

// RegistryStore stands in for the Windows registry on other platforms; no
// location ever opens.
type RegistryStore struct{}

// NewRegistryStore returns the system registry store.
func NewRegistryStore() *RegistryStore {
	return &RegistryStore{}
}

// Open always fails.
func (s *RegistryStore) Open(loc Location) (Key, error) {
	return nil, fmt.Errorf("open %s: no registry on %s", loc, runtime.GOOS)
}
