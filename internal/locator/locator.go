// Package locator finds the Git for Windows install root recorded in the
// system configuration store.
package locator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/errs"
	"github.com/rs/zerolog"
)

var (
	// ErrValueNotExist is returned by Key.ReadString when the value is absent.
	ErrValueNotExist = errors.New("value does not exist")
	// ErrUnexpectedType is returned by Key.ReadString when the value is not a string.
	ErrUnexpectedType = errors.New("unexpected value type")
)

// Key is an open configuration location.
type Key interface {
	// ReadString returns the named value. The value type is reported even when
	// err is ErrUnexpectedType.
	ReadString(name string) (value string, valueType uint32, err error)
	Close() error
}

// Store opens configuration locations.
type Store interface {
	Open(loc Location) (Key, error)
}

// Locator probes Locations in order and reads the install path from the
// first one that opens.
type Locator struct {
	store     Store
	locations []Location
	valueName string
	log       *zerolog.Logger
}

// New creates a Locator over an explicit store.
func New(store Store, locations []Location, valueName string, log *zerolog.Logger) *Locator {
	return &Locator{
		store:     store,
		locations: locations,
		valueName: valueName,
		log:       log,
	}
}

// NewFromConfig creates a Locator backed by the system registry.
func NewFromConfig(cfg *config.Config, log *zerolog.Logger) (*Locator, error) {
	locations, err := ParseLocations(cfg.Install.Locations)
	if err != nil {
		return nil, err
	}
	return New(NewRegistryStore(), locations, cfg.Install.ValueName, log), nil
}

// Locations returns the probe order.
func (l *Locator) Locations() []Location {
	return l.locations
}

// Locate returns the install root. Locations after the first one that opens
// are never touched.
func (l *Locator) Locate() (string, error) {
	if len(l.locations) == 0 {
		return "", errs.New(errs.NotFound, "no install locations configured").
			WithDetail("stage", StageInstallRoot)
	}

	var (
		key     Key
		used    Location
		lastErr error
	)
	for _, loc := range l.locations {
		k, err := l.store.Open(loc)
		if err != nil {
			l.log.Debug().Err(err).Str("location", loc.String()).Msg("install location not available")
			lastErr = err
			continue
		}
		key, used = k, loc
		break
	}

	if key == nil {
		return "", errs.Wrap(lastErr, errs.NotFound, "Git for Windows install location not found").
			WithDetail("stage", StageInstallRoot).
			WithDetail("locations", locationStrings(l.locations))
	}
	defer func() {
		if err := key.Close(); err != nil {
			l.log.Debug().Err(err).Str("location", used.String()).Msg("close install location")
		}
	}()

	value, valueType, err := key.ReadString(l.valueName)
	if err == nil && valueType != TypeString {
		err = ErrUnexpectedType
	}
	switch {
	case errors.Is(err, ErrUnexpectedType):
		return "", errs.Newf(errs.WrongType, "%s is %s, not a string", l.valueName, TypeName(valueType)).
			WithDetail("stage", StageInstallRoot).
			WithDetail("location", used.String()).
			WithDetail("type", TypeName(valueType))
	case errors.Is(err, ErrValueNotExist):
		return "", errs.Wrap(err, errs.NotFound, fmt.Sprintf("%s not set", l.valueName)).
			WithDetail("stage", StageInstallRoot).
			WithDetail("location", used.String())
	case err != nil:
		return "", errs.Wrap(err, errs.SystemCallFailed, fmt.Sprintf("read %s", l.valueName)).
			WithDetail("stage", StageInstallRoot).
			WithDetail("location", used.String())
	}

	if strings.TrimSpace(value) == "" {
		return "", errs.Newf(errs.NotFound, "%s is empty", l.valueName).
			WithDetail("stage", StageInstallRoot).
			WithDetail("location", used.String())
	}

	l.log.Debug().Str("location", used.String()).Str("install_path", value).Msg("install root located")
	return value, nil
}

// ProbeResult reports what a single location holds.
type ProbeResult struct {
	Location Location
	Opened   bool
	Value    string
	Err      error
}

// Probe inspects every location independently. It is a diagnostic view and
// has no bearing on which location Locate picks.
func (l *Locator) Probe() []ProbeResult {
	results := make([]ProbeResult, 0, len(l.locations))
	for _, loc := range l.locations {
		results = append(results, l.probeOne(loc))
	}
	return results
}

func (l *Locator) probeOne(loc Location) ProbeResult {
	res := ProbeResult{Location: loc}

	key, err := l.store.Open(loc)
	if err != nil {
		res.Err = err
		return res
	}
	defer key.Close()
	res.Opened = true

	value, valueType, err := key.ReadString(l.valueName)
	if err == nil && valueType != TypeString {
		err = ErrUnexpectedType
	}
	if errors.Is(err, ErrUnexpectedType) {
		res.Err = fmt.Errorf("%s is %s: %w", l.valueName, TypeName(valueType), err)
		return res
	}
	res.Value = value
	res.Err = err
	return res
}

// StageInstallRoot tags failures that happen before the binary is checked.
const StageInstallRoot = "install-root"

func locationStrings(locations []Location) []string {
	out := make([]string, len(locations))
	for i, loc := range locations {
		out[i] = loc.String()
	}
	return out
}
