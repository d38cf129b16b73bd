package locator

import (
	"fmt"
	"strings"
)

// Hive is a registry root.
type Hive int

const (
	LocalMachine Hive = iota + 1
	CurrentUser
)

func (h Hive) String() string {
	switch h {
	case LocalMachine:
		return "HKLM"
	case CurrentUser:
		return "HKCU"
	default:
		return fmt.Sprintf("Hive(%d)", int(h))
	}
}

// Location is a registry key under a hive.
type Location struct {
	Hive Hive
	Path string
}

func (l Location) String() string {
	return l.Hive.String() + `\` + l.Path
}

// ParseLocation parses `HKLM\SOFTWARE\GitForWindows` style strings. Both the
// short and the HKEY_* long root names are accepted.
func ParseLocation(s string) (Location, error) {
	root, path, ok := strings.Cut(strings.TrimSpace(s), `\`)
	if !ok || strings.Trim(path, `\`) == "" {
		return Location{}, fmt.Errorf("invalid install location %q: want ROOT\\path", s)
	}

	var hive Hive
	switch strings.ToUpper(root) {
	case "HKLM", "HKEY_LOCAL_MACHINE":
		hive = LocalMachine
	case "HKCU", "HKEY_CURRENT_USER":
		hive = CurrentUser
	default:
		return Location{}, fmt.Errorf("invalid install location %q: unsupported root %q", s, root)
	}

	return Location{Hive: hive, Path: strings.Trim(path, `\`)}, nil
}

// ParseLocations parses every entry, preserving order.
func ParseLocations(list []string) ([]Location, error) {
	locations := make([]Location, 0, len(list))
	for _, s := range list {
		loc, err := ParseLocation(s)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// Registry value types, numbered as in winnt.h.
const (
	TypeNone                     uint32 = 0
	TypeString                   uint32 = 1
	TypeExpandString             uint32 = 2
	TypeBinary                   uint32 = 3
	TypeDWord                    uint32 = 4
	TypeDWordBigEndian           uint32 = 5
	TypeLink                     uint32 = 6
	TypeMultiString              uint32 = 7
	TypeResourceList             uint32 = 8
	TypeFullResourceDescriptor   uint32 = 9
	TypeResourceRequirementsList uint32 = 10
	TypeQWord                    uint32 = 11
)

var typeNames = map[uint32]string{
	TypeNone:                     "REG_NONE",
	TypeString:                   "REG_SZ",
	TypeExpandString:             "REG_EXPAND_SZ",
	TypeBinary:                   "REG_BINARY",
	TypeDWord:                    "REG_DWORD",
	TypeDWordBigEndian:           "REG_DWORD_BIG_ENDIAN",
	TypeLink:                     "REG_LINK",
	TypeMultiString:              "REG_MULTI_SZ",
	TypeResourceList:             "REG_RESOURCE_LIST",
	TypeFullResourceDescriptor:   "REG_FULL_RESOURCE_DESCRIPTOR",
	TypeResourceRequirementsList: "REG_RESOURCE_REQUIREMENTS_LIST",
	TypeQWord:                    "REG_QWORD",
}

// TypeName returns the REG_* name of a value type.
func TypeName(t uint32) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type %d", t)
}
