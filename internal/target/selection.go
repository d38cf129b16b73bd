package target

import (
	"path/filepath"
	"strings"

	"github.com/quantmind-br/githere/internal/errs"
)

// Item is one entry of a selection context.
type Item interface {
	// FileSystemPath returns the item's filesystem path. Items that are not
	// backed by the filesystem fail with errs.Unsupported.
	FileSystemPath() (string, error)
}

// Selection is the ordered set of items the host supplies with an
// invocation. A nil Selection means the host supplied none.
type Selection interface {
	Count() int
	Item(i int) (Item, error)
}

// Items is a Selection backed by a slice.
type Items []Item

// Count implements Selection.Count
func (s Items) Count() int {
	return len(s)
}

// Item implements Selection.Item
func (s Items) Item(i int) (Item, error) {
	if i < 0 || i >= len(s) {
		return nil, errs.Newf(errs.NotFound, "selection has no item %d", i)
	}
	return s[i], nil
}

// PathItem is a filesystem-backed item.
type PathItem string

// FileSystemPath returns the absolute form of the path.
func (p PathItem) FileSystemPath() (string, error) {
	s := string(p)
	if s == "" {
		return "", errs.New(errs.Unsupported, "item has no filesystem path")
	}
	if isWindowsAbs(s) || filepath.IsAbs(s) {
		return s, nil
	}
	abs, err := filepath.Abs(s)
	if err != nil {
		return "", errs.Wrap(err, errs.SystemCallFailed, "resolve item path")
	}
	return abs, nil
}

// VirtualItem is a shell namespace location with no filesystem path, such as
// "This PC" or a shell: folder.
type VirtualItem string

// FileSystemPath always fails with errs.Unsupported.
func (v VirtualItem) FileSystemPath() (string, error) {
	return "", errs.Newf(errs.Unsupported, "%s is not a filesystem location", string(v)).
		WithDetail("item", string(v))
}

// itemFromArg classifies a host-supplied argument.
func itemFromArg(arg string) Item {
	if IsVirtual(arg) {
		return VirtualItem(arg)
	}
	return PathItem(arg)
}

// SelectionFromArgs builds a Selection, preserving argument order.
func SelectionFromArgs(args []string) Items {
	items := make(Items, 0, len(args))
	for _, arg := range args {
		items = append(items, itemFromArg(arg))
	}
	return items
}

// IsVirtual reports whether arg names a shell namespace location rather than
// a filesystem path: shell: monikers and ::{CLSID} parsing names.
func IsVirtual(arg string) bool {
	lower := strings.ToLower(arg)
	return strings.HasPrefix(lower, "shell:") || strings.HasPrefix(arg, "::")
}

// isWindowsAbs reports drive-absolute (C:\x) and UNC (\\host\share) paths
// regardless of the host OS.
func isWindowsAbs(p string) bool {
	if strings.HasPrefix(p, `\\`) {
		return true
	}
	if len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/') {
		c := p[0]
		return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
	}
	return false
}
