//go:build windows

package explorer

import (
	"errors"
	"runtime"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/quantmind-br/githere/internal/errs"
	"golang.org/x/sys/windows"
)

const (
	sFalse          = 0x00000001
	rpcEChangedMode = 0x80010106
)

// Client reads the live Windows desktop session.
type Client struct{}

// NewClient creates a Client.
func NewClient() *Client {
	return &Client{}
}

// ForegroundWindow returns the foreground window and its class name.
func (c *Client) ForegroundWindow() (Window, error) {
	hwnd := windows.GetForegroundWindow()
	if hwnd == 0 {
		return Window{}, errs.New(errs.NotFound, "no foreground window")
	}

	buf := make([]uint16, 256)
	n, err := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	if err != nil {
		return Window{}, errs.Wrap(err, errs.SystemCallFailed, "GetClassName")
	}

	return Window{
		Handle: uintptr(hwnd),
		Class:  windows.UTF16ToString(buf[:n]),
	}, nil
}

// DesktopDir returns the Desktop known folder.
func (c *Client) DesktopDir() (string, error) {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_Desktop, windows.KF_FLAG_DEFAULT)
	if err != nil {
		return "", errs.Wrap(err, errs.SystemCallFailed, "KnownFolderPath(Desktop)")
	}
	return dir, nil
}

// ShellWindows enumerates Shell.Application().Windows(). COM is initialised
// for the calling OS thread and torn down before returning.
func (c *Client) ShellWindows() (windowsOut []ShellWindow, err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	uninit, err := initCOM()
	if err != nil {
		return nil, err
	}
	if uninit {
		defer ole.CoUninitialize()
	}

	unknown, err := oleutil.CreateObject("Shell.Application")
	if err != nil {
		return nil, errs.Wrap(err, errs.SystemCallFailed, "create Shell.Application")
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return nil, errs.Wrap(err, errs.SystemCallFailed, "query Shell.Application dispatch")
	}
	defer shell.Release()

	windowsVar, err := oleutil.CallMethod(shell, "Windows")
	if err != nil {
		return nil, errs.Wrap(err, errs.SystemCallFailed, "Shell.Application.Windows")
	}
	defer windowsVar.Clear()

	list := windowsVar.ToIDispatch()
	if list == nil {
		return nil, errs.New(errs.SystemCallFailed, "Shell.Application.Windows returned no collection")
	}

	countVar, err := oleutil.GetProperty(list, "Count")
	if err != nil {
		return nil, errs.Wrap(err, errs.SystemCallFailed, "ShellWindows.Count")
	}
	count := int(countVar.Val)
	countVar.Clear()

	for i := 0; i < count; i++ {
		w, ok := readShellWindow(list, i)
		if ok {
			windowsOut = append(windowsOut, w)
		}
	}
	return windowsOut, nil
}

// readShellWindow reads one collection entry. Entries can vanish while the
// collection is walked, so a failed read skips the entry.
func readShellWindow(list *ole.IDispatch, i int) (ShellWindow, bool) {
	itemVar, err := oleutil.CallMethod(list, "Item", i)
	if err != nil {
		return ShellWindow{}, false
	}
	defer itemVar.Clear()

	item := itemVar.ToIDispatch()
	if item == nil {
		return ShellWindow{}, false
	}

	hwndVar, err := oleutil.GetProperty(item, "HWND")
	if err != nil {
		return ShellWindow{}, false
	}
	handle := variantHandle(hwndVar)
	hwndVar.Clear()

	var w ShellWindow
	w.Handle = handle

	if urlVar, err := oleutil.GetProperty(item, "LocationURL"); err == nil {
		w.LocationURL = urlVar.ToString()
		urlVar.Clear()
	}
	if nameVar, err := oleutil.GetProperty(item, "LocationName"); err == nil {
		w.Name = nameVar.ToString()
		nameVar.Clear()
	}
	return w, true
}

func variantHandle(v *ole.VARIANT) uintptr {
	if v.VT == ole.VT_I4 {
		return uintptr(uint32(v.Val))
	}
	return uintptr(v.Val)
}

// initCOM initialises an apartment on this thread. It reports whether the
// caller owes a matching CoUninitialize.
func initCOM() (bool, error) {
	err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED)
	if err == nil {
		return true, nil
	}

	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		switch oleErr.Code() {
		case sFalse:
			// already initialised on this thread; still balanced by CoUninitialize
			return true, nil
		case rpcEChangedMode:
			// the thread already lives in another apartment; use it as is
			return false, nil
		}
	}
	return false, errs.Wrap(err, errs.SystemCallFailed, "CoInitializeEx")
}
