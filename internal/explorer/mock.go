package explorer

// MockDesktop is a mock implementation of Desktop for testing
type MockDesktop struct {
	ForegroundWindowFunc func() (Window, error)
	ShellWindowsFunc     func() ([]ShellWindow, error)
	DesktopDirFunc       func() (string, error)

	// Calls counts invocations per method name.
	Calls map[string]int
}

func (m *MockDesktop) record(name string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[name]++
}

// ForegroundWindow implements Desktop.ForegroundWindow
func (m *MockDesktop) ForegroundWindow() (Window, error) {
	m.record("ForegroundWindow")
	if m.ForegroundWindowFunc != nil {
		return m.ForegroundWindowFunc()
	}
	return Window{}, nil
}

// ShellWindows implements Desktop.ShellWindows
func (m *MockDesktop) ShellWindows() ([]ShellWindow, error) {
	m.record("ShellWindows")
	if m.ShellWindowsFunc != nil {
		return m.ShellWindowsFunc()
	}
	return nil, nil
}

// DesktopDir implements Desktop.DesktopDir
func (m *MockDesktop) DesktopDir() (string, error) {
	m.record("DesktopDir")
	if m.DesktopDirFunc != nil {
		return m.DesktopDirFunc()
	}
	return "", nil
}
