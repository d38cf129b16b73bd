package cmd

import (
	"bytes"
	"testing"

	"github.com/quantmind-br/githere/internal/config"
	"github.com/quantmind-br/githere/internal/explorer"
	"github.com/quantmind-br/githere/internal/launcher"
	"github.com/quantmind-br/githere/internal/locator"
	"github.com/quantmind-br/githere/internal/logging"
	"github.com/quantmind-br/githere/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// testStore serves install paths keyed by location string. Locations not in
// the map fail to open.
type testStore map[string]string

func (s testStore) Open(loc locator.Location) (locator.Key, error) {
	v, ok := s[loc.String()]
	if !ok {
		return nil, locator.ErrValueNotExist
	}
	return testKey(v), nil
}

type testKey string

func (k testKey) ReadString(string) (string, uint32, error) {
	if k == "" {
		return "", 0, locator.ErrValueNotExist
	}
	return string(k), locator.TypeString, nil
}

func (k testKey) Close() error { return nil }

type harness struct {
	cfg      *config.Config
	log      *zerolog.Logger
	env      *Env
	store    testStore
	desktop  *explorer.MockDesktop
	starter  *launcher.MockStarter
	out      *bytes.Buffer
	errOut   *bytes.Buffer
	// cobraErr receives cobra's own error and usage output.
	cobraErr *bytes.Buffer
}

const gitRoot = `C:\Program Files\Git`

func newHarness(t *testing.T) *harness {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(gitRoot, 0755))
	require.NoError(t, afero.WriteFile(fs, gitRoot+`\git-bash.exe`, []byte("MZ"), 0755))

	h := &harness{
		cfg:      config.Default(),
		log:      logging.Nop(),
		store:    testStore{`HKLM\SOFTWARE\GitForWindows`: gitRoot},
		desktop:  &explorer.MockDesktop{},
		starter:  &launcher.MockStarter{},
		out:      &bytes.Buffer{},
		errOut:   &bytes.Buffer{},
		cobraErr: &bytes.Buffer{},
	}
	h.cfg.Paths.LogFile = ""
	h.env = &Env{Store: h.store, Desktop: h.desktop, Fs: fs, Starter: h.starter}

	ui.DisableColors()
	ui.SetOutput(h.out, h.errOut)
	t.Cleanup(func() {
		ui.SetOutput(nil, nil)
		ui.EnableColors()
	})
	return h
}

func (h *harness) run(args ...string) error {
	root := newRootCmd(h.cfg, h.log, "1.2.3", h.env)
	root.SetArgs(args)
	root.SetOut(h.out)
	root.SetErr(h.cobraErr)
	return root.Execute()
}
