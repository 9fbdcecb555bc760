package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hr-directory/internal/config"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBootstrap_InMemory(t *testing.T) {
	cfg := &config.Config{AdminPassword: "P", BcryptCost: bcrypt.MinCost}

	a, err := Bootstrap(cfg, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, a.Directory.Size())

	s := a.Directory.NewSession()
	require.NoError(t, s.LogIn(0, "P"))
	logs, err := a.Audit.Recent(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "login", logs[0].Action)
}

func TestBootstrap_Seed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
employees:
  - key: m
    type: manager
    name: M
    password: m-pw
  - key: e
    type: standard_employee
    name: E
    password: e-pw
    manager: m
`), 0o600))

	cfg := &config.Config{AdminPassword: "P", BcryptCost: bcrypt.MinCost, SeedFile: path}
	a, err := Bootstrap(cfg, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, a.Directory.Size())

	m := a.Directory.NewSession()
	require.NoError(t, m.LogIn(1, "m-pw"))
	reports, err := m.GetReportingEmployees(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, reports)
}

func TestBootstrap_BadSeed(t *testing.T) {
	cfg := &config.Config{AdminPassword: "P", BcryptCost: bcrypt.MinCost, SeedFile: "/does/not/exist.yaml"}
	_, err := Bootstrap(cfg, quietLogger())
	assert.Error(t, err)
}

func TestBootstrap_EmptyAdminPassword(t *testing.T) {
	_, err := Bootstrap(&config.Config{BcryptCost: bcrypt.MinCost}, quietLogger())
	assert.Error(t, err)
}
