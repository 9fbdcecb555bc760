package directory

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hr-directory/internal/auth"
	"hr-directory/internal/models"
)

const adminPassword = "P"

func newTestDirectory(t *testing.T) (*Directory, *MemoryRecorder) {
	t.Helper()
	rec := NewMemoryRecorder()
	d, err := New("", adminPassword,
		WithHasher(auth.NewBcryptHasher(bcrypt.MinCost)),
		WithRecorder(rec),
	)
	require.NoError(t, err)
	return d, rec
}

func adminSession(t *testing.T, d *Directory) *Session {
	t.Helper()
	s := d.NewSession()
	require.NoError(t, s.LogIn(0, adminPassword))
	return s
}

// addEmployee creates an employee whose password is "pw-" + name.
func addEmployee(t *testing.T, admin *Session, typ models.UserType, name string, inHR bool) int {
	t.Helper()
	acct, err := admin.AddEmployee(NewEmployee{
		Type:             typ,
		Name:             name,
		Password:         "pw-" + name,
		InHumanResources: inHR,
	})
	require.NoError(t, err)
	return acct.AccountID()
}

func sessionAs(t *testing.T, d *Directory, id int, name string) *Session {
	t.Helper()
	s := d.NewSession()
	require.NoError(t, s.LogIn(id, "pw-"+name))
	return s
}
