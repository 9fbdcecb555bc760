package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-directory/internal/models"
)

func TestMemoryRecorder_RecentAndForTarget(t *testing.T) {
	d, rec := newTestDirectory(t)
	admin := adminSession(t, d)
	e := addEmployee(t, admin, models.TypeStandard, "E", false)
	m := addEmployee(t, admin, models.TypeManager, "M", false)
	require.NoError(t, admin.SetSalary(e, 10))
	require.NoError(t, admin.PromoteToManager(e))

	recent, err := rec.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "promote", recent[0].Action)
	assert.Equal(t, "set_salary", recent[1].Action)

	history, err := rec.ForTarget(d.InstanceID(), e)
	require.NoError(t, err)
	var actions []string
	for _, entry := range history {
		actions = append(actions, entry.Action)
	}
	assert.Equal(t, []string{"create", "set_salary", "promote"}, actions)

	mHistory, err := rec.ForTarget(d.InstanceID(), m)
	require.NoError(t, err)
	assert.Len(t, mHistory, 1)

	other, err := rec.ForTarget("another-instance", e)
	require.NoError(t, err)
	assert.Empty(t, other)

	none, err := rec.Recent(-1)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecorder_DeniedCallsAreNotAudited(t *testing.T) {
	d, rec := newTestDirectory(t)
	anon := d.NewSession()

	_, err := anon.AddAdministrator("x", "y")
	require.Error(t, err)
	assert.Empty(t, rec.Entries())
}
