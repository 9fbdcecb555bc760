package database

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"hr-directory/internal/models"
)

func openTestStore(t *testing.T) *AuditStore {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := Connect(sqlite.Open(dsn), 1, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewAuditStore(db)
}

const testInstance = "instance-a"

func entry(action string, target int, at time.Time) models.AuditLog {
	actor := 0
	return models.AuditLog{
		ID:         uuid.NewString(),
		InstanceID: testInstance,
		CreatedAt:  at,
		ActorID:    &actor,
		Entity:     "user",
		TargetID:   &target,
		Action:     action,
	}
}

func TestAuditStore_RecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(entry("create", 1, base)))
	require.NoError(t, store.Record(entry("set_salary", 1, base.Add(time.Minute))))
	require.NoError(t, store.Record(entry("create", 2, base.Add(2*time.Minute))))

	logs, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 2, *logs[0].TargetID)
	assert.Equal(t, "set_salary", logs[1].Action)
}

func TestAuditStore_ForTarget(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(entry("create", 1, base)))
	require.NoError(t, store.Record(entry("create", 2, base.Add(time.Minute))))
	require.NoError(t, store.Record(entry("promote", 1, base.Add(2*time.Minute))))

	logs, err := store.ForTarget(testInstance, 1)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "create", logs[0].Action)
	assert.Equal(t, "promote", logs[1].Action)
}

func TestAuditStore_ForTargetIsScopedToInstance(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	earlier := entry("create", 1, base)
	earlier.InstanceID = "instance-old"
	require.NoError(t, store.Record(earlier))
	require.NoError(t, store.Record(entry("create", 1, base.Add(time.Hour))))

	logs, err := store.ForTarget(testInstance, 1)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, testInstance, logs[0].InstanceID)

	all, err := store.Recent(10)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAuditStore_DuplicateID(t *testing.T) {
	store := openTestStore(t)
	e := entry("create", 1, time.Now())

	require.NoError(t, store.Record(e))
	assert.Error(t, store.Record(e))
}
