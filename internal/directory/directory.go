// Package directory is the in-memory account directory: the account arena,
// the per-caller session slot and the role-based checks that gate every read
// and write of employee attributes.
//
// All state is owned by a Directory and guarded by a single lock. Callers
// interact through a Session obtained from NewSession and only ever receive
// copies of stored records.
package directory

import (
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hr-directory/internal/auth"
	"hr-directory/internal/domain"
	"hr-directory/internal/models"
)

// DefaultAdminName is used for the administrator created with the directory.
const DefaultAdminName = "Default Admin"

// Directory stores every account keyed by ID.
type Directory struct {
	mu    sync.RWMutex
	users map[int]models.Account

	// instance tells this directory apart from earlier runs that handed out
	// the same account IDs.
	instance string

	// employees count up from 1, administrators count down from 0
	nextEmployeeID int
	nextAdminID    int

	hasher   auth.PasswordHasher
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time

	pending []models.AuditLog
	// auditMu is taken before mu is released so entries reach the recorder
	// in the order their changes were applied.
	auditMu sync.Mutex
}

// Option configures a Directory.
type Option func(*Directory)

// WithHasher replaces the default bcrypt hasher.
func WithHasher(h auth.PasswordHasher) Option {
	return func(d *Directory) {
		d.hasher = h
	}
}

// WithRecorder sets where audit entries are sent.
func WithRecorder(r Recorder) Option {
	return func(d *Directory) {
		d.recorder = r
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Directory) {
		d.logger = l
	}
}

// New creates a directory holding a single administrator (ID 0) whose
// password is adminPassword.
func New(adminName, adminPassword string, opts ...Option) (*Directory, error) {
	d := &Directory{
		users:          make(map[int]models.Account),
		instance:       uuid.NewString(),
		nextEmployeeID: 1,
		nextAdminID:    0,
		hasher:         auth.NewBcryptHasher(0),
		recorder:       nopRecorder{},
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	if adminName == "" {
		adminName = DefaultAdminName
	}
	if err := validatePassword(adminPassword); err != nil {
		return nil, err
	}
	digest, err := d.hasher.Hash(adminPassword)
	if err != nil {
		return nil, err
	}

	admin := &models.Administrator{Identity: models.Identity{
		ID:           d.takeAdminID(),
		Name:         adminName,
		PasswordHash: digest,
	}}
	d.users[admin.ID] = admin
	d.logger.Info("directory created", "admin_id", admin.ID)
	return d, nil
}

// InstanceID identifies this directory among every directory ever created.
func (d *Directory) InstanceID() string {
	return d.instance
}

// NewSession returns an anonymous session bound to the directory.
func (d *Directory) NewSession() *Session {
	return &Session{d: d}
}

// Size returns the number of stored accounts.
func (d *Directory) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

func (d *Directory) takeEmployeeID() int {
	id := d.nextEmployeeID
	d.nextEmployeeID++
	return id
}

func (d *Directory) takeAdminID() int {
	id := d.nextAdminID
	d.nextAdminID--
	return id
}

func (d *Directory) lookup(id int) (models.Account, error) {
	acct, ok := d.users[id]
	if !ok {
		return nil, domain.ErrNotFound("no user found with ID %d", id)
	}
	return acct, nil
}

func (d *Directory) snapshot() []models.Account {
	out := make([]models.Account, 0, len(d.users))
	for _, acct := range d.users {
		out = append(out, acct.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID() < out[j].AccountID() })
	return out
}

// lock takes the write lock; the returned func releases it and then hands
// queued audit entries to the recorder outside the lock. Flushes are
// serialized in lock order.
func (d *Directory) lock() func() {
	d.mu.Lock()
	return func() {
		entries := d.pending
		d.pending = nil
		d.auditMu.Lock()
		d.mu.Unlock()
		defer d.auditMu.Unlock()

		for _, e := range entries {
			if err := d.recorder.Record(e); err != nil {
				d.logger.Warn("audit record failed", "action", e.Action, "error", err)
			}
		}
	}
}

// audit queues an entry; must be called with the write lock held.
func (d *Directory) audit(actor *int, entity string, target *int, action, details string) {
	d.pending = append(d.pending, models.AuditLog{
		ID:         uuid.NewString(),
		InstanceID: d.instance,
		CreatedAt:  d.now(),
		ActorID:    actor,
		Entity:     entity,
		TargetID:   target,
		Action:     action,
		Details:    details,
	})
}

func validatePassword(password string) error {
	if password == "" {
		return domain.ErrValidation("the given password must be a non-empty string")
	}
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.ErrValidation("name must not be blank")
	}
	return nil
}

func intPtr(v int) *int {
	return &v
}
