package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/migrations"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// ── shared fixtures ──

type seqIDs struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func (s *seqIDs) Generate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("%s-%03d", s.prefix, s.next)
}

// testClock is a settable clock shared by a test and its DB.
type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// newMockDB returns a Postgres-flavoured DB over sqlmock with
// deterministic IDs and a frozen clock.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := newDB(conn, migrations.Postgres, NewPostgresErrorClassifier(), logger.Nop())
	db.ids = &seqIDs{prefix: "id"}
	db.now = func() time.Time { return baseTime }
	return db, mock
}

// newSQLiteDB opens a migrated SQLite database in a temp dir.
func newSQLiteDB(t *testing.T) (*DB, *testClock) {
	t.Helper()

	ctx := context.Background()
	cfg := config.DB{DSN: "sqlite://" + filepath.Join(t.TempDir(), "clip.db")}

	db, err := NewConnect(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(ctx))

	clock := &testClock{t: baseTime}
	db.now = clock.Now
	return db, clock
}

type fixture struct {
	db      *DB
	clock   *testClock
	repos   *Repositories
	user    models.User
	devices []models.Device
}

// newFixture seeds one user with n active devices.
func newFixture(t *testing.T, n int) *fixture {
	t.Helper()

	db, clock := newSQLiteDB(t)
	repos := NewRepositories(db, logger.Nop())
	ctx := context.Background()

	user, err := repos.Users.CreateUser(ctx, models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "x"})
	require.NoError(t, err)

	f := &fixture{db: db, clock: clock, repos: repos, user: user}
	for i := 1; i <= n; i++ {
		d, err := repos.Devices.FindOrCreate(ctx, models.Device{
			UserID:     user.UserID,
			Name:       fmt.Sprintf("D%d", i),
			Identifier: fmt.Sprintf("device-%d", i),
			Type:       models.DeviceLinux,
		})
		require.NoError(t, err)
		f.devices = append(f.devices, d)
		clock.Advance(time.Millisecond)
	}
	return f
}

func (f *fixture) deviceID(i int) string {
	return f.devices[i].DeviceID
}

func (f *fixture) createItem(t *testing.T, origin int, expireAt *time.Time) models.ClipboardItem {
	t.Helper()

	item, err := f.repos.Clipboard.Create(context.Background(), models.ClipboardItem{
		UserID:         f.user.UserID,
		OriginDeviceID: f.deviceID(origin),
		ContentType:    models.ContentText,
		PayloadRef:     "hello",
		ExpireAt:       expireAt,
	})
	require.NoError(t, err)
	f.clock.Advance(time.Millisecond)
	return item
}
