package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"shopadmin/db"
	"shopadmin/media"
	"shopadmin/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeUploader answers with a URL derived from the payload. Payloads listed
// in fail are rejected with the mapped error.
type fakeUploader struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]error
}

func (f *fakeUploader) Upload(_ context.Context, encoded string, _ ...media.UploadOption) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, encoded)
	if err, ok := f.fail[encoded]; ok {
		return "", err
	}
	return "https://img.test/" + encoded, nil
}

func (f *fakeUploader) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingNotifier) Publish(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingNotifier) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

type fixture struct {
	db       *gorm.DB
	uploader *fakeUploader
	notifier *recordingNotifier
	catalog  *Catalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.Migrate(conn))

	f := &fixture{
		db:       conn,
		uploader: &fakeUploader{fail: map[string]error{}},
		notifier: &recordingNotifier{},
	}
	f.catalog = New(conn, f.uploader, f.notifier, zerolog.Nop())
	return f
}

func (f *fixture) seedCategory(t *testing.T, name string) models.Category {
	t.Helper()
	c := models.Category{Name: name, Image: "https://img.test/" + name}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f *fixture) seedSubCategory(t *testing.T, name string, categoryID uint) models.SubCategory {
	t.Helper()
	s := models.SubCategory{Name: name, CategoryID: categoryID}
	require.NoError(t, f.db.Create(&s).Error)
	return s
}

func (f *fixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

var (
	errUpstream = &media.UploadError{Message: "Invalid image file"}
	errTimeout  = &media.UploadError{Timeout: true, Message: "upload timed out"}
)

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want ValidationError, got %v", err)
	require.Equal(t, field, verr.Field)
}
