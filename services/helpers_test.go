package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/5hjiwoo/foodrecommend/config"
	"github.com/5hjiwoo/foodrecommend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB(&config.Config{
		DBDriver: "sqlite",
		DBPath:   "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

type fakeEnricher struct {
	similar    []GeneratedImage
	extraction *MealExtraction
	err        error

	gotImage       []byte
	gotContentType string
	calls          int
}

func (f *fakeEnricher) GenerateSimilar(_ context.Context, img []byte, _ string) ([]GeneratedImage, error) {
	f.calls++
	f.gotImage = img
	return f.similar, f.err
}

func (f *fakeEnricher) ExtractMeal(_ context.Context, img []byte, contentType string) (*MealExtraction, error) {
	f.calls++
	f.gotImage = img
	f.gotContentType = contentType
	if f.err != nil {
		return nil, f.err
	}
	return f.extraction, nil
}

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (m *memStorage) Save(_ context.Context, key, _ string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *memStorage) URL(key string) string {
	return "https://cdn.test/" + key
}

type recordingNotifier struct {
	userIDs  []uint
	payloads []any
}

func (r *recordingNotifier) Broadcast(userID uint, payload any) {
	r.userIDs = append(r.userIDs, userID)
	r.payloads = append(r.payloads, payload)
}
