package testutils

import (
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
	"testing"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/media"
)

// MediaStorage is an in-memory media.Storage.
type MediaStorage struct {
	mu        sync.Mutex
	Objects   map[string][]byte
	versions  map[string]int
	UploadErr error
}

func NewMediaStorage() *MediaStorage {
	return &MediaStorage{Objects: map[string][]byte{}, versions: map[string]int{}}
}

func (s *MediaStorage) Upload(_ context.Context, key string, file io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UploadErr != nil {
		return s.UploadErr
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	s.Objects[key] = data
	s.versions[key]++
	return nil
}

func (s *MediaStorage) Version(_ context.Context, key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.versions[key]
	if !ok {
		return 0, errors.New("resource not found")
	}
	return v, nil
}

func (s *MediaStorage) URL(key string, format media.Format, version int) (string, error) {
	url := "https://media.test/image/upload/" + format.Transformation() + "/"
	if version > 0 {
		url += "v" + strconv.Itoa(version) + "/"
	}
	return url + key, nil
}

// NewMediaService returns a media service over a fresh in-memory storage.
func NewMediaService(t *testing.T) (*media.Service, *MediaStorage) {
	t.Helper()
	storage := NewMediaStorage()
	return media.New(media.Config{Folder: "test/"}, storage), storage
}

// PNG is a byte sequence sniffed as image/png.
var PNG = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R', 0, 0, 0, 1, 0, 0, 0, 1, 8, 6, 0, 0, 0}
