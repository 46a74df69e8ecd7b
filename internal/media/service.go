// Package media names uploaded assets and derives their display URLs.
//
// Only the opaque identifier is persisted; the storage key (folder +
// identifier) is rebuilt on every provider call so stored identifiers survive
// folder configuration changes.
package media

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUploadFailed is returned when the provider did not accept a file.
var ErrUploadFailed = errors.New("media upload failed")

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Folder  string
	Timeout time.Duration
}

type Service struct {
	folder  string
	timeout time.Duration
	storage Storage
	newID   func() string
}

func New(cfg Config, storage Storage) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Service{
		folder:  cfg.Folder,
		timeout: timeout,
		storage: storage,
		newID:   NewIdentifier,
	}
}

// NewIdentifier returns 128 random bits, hex encoded.
func NewIdentifier() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Key is the provider-side storage key for identifier.
func (s *Service) Key(identifier string) string {
	return s.folder + identifier
}

// Upload stores file under a fresh identifier and returns the identifier.
func (s *Service) Upload(ctx context.Context, file io.Reader) (string, error) {
	identifier := s.newID()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.storage.Upload(ctx, s.Key(identifier), file); err != nil {
		logger.L.Warn("media upload failed", zap.String("identifier", identifier), zap.Error(err))
		return "", ErrUploadFailed
	}
	return identifier, nil
}

// URL derives the display URL locally, without contacting the provider.
func (s *Service) URL(identifier string, format Format) (string, error) {
	return s.storage.URL(s.Key(identifier), format, 0)
}

// Resolve looks the asset up remotely and returns its versioned display URL.
// ok is false when the asset cannot be resolved.
func (s *Service) Resolve(ctx context.Context, identifier string, format Format) (string, bool) {
	if identifier == "" {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := s.Key(identifier)
	version, err := s.storage.Version(ctx, key)
	if err != nil {
		logger.L.Info("media asset not resolved", zap.String("key", key), zap.Error(err))
		return "", false
	}
	url, err := s.storage.URL(key, format, version)
	if err != nil {
		logger.L.Warn("media url build failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return url, true
}
