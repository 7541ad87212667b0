package service

import (
	"context"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/repository/storage"
	"github.com/dafibh/kasboek/kasboek-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// BackupURLExpiry is how long a generated download link stays valid
const BackupURLExpiry = 15 * time.Minute

// DocumentSource provides the documents a backup copies
type DocumentSource interface {
	Documents() ([]string, error)
	Open(name string) ([]byte, error)
}

// BackupService copies the data directory to object storage
type BackupService struct {
	documents      DocumentSource
	objectStore    storage.ObjectStore
	prefix         string
	eventPublisher websocket.EventPublisher
	now            func() time.Time
}

// NewBackupService creates a new BackupService. objectStore may be nil, in which case every
// operation returns domain.ErrBackupNotConfigured.
func NewBackupService(documents DocumentSource, objectStore storage.ObjectStore, prefix string) *BackupService {
	return &BackupService{
		documents:   documents,
		objectStore: objectStore,
		prefix:      strings.Trim(prefix, "/"),
		now:         time.Now,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BackupService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// Enabled reports whether an object store is configured
func (s *BackupService) Enabled() bool {
	return s.objectStore != nil
}

// BackupResult describes one completed backup
type BackupResult struct {
	ID        string    `json:"id"`
	Documents []string  `json:"documents"`
	Bytes     int64     `json:"bytes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Run uploads every document under a new backup id. Documents are read under their store lock
// one at a time, so each copy is consistent on its own.
func (s *BackupService) Run(ctx context.Context) (*BackupResult, error) {
	if !s.Enabled() {
		return nil, domain.ErrBackupNotConfigured
	}

	names, err := s.documents.Documents()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	result := &BackupResult{
		ID:        storage.BackupID(now),
		Documents: make([]string, 0, len(names)),
		CreatedAt: now,
	}

	for _, name := range names {
		data, err := s.documents.Open(name)
		if err != nil {
			return nil, err
		}
		key := storage.BackupKey(s.prefix, now, name)
		if err := s.objectStore.Upload(ctx, key, data, "application/json"); err != nil {
			return nil, err
		}
		result.Documents = append(result.Documents, name)
		result.Bytes += int64(len(data))
	}

	log.Info().
		Str("backup_id", result.ID).
		Int("documents", len(result.Documents)).
		Int64("bytes", result.Bytes).
		Msg("Backup completed")

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.BackupCompleted(result))
	}
	return result, nil
}

// List returns the stored backups, newest first
func (s *BackupService) List(ctx context.Context) ([]*BackupResult, error) {
	if !s.Enabled() {
		return nil, domain.ErrBackupNotConfigured
	}

	listPrefix := ""
	if s.prefix != "" {
		listPrefix = s.prefix + "/"
	}
	objects, err := s.objectStore.List(ctx, listPrefix)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*BackupResult)
	for _, obj := range objects {
		rel := strings.TrimPrefix(obj.Key, listPrefix)
		id, doc, ok := strings.Cut(rel, "/")
		if !ok || doc == "" || strings.Contains(doc, "/") {
			continue
		}
		b, exists := byID[id]
		if !exists {
			b = &BackupResult{ID: id, CreatedAt: obj.LastModified}
			if t, err := time.Parse("20060102T150405Z", id); err == nil {
				b.CreatedAt = t
			}
			byID[id] = b
		}
		b.Documents = append(b.Documents, doc)
		b.Bytes += obj.Size
	}

	result := make([]*BackupResult, 0, len(byID))
	for _, b := range byID {
		sort.Strings(b.Documents)
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

// DownloadURL returns a presigned link to one document of a backup
func (s *BackupService) DownloadURL(ctx context.Context, backupID, document string) (string, error) {
	if !s.Enabled() {
		return "", domain.ErrBackupNotConfigured
	}
	if backupID == "" || document == "" || strings.Contains(backupID, "/") || strings.Contains(document, "/") || document == ".." || backupID == ".." {
		return "", domain.ErrInvalidInput
	}
	return s.objectStore.GeneratePresignedURL(ctx, path.Join(s.prefix, backupID, document), BackupURLExpiry)
}
