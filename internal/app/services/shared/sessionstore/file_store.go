package sessionstore

import (
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type fileStore struct {
	path string
	key  string
	mu   sync.Mutex
	Log  *zap.Logger
}

// NewFileStore keeps credentials in a JSON document at path, one entry per
// store key, so several keys can share the same file.
func NewFileStore(path, key string, logger *zap.Logger) contracts.SessionStore {
	return &fileStore{
		path: path,
		key:  key,
		Log:  logger,
	}
}

// DefaultFilePath resolves the per-user location of the session file.
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constvars.SessionStoreDirectoryName, constvars.SessionStoreFileName), nil
}

func (s *fileStore) Save(ctx context.Context, credential models.Credential) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("fileStore.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreDriverKey, constvars.SessionStoreDriverFile),
	)

	if credential.IsEmpty() {
		return exceptions.ErrStorageWrite(errors.New("refusing to persist an empty credential"), constvars.SessionStoreDriverFile)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if errors.Is(err, errCorruptSessionFile) {
		s.Log.Warn("fileStore.Save replacing unreadable session file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		entries, err = make(map[string]credentialRecord), nil
	}
	if err != nil {
		return exceptions.ErrStorageRead(err, constvars.SessionStoreDriverFile)
	}
	entries[s.key] = newCredentialRecord(credential)

	if err := s.writeEntries(entries); err != nil {
		s.Log.Error("fileStore.Save error writing session file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, constvars.SessionStoreDriverFile)
	}
	return nil
}

func (s *fileStore) Load(ctx context.Context) (models.Credential, bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("fileStore.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreDriverKey, constvars.SessionStoreDriverFile),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if err != nil {
		s.Log.Error("fileStore.Load error reading session file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.Credential{}, false, exceptions.ErrStorageRead(err, constvars.SessionStoreDriverFile)
	}

	record, ok := entries[s.key]
	if !ok || record.Token == "" {
		return models.Credential{}, false, nil
	}
	return models.NewCredential(record.Token), true, nil
}

func (s *fileStore) Clear(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("fileStore.Clear called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreDriverKey, constvars.SessionStoreDriverFile),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readEntries()
	if errors.Is(err, errCorruptSessionFile) {
		s.Log.Warn("fileStore.Clear removing unreadable session file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		entries, err = make(map[string]credentialRecord), nil
	}
	if err != nil {
		return exceptions.ErrStorageClear(err, constvars.SessionStoreDriverFile)
	}
	if _, ok := entries[s.key]; ok {
		delete(entries, s.key)
	} else if len(entries) > 0 {
		return nil
	}

	if len(entries) == 0 {
		err = os.Remove(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
	} else {
		err = s.writeEntries(entries)
	}
	if err != nil {
		s.Log.Error("fileStore.Clear error updating session file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrStorageClear(err, constvars.SessionStoreDriverFile)
	}
	return nil
}

var errCorruptSessionFile = errors.New("session file is corrupted")

// readEntries treats a missing file as an empty document.
func (s *fileStore) readEntries() (map[string]credentialRecord, error) {
	entries := make(map[string]credentialRecord)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errCorruptSessionFile, s.path, err)
	}
	return entries, nil
}

// writeEntries replaces the file through a rename so a crash never leaves a
// half-written document behind.
func (s *fileStore) writeEntries(entries map[string]credentialRecord) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}
