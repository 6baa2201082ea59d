package sessionstore

import (
	"ccsed-client/internal/app/contracts"
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/constvars"
	"ccsed-client/internal/pkg/exceptions"
	"context"
	"errors"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type redisStore struct {
	redisRepo contracts.RedisRepository
	key       string
	Log       *zap.Logger
}

// NewRedisStore keeps the credential under a namespaced redis key with no
// expiry; the backend decides when a token stops being valid.
func NewRedisStore(repo contracts.RedisRepository, key string, logger *zap.Logger) contracts.SessionStore {
	return &redisStore{
		redisRepo: repo,
		key:       constvars.RedisSessionKeyPrefix + key,
		Log:       logger,
	}
}

func (s *redisStore) Save(ctx context.Context, credential models.Credential) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("redisStore.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreDriverKey, constvars.SessionStoreDriverRedis),
	)

	if credential.IsEmpty() {
		return exceptions.ErrStorageWrite(errors.New("refusing to persist an empty credential"), constvars.SessionStoreDriverRedis)
	}

	if err := s.redisRepo.Set(ctx, s.key, newCredentialRecord(credential), 0); err != nil {
		s.Log.Error("redisStore.Save error calling redisRepo.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrStorageWrite(err, constvars.SessionStoreDriverRedis)
	}
	return nil
}

func (s *redisStore) Load(ctx context.Context) (models.Credential, bool, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("redisStore.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreDriverKey, constvars.SessionStoreDriverRedis),
	)

	raw, found, err := s.redisRepo.Get(ctx, s.key)
	if err != nil {
		s.Log.Error("redisStore.Load error calling redisRepo.Get",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return models.Credential{}, false, exceptions.ErrStorageRead(err, constvars.SessionStoreDriverRedis)
	}
	if !found {
		return models.Credential{}, false, nil
	}

	var record credentialRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return models.Credential{}, false, exceptions.ErrStorageRead(err, constvars.SessionStoreDriverRedis)
	}
	if record.Token == "" {
		return models.Credential{}, false, nil
	}
	return models.NewCredential(record.Token), true, nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Debug("redisStore.Clear called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStoreDriverKey, constvars.SessionStoreDriverRedis),
	)

	if err := s.redisRepo.Delete(ctx, s.key); err != nil {
		s.Log.Error("redisStore.Clear error calling redisRepo.Delete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrStorageClear(err, constvars.SessionStoreDriverRedis)
	}
	return nil
}
