package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "CCSED_CLI_"
)

const (
	SessionStoreDriverFile  = "file"
	SessionStoreDriverRedis = "redis"
	DefaultSessionStoreKey  = "token"

	SessionStoreDirectoryName = "ccsed"
	SessionStoreFileName      = "session.json"
	RedisSessionKeyPrefix     = "ccsed:session:"
)

const (
	AttentionTypeInPerson = "presencial"
	AttentionTypeVirtual  = "virtual"
)
