package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"oneof":          "must be one of: %s",
	"attention_type": "must be either presencial or virtual",
	"phone_digits":   "must be a valid phone number",
}

// Tags whose message embeds the tag parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientCannotReachServer             = "could not reach the server, please try again"
	ErrClientServerLongRespond             = "the server is taking too long to respond"
	ErrClientServerError                   = "the server could not process the request, please try again later"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidCredentials            = "invalid email or password"
	ErrClientTokenUnavailable              = "could not obtain a session token"
	ErrClientTokenDivergent                = "the server returned an inconsistent session, please login again"
	ErrClientStorageUnavailable            = "local storage is unavailable"
	ErrClientReservationsUnavailable       = "could not load your reservations, please try again"
	ErrClientReservationNotFound           = "reservation not found"
	ErrClientReservationAlreadyResolved    = "this reservation was already attended"
	ErrClientChannelUnavailable            = "live notifications are unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevReadHTTPResponse         = "failed to read HTTP response"
	ErrDevDecodeResponse           = "failed to decode %s response"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevBackendRejected          = "backend rejected %s request with status %d"
	ErrDevBackendFailed            = "backend failed %s request with status %d"
	ErrDevAuthTokenMissing         = "token missing from login response"
	ErrDevAuthTokenMalformed       = "token in login response is malformed"
	ErrDevAuthTokenDivergent       = "token in login body differs from token in set-cookie"
	ErrDevAuthCredentialRejected   = "credential rejected by backend"
	ErrDevCredentialAbsent         = "no credential stored"
	ErrDevStorageRead              = "failed to read credential from %s store"
	ErrDevStorageWrite             = "failed to write credential to %s store"
	ErrDevStorageClear             = "failed to clear credential from %s store"
	ErrDevChannelDial              = "failed to dial realtime endpoint"
	ErrDevChannelHandshake         = "realtime handshake failed"
	ErrDevChannelNotConnected      = "realtime channel is not connected"
	ErrDevChannelWrite             = "failed to write realtime packet"
	ErrDevReservationNotFound      = "reservation %s not found in loaded list"
	ErrDevReservationResolved      = "reservation %s is already resolved"
	ErrDevUnsupportedDirectoryKind = "unsupported directory kind %q"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
