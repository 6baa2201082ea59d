package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingOperationKey     = "operation"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingErrorKindKey     = "error_kind"
	LoggingEndpointKey      = "endpoint"
	LoggingMethodKey        = "method"
	LoggingStatusCodeKey    = "status_code"
	LoggingResponseCountKey = "response_count"
	LoggingReservationIDKey = "reservation_id"
	LoggingEventKey         = "event"
	LoggingStateKey         = "state"
	LoggingStoreDriverKey   = "store_driver"
)
