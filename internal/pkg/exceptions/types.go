package exceptions

import (
	"ccsed-client/internal/pkg/constvars"
	"fmt"
)

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotMarshalJSON)
	}

	// HTTP transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, 0, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, 0, constvars.ErrClientCannotReachServer, constvars.ErrDevSendHTTPRequest)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrReadHTTPResponse = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, 0, constvars.ErrClientCannotReachServer, constvars.ErrDevReadHTTPResponse)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindServer, constvars.StatusBadGateway, constvars.ErrClientServerError, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}

	// Backend status classification
	ErrBackendUnauthorized = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, KindAuth, statusCode, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevBackendRejected, resource, statusCode))
	}
	ErrInvalidCredentials = func(err error, statusCode int) *CustomError {
		return BuildNewCustomError(err, KindAuth, statusCode, constvars.ErrClientInvalidCredentials, constvars.ErrDevAuthCredentialRejected)
	}
	ErrBackendValidation = func(err error, statusCode int, serverMessage, resource string) *CustomError {
		clientMessage := serverMessage
		if clientMessage == "" {
			clientMessage = constvars.ErrClientCannotProcessRequest
		}
		return BuildNewCustomError(err, KindValidation, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendRejected, resource, statusCode))
	}
	ErrBackendServer = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, KindServer, statusCode, constvars.ErrClientServerError, fmt.Sprintf(constvars.ErrDevBackendFailed, resource, statusCode))
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientTokenUnavailable, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenMalformed = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientTokenUnavailable, constvars.ErrDevAuthTokenMalformed)
	}
	ErrTokenDivergent = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadGateway, constvars.ErrClientTokenDivergent, constvars.ErrDevAuthTokenDivergent)
	}
	ErrCredentialAbsent = func(err error) *CustomError {
		return BuildNewCustomError(err, KindAuth, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevCredentialAbsent)
	}

	// Session store
	ErrStorageRead = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientStorageUnavailable, fmt.Sprintf(constvars.ErrDevStorageRead, driver))
	}
	ErrStorageWrite = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientStorageUnavailable, fmt.Sprintf(constvars.ErrDevStorageWrite, driver))
	}
	ErrStorageClear = func(err error, driver string) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientStorageUnavailable, fmt.Sprintf(constvars.ErrDevStorageClear, driver))
	}

	// Realtime channel
	ErrChannelDial = func(err error) *CustomError {
		return BuildNewCustomError(err, KindChannel, 0, constvars.ErrClientChannelUnavailable, constvars.ErrDevChannelDial)
	}
	ErrChannelHandshake = func(err error) *CustomError {
		return BuildNewCustomError(err, KindChannel, 0, constvars.ErrClientChannelUnavailable, constvars.ErrDevChannelHandshake)
	}
	ErrChannelNotConnected = func(err error) *CustomError {
		return BuildNewCustomError(err, KindChannel, 0, constvars.ErrClientChannelUnavailable, constvars.ErrDevChannelNotConnected)
	}
	ErrChannelWrite = func(err error) *CustomError {
		return BuildNewCustomError(err, KindChannel, 0, constvars.ErrClientChannelUnavailable, constvars.ErrDevChannelWrite)
	}

	// Reservations
	ErrReservationNotFound = func(err error, reservationID string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusNotFound, constvars.ErrClientReservationNotFound, fmt.Sprintf(constvars.ErrDevReservationNotFound, reservationID))
	}
	ErrReservationAlreadyResolved = func(err error, reservationID string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusConflict, constvars.ErrClientReservationAlreadyResolved, fmt.Sprintf(constvars.ErrDevReservationResolved, reservationID))
	}

	// Directory
	ErrUnsupportedDirectoryKind = func(err error, kind string) *CustomError {
		return BuildNewCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnsupportedDirectoryKind, kind))
	}
)
