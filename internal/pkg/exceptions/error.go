package exceptions

import (
	"ccsed-client/internal/pkg/constvars"
	"errors"
	"fmt"
	"runtime"
)

type Kind string

const (
	KindNetwork    Kind = "NetworkFailure"
	KindAuth       Kind = "AuthFailure"
	KindValidation Kind = "ValidationFailure"
	KindServer     Kind = "ServerFailure"
	KindStorage    Kind = "StorageFailure"
	KindChannel    Kind = "ChannelFailure"
)

type CustomError struct {
	Kind          Kind     `json:"kind"`
	StatusCode    int      `json:"status_code"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s: %s (%s:%d %s)", e.Kind, e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the location of whoever called the named
// constructor in types.go, not the constructor itself.
func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		Err:           err,
	}
}

func KindOf(err error) (Kind, bool) {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind, true
	}
	return "", false
}

func IsKind(err error, kind Kind) bool {
	found, ok := KindOf(err)
	return ok && found == kind
}

// ClientMessageOf returns the message meant for the user, falling back to a
// generic one for errors that did not come through this package.
func ClientMessageOf(err error) string {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return constvars.ErrClientSomethingWrongWithApplication
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
