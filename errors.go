package adminkit

import "errors"

var (
	// ErrControllerNotReady is an exported constant or variable used by the admin console controller.
	ErrControllerNotReady = errors.New("controller not initialized")
	// ErrControllerClosed is an exported constant or variable used by the admin console controller.
	ErrControllerClosed = errors.New("controller closed")
	// ErrNotAuthenticated is an exported constant or variable used by the admin console controller.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrLoginTokenMissing is an exported constant or variable used by the admin console controller.
	ErrLoginTokenMissing = errors.New("login response missing access token")
)
