package adminkit

import (
	"time"
)

// Audit event types emitted by the controller.
const (
	// AuditLoginSuccess is an exported constant or variable used by the admin console controller.
	AuditLoginSuccess = "login_success"
	// AuditLoginFailure is an exported constant or variable used by the admin console controller.
	AuditLoginFailure = "login_failure"
	// AuditLoginRoleRejected is an exported constant or variable used by the admin console controller.
	AuditLoginRoleRejected = "login_role_rejected"
	// AuditLogout is an exported constant or variable used by the admin console controller.
	AuditLogout = "logout"
	// AuditSessionUnauthorized is an exported constant or variable used by the admin console controller.
	AuditSessionUnauthorized = "session_unauthorized"
	// AuditSessionHydrated is an exported constant or variable used by the admin console controller.
	AuditSessionHydrated = "session_hydrated"
	// AuditRegister is an exported constant or variable used by the admin console controller.
	AuditRegister = "account_register"
	// AuditPasswordResetRequest is an exported constant or variable used by the admin console controller.
	AuditPasswordResetRequest = "password_reset_request"
	// AuditPasswordChange is an exported constant or variable used by the admin console controller.
	AuditPasswordChange = "password_change"
)

func (c *Controller) emitAudit(eventType, userID string, success bool, opErr error, metadata map[string]string) {
	if c == nil || c.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		UserID:    userID,
		Success:   success,
		Metadata:  metadata,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}

	c.audit.Emit(event)
}
