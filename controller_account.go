package adminkit

import "context"

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
// Registering does not sign the new account in; the console remains in its
// current session state.
func (c *Controller) Register(ctx context.Context, req RegisterRequest) error {
	if err := c.ready(); err != nil {
		return err
	}

	err := c.authAPI.Register(ctx, req)
	if err != nil {
		c.metrics.Inc(MetricRegisterFailure)
	} else {
		c.metrics.Inc(MetricRegisterSuccess)
	}
	c.emitAudit(AuditRegister, "", err == nil, err, map[string]string{"username": req.Username})

	return err
}

// RequestPasswordReset describes the requestpasswordreset operation and its observable behavior.
//
// RequestPasswordReset may return an error when input validation, dependency calls, or security checks fail.
func (c *Controller) RequestPasswordReset(ctx context.Context, email string) error {
	if err := c.ready(); err != nil {
		return err
	}

	err := c.authAPI.RequestPasswordReset(ctx, email)
	c.metrics.Inc(MetricPasswordResetRequest)
	c.emitAudit(AuditPasswordResetRequest, "", err == nil, err, nil)

	return err
}

// ChangePassword describes the changepassword operation and its observable behavior.
//
// ChangePassword may return an error when input validation, dependency calls, or security checks fail.
// It requires an authenticated session.
func (c *Controller) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.Status() != StatusAuthenticated {
		return ErrNotAuthenticated
	}

	err := c.authAPI.ChangePassword(ctx, req)
	if err != nil {
		c.metrics.Inc(MetricPasswordChangeFailure)
	} else {
		c.metrics.Inc(MetricPasswordChangeSuccess)
	}
	c.emitAudit(AuditPasswordChange, c.currentUserID(), err == nil, err, nil)

	return err
}
