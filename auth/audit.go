package auth

import (
	"github.com/sirupsen/logrus"
)

const auditLogMessage = "audit trail"

// AuditLog logs authorization decisions to a logrus.Logger. There is no
// separate authentication event here: the frontend trusts its caller's
// asserted Session, so only authorization outcomes are recorded.
type AuditLog struct {
	log *logrus.Entry
}

// NewAuditLog wraps l with the "system=audit" field.
func NewAuditLog(l *logrus.Logger) *AuditLog {
	return &AuditLog{log: l.WithField("system", "audit")}
}

// Authorization logs one permission check's outcome.
func (a *AuditLog) Authorization(sess Session, action string, err error) {
	fields := logrus.Fields{
		"action":  action,
		"role":    sess.Role.String(),
		"success": err == nil,
	}
	if err != nil {
		fields["err"] = err
	}
	a.log.WithFields(fields).Info(auditLogMessage)
}

// CheckAudited runs Check and logs the outcome through a, the call
// validators make instead of calling Check directly once auditing is wired.
func (a *AuditLog) CheckAudited(sess Session, p Precondition, action string) error {
	err := Check(sess, p, action)
	a.Authorization(sess, action, err)
	return err
}
