package worker

import (
	"github.com/Rodger11/geo-reconexion/internal/service"
)

// StartAuditWorker registers audit-log handlers on the dispatcher.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
