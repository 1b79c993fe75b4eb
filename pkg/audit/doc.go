// Package audit records who changed what.
//
// A Logger fills tenant, user, request id and client IP from the context via
// extractors, applies EventOptions and hands the Event to a Storage:
//
//	auditLog := audit.NewLogger(audit.NewPGStorage(pool),
//		audit.WithRequestIDExtractor(func(ctx context.Context) (string, bool) {
//			id := requestid.FromContext(ctx)
//			return id, id != ""
//		}),
//	)
//	_ = auditLog.Log(ctx, "entity.archive", audit.WithResource("entity", id))
//
// Explicit WithTenantID and WithUserID options win over the extractors.
package audit
