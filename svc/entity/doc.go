// Package entity implements the tenant-scoped entity domain.
//
// A Service exposes Get, Update, Archive and Delete (plus Create for seeding).
// Every error it returns is an *Error tagged with a Kind so transports can map
// outcomes without inspecting messages:
//
//	switch entity.KindOf(err) {
//	case entity.KindNotFound, entity.KindUnauthorized:
//		// 404
//	case entity.KindConflict:
//		// 409
//	}
//
// Entities follow a soft-delete lifecycle: Archive sets status ARCHIVED and
// ArchivedAt, Delete removes the row and is refused until the entity is archived.
//
// Storage backends are PGStorage (pgx, row locks via SELECT ... FOR UPDATE)
// and MemoryStorage. CachedService adds a Redis read cache in front of any Service.
package entity
