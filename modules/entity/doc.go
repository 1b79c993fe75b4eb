// Package entity serves the /entities/{id} resource over HTTP.
//
// Every operation runs the same steps in order: authenticate the caller,
// resolve the tenant, validate the payload (PATCH only), call the entity
// service and render the JSON envelope.
//
//	GET    /entities/{id}                  200 {"success":true,"data":{...}}
//	PATCH  /entities/{id}                  200 {"success":true,"data":{...}}
//	DELETE /entities/{id}                  200 {"success":true,"message":"Entity archived"}
//	DELETE /entities/{id}?permanent=true   200 {"success":true,"message":"Entity deleted"}
//
// Failures render {"error":"...","details":[...]}:
//
//	401 Unauthorized               no valid session
//	400 Validation error           invalid body, details list every field
//	404 Not found or unauthorized  missing entity, foreign tenant or denied access
//	409 <reason>                   state conflict, e.g. deleting an unarchived entity
//	500 Internal server error      anything else; the cause is logged, never returned
//
// Handler.Get, Handler.Update and Handler.Delete take the Caller explicitly so
// they can be driven without an HTTP session; Handle wires them to chi and
// derives the Caller from pkg/session.
package entity
