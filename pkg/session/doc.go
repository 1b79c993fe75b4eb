// Package session resolves client sessions from requests.
//
// A Manager combines a Store (Redis or in-memory) with a Transport that
// carries the opaque token: the Authorization bearer header, an HttpOnly
// cookie, or both through CompositeTransport. Manager.Middleware loads the
// session into the request context; handlers read it back with FromContext
// or UserIDFromContext. A request counts as authenticated only when its
// session exists, has not expired and carries a non-empty user id.
//
//	store := session.NewRedisStore(rdb, cfg.RedisKeyPrefix)
//	mgr := session.NewFromConfig(cfg, session.WithStore(store), session.WithLogger(log))
//	defer mgr.Close()
//	r.Use(mgr.Middleware)
package session
