// Package autosave keeps in-progress form drafts so that a reload or a lost
// connection does not cost the member what they already typed.
//
// A Draft is the set of field values of one form, identified by the form's
// autosave id. Drafts are written on every edit, read back when the form is
// rendered again and deleted when the form is submitted. Stores keep them
// under the key "form_<id>" (optionally namespaced with WithPrefix).
//
// Password inputs are never persisted and never restored: Snapshot drops them
// when a draft is built and Restore ignores them when one is applied.
//
// Two Store implementations are provided: MemoryStore for tests and single
// process deployments, and RedisStore backed by go-redis. Both honour an
// optional TTL (WithTTL) and stamp SavedAt from the configured clock.
//
//	store := autosave.NewRedisStore(client, autosave.WithTTL(24*time.Hour))
//	_ = store.Save(ctx, autosave.Snapshot("member", fields))
//	draft, err := store.Load(ctx, "member")
//	if errors.Is(err, autosave.ErrDraftNotFound) {
//	    // nothing to restore
//	}
package autosave
