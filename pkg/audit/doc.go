// Package audit persists a durable delivery record for every dispatched
// notification. The dispatch layer itself never fails the caller, so the
// audit trail is the only place where per-channel outcomes survive beyond
// the request that produced them.
//
// Two Store implementations are provided: PostgresStore for production and
// MemoryStore for tests and local development. Both record the merged
// outcome of a dispatch: which channels were attempted, the vendor message
// ids on success and the error details on failure.
//
//	store := audit.NewMemoryStore()
//	entry := audit.NewEntry(userID, appointmentID, req, outcome)
//	if err := store.Record(ctx, entry); err != nil {
//	    // delivery already happened; log and move on
//	}
package audit
