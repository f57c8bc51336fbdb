// Package dataset implements the reactive dataset layer: a remote,
// path-addressed Store of workspace data, and a Cache that components
// subscribe to for change notifications.
//
// The Cache keeps one entry per (workspace, path) key holding the dataset's
// bytes and content hash. Writes are optimistic: the local entry is updated
// first, then the remote write is issued, and on failure the previous value
// and hash are restored and the error returned. Concurrent preloads of the
// same key share a single in-flight fetch. Polling is grouped per workspace
// behind one shared timer that compares content hashes and re-fetches full
// content only on change.
//
// Change notifications are coalesced per flush cycle. Inside Batch they are
// delivered once when the outermost batch completes; outside a batch,
// delivery is deferred through the cache's Scheduler. Each flush increments
// a monotonic version per changed key and a global version.
package dataset
