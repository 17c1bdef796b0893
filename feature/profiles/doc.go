// Package profiles exposes the profile store and sync runs over HTTP.
//
// # HTTP Endpoints
//
//   - GET /profiles : persisted profile records.
//   - GET /profiles/plan : what a sync would do, without writing.
//   - POST /profiles/sync : run a sync and persist the result. When the sync
//     would drop profiles the request fails with 409 unless ?confirm=true.
//
// The sync endpoint is not registered when the server runs read-only.
// Concurrent identical sync requests share one run; different requests are
// serialized so the store sees one writer at a time.
package profiles
