// Package inventory exposes the configured inventories over HTTP.
//
// # HTTP Endpoints
//
//   - GET /inventory/documents : loaded sources with their host and group counts.
//   - GET /inventory/hosts : the resolved configuration of every host, in
//     profile order.
package inventory
