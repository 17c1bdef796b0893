// Package middleware groups the HTTP middleware of the API.
//
//   - auth: API key validation for every protected route.
//   - rayid: a request ID on every request, stored in the Fiber context and
//     echoed in the X-Ray-ID response header for log correlation.
package middleware
