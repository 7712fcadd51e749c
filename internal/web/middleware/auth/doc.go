// Package auth provides the session guard middleware.
//
// The guard runs before any protected handler: requests without a live
// session token are rejected with 401 before a single byte of protected
// content is produced. Per-permission checks happen later, at the route
// or dispatcher level.
package auth
