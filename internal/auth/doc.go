// Package auth provides authentication and authorization functionality for the console.
//
// Authentication is local only: users log in with email and password,
// verified against an Argon2id hash, and receive an opaque bearer token
// whose session holds their profile and module/permission tree.
//
// # Authorization Model
//
// Authorization is driven entirely by the module/permission tree issued at
// login and stored in the session:
//   - A user is assigned one profile
//   - A profile grants a set of modules (a forest via parent references)
//   - Modules carry permissions, identified by their description
//   - Permission checks walk the session's tree, never the database
//
// The session data is the single source of authorization truth after
// login; a permission check against an absent or malformed session always
// answers false instead of failing.
//
// # Permission Checking
//
// Package-level functions evaluate the session data:
//   - HasPermission: check one permission description
//   - HasAnyPermission: at least one of several
//   - HasAllPermissions: all of several
//   - GetSessionPermissions: flat list of everything held, in flatten order
//
// # Middleware
//
// Fiber middleware functions are provided for route protection:
//   - RequireAuthenticated: any valid session
//   - RequirePermission: a specific permission
//   - RequireAnyPermission: any of several permissions
//
// Example usage:
//
//	app.Get("/api/usuarios",
//	    auth.RequirePermission(auth.PermUsersView),
//	    handler,
//	)
package auth
