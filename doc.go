// Package main provides the entry point for the GoRetail-Admin console.
// It initializes and runs a web service using the Fiber framework that
// exposes the JSON API consumed by the retail admin SPA: login and token
// verification, the per-user navigation menu, module administration and
// the permission-gated page routes. The application uses gorm for data
// persistence and a token-keyed session store for the logged-in user's
// profile and module/permission tree.
package main
