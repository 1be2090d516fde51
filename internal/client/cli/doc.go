// Package cli provides the interactive marketadmin console.
//
// It is a thin caller of the root store: every command dispatches one or
// more slice operations, renders the resulting state, then dismisses the
// slice's messages the way a toast would.
//
// Key features:
//   - Login as admin or seller, seller registration with an emailed code
//   - Products, services and categories: list, show, add, delete
//   - Sellers: active, deactivated and pending lists, status changes
//   - Orders: list, show, status changes
//   - Dashboard and analytics reports
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
