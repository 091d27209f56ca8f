// Package models defines the core domain models for Total Manager.
//
// # Models
//
//   - Group: a named container owned by one user
//   - Collection: a payment collection inside a group, with a due date and target amount
//   - Member: a tracked participant's read/paid state within a collection (not a user account)
//   - EventLog: an append-only audit entry for a collection
//   - Reminder: a user-scoped scheduled notification, optionally tied to a collection
//   - User, UserSettings, PaymentMethod: account data scoped to one user
//
// # Conventions
//
//  1. IDs are time-sortable strings produced by package ids
//  2. Timestamps are Unix seconds; nullable timestamps are *int64
//  3. Relationships use ID strings, never pointers
//  4. Enumerations are closed string types; Parse* functions reject unknown values
package models
