// Package store defines the persistence interfaces for the rental
// portal's entities, the sentinel errors implementations surface, and
// shared database plumbing (DBTX, transactions). Implementations live
// under internal/platform.
package store
