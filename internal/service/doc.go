// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features, while staying
// independent of any particular transport or storage implementation.
package service
