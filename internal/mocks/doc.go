// Package mocks provides mock implementations of the application's
// store and service interfaces for testing.
package mocks
