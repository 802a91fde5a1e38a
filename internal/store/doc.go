// Package store defines the persistence interfaces of the application and
// the error taxonomy their implementations share.
//
// The document store is the system of record for papers and tasks; the
// cache holds a best-effort denormalized copy of paper content only.
// Implementations live under internal/platform and must translate driver
// errors into the sentinel errors declared here so callers can react with
// errors.Is without importing driver packages.
package store
