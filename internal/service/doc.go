// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects, the document
// store, the paper cache, and the background task queue to fulfill
// application features.
//
// Error handling principles:
//
//  1. Service methods return sentinel errors for expected error conditions
//  2. Unexpected errors are wrapped in service-specific error types
//  3. Callers use errors.Is/errors.As to check for specific error conditions
//  4. The API layer maps service errors to appropriate HTTP status codes
package service
