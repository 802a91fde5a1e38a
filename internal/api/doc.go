// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between external clients
// and the internal application services, translating HTTP concerns to
// business operations. Every endpoint, success or failure, answers with the
// shared response envelope.
package api
