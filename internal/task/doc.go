// Package task manages background job queuing, processing, and lifecycle.
// It provides mechanisms for asynchronous execution of long-running operations
// like extracting text from uploaded documents, ensuring they don't block
// HTTP request handling.
package task
