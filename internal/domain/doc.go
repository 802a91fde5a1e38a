// Package domain defines the core business entities of the application:
// sample papers with their nested sections and questions, and the task
// records that track asynchronous text extraction.
//
// Entities validate themselves. Services call Validate after constructing
// or merging a record and never persist one that fails, so the merged-record
// check on update uses exactly the same rules as creation.
package domain
