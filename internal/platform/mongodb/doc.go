// Package mongodb provides MongoDB implementations of the store interfaces.
//
// Papers and tasks live in two collections keyed by their
// application-assigned identifiers (paper_id, task_id); the store's native
// _id is never exposed to callers. Driver errors are translated into the
// sentinel errors of the store package.
package mongodb
