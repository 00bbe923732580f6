// Package queries contains the read side of the CQRS split: order lookup,
// admin listings, aggregate statistics and the customer tracking projections.
// Query handlers never mutate stored data and recompute their results from
// the order store on every call.
package queries
