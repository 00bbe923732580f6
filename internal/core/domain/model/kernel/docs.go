// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates and commands are assembled
// from: small, immutable, validated on construction.
package kernel
