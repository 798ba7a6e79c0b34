// Package store provides a SQLite-backed document store whose similarity
// search is evaluated in SQL with the vector_distance_cos function.
package store
