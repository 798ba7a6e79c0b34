// Package engine wires the vector package into the modernc.org/sqlite
// driver: opening connections, loading the function configuration and
// registering the vector, vector32, vector64, vector_extract,
// vector_distance_cos and vector_distance_l2 SQL scalar functions.
package engine
