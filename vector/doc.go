// Package vector implements the vector value used by the SQL functions of
// this module. It includes:
//   - Vector: an immutable float32 or float64 sequence tagged with its Type
//   - text parsing of literals like "[1,2,3]" and canonical formatting
//   - the binary (BLOB) encoding: little-endian payload plus a type trailer
//   - cosine and L2 distance between two vectors
package vector
