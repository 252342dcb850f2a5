// Package kernel contains shared value objects used across the domain
// model. It currently provides UUID, the identifier type for assignment
// version tokens and segmentation sessions.
//
// Kernel types are immutable value objects: they are created through
// constructor functions, validate themselves, and are safe to copy and
// share between goroutines.
package kernel
