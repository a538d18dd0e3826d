// Package pointcloud defines the shared data model for farthest-point
// sampling: the immutable point cloud, the start-descriptor variant, and
// the per-point min-distance vector (dmin) that every sampling routine in
// the sibling fps package maintains.
//
// Nothing in this package is thread-safe by contract: a Cloud is built once
// and read concurrently by independent sampling calls, and a DMin is owned
// by exactly one in-flight call (see fps/doc.go "Determinism & Stability").
package pointcloud
