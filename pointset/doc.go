// Package pointset defines the point-set update contract consumed by the
// outer loop between outer iterations — distinct from the in-core bundle
// aggregation of direction.ComputeDirection step 7, which is local to one
// call. This is the memory-control mechanism spec.md §2 lists as an
// external collaborator ("point-set maintenance").
package pointset
