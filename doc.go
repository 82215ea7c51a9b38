// Package tensorcomp is an in-memory toolkit for named-axis sparse
// coordinate tensors: the accumulation format used by element assembly
// code before contributions are reduced into a sparse linear system.
//
// What is inside?
//
//	tensor/          the Tensor[T] container: axis-major index storage, axis
//	                 permutation, canonical entry sorting, cardinality-based
//	                 axis ordering and named-axis promotion
//	builder/         producers: incremental entry Builder and seeded RandomSparse
//	convert/         consumers: triplet export, gonum dense export, per-cell divergence
//	tensorio/        YAML tensor documents, coordinate matrix and vector files
//	pipeline/        YAML-configured reorder pipelines with structured logging
//	cmd/tensorcomp/  command line front-end over all of the above
//	examples/        runnable programs (stiffness_assembly)
//
// Quick example (element id × local node):
//
//	cell: 1 0 1 0
//	node: 2 1 1 2     coefficients: 10 20 30 40
//
// After SortElementsByIndex(false) the entries read (0,1,20) (0,2,40)
// (1,1,30) (1,2,10).
//
//	go get github.com/katalvlaran/tensorcomp/tensor
package tensorcomp
