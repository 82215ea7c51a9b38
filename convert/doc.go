// Package convert provides consumer-side adapters that read a
// tensor.Tensor and export it to matrix representations:
//
//   - Triplets: coordinate (COO) form, one (row, col, value) per entry, the
//     shape sparse-matrix assemblers and block solvers ingest;
//   - gonum *mat.Dense: for small 2-axis tensors, with duplicated
//     coordinates accumulated (scatter-add);
//   - per-cell divergence: face fluxes scatter-added into a cell vector,
//     +flux on the first cell of a face and -flux on the second.
//
// Use convert after the reordering step, typically
//
//	t.SortIndicesByNumber(false).SortElementsByIndex(false)
//	trip, err := convert.ToTriplets(t, "row", "col")
//
// so that triplets come out in canonical row-major order.
package convert
