// Package matrix provides square integer matrices and the building blocks of
// block matrix multiplication.
//
// The matrix package provides:
//
//   - Dense: a row-major int matrix with a per-instance row table. A Dense
//     either owns its buffer (NewDense) or aliases a window of another
//     matrix's buffer (NewAlias) with the owner's stride.
//   - Elementwise kernels Add/Sub (into a destination) and Sum/Diff (fresh).
//   - The cubic kernel Mul/Product in two loop orders: RowMajorAccumulate
//     (i,k,j; cache friendly) and NaiveIJK (i,j,k).
//   - Decompose/Combine for NW/NE/SW/SE quadrants, copying or aliasing.
//
// Ownership rules:
//
//	owner := NewDense(4)          // Owning: Destroy releases the buffer
//	q, _ := Decompose(owner, Alias) // Aliasing views into owner
//	q.Destroy()                    // drops row tables only
//	owner.Destroy()                // any surviving alias now reports ErrReleased
//
// Destinations may be the zero value (new(Dense)); kernels size them on first
// write. All failures are sentinel errors matched with errors.Is.
//
// See strassen for the divide-and-conquer engine built on top of this package.
package matrix
