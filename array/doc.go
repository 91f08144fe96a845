// Package array provides the core value representation of the vara array
// language runtime: a generic, shape-tagged, flat-storage multidimensional
// array shared by every element kind the language manipulates.
//
// # Overview
//
// An Array pairs a shape (a sequence of dimension sizes) with flat data in
// row major order and a fill flag. The structural invariant the rest of
// the runtime depends on without re-checking is that the data length
// always equals the product of the shape (the product of an empty shape is
// 1, so a scalar holds exactly one element). The invariant is verified
// only in builds with the vadebug tag; elsewhere callers uphold it.
//
// # Element kinds
//
// Arrays are generic over the closed set of element kinds, each an
// ArrayValue:
//
//   - Num: floating point numbers, fill sentinel NaN
//   - Byte: small integers with a reserved fill variant
//   - Char: characters, fill sentinel NUL
//   - *Fn: shared function references, fill sentinel the no-op primitive
//
// Each kind defines a total order (NaN ranks above numbers rather than
// poisoning comparisons), the sentinel, and display formatting: character
// arrays render as bare runs, everything else as bracketed lists.
//
// # Rows
//
// A Row is a zero-copy view of one top-level slice of an array. Rows(),
// RowsRev() and RowsMut() iterate views or mutable row slices; IntoRows()
// and IntoRowsRev() consume an array into owned rank-reduced arrays; and
// FromRowArrays rebuilds an array from a sequence of rows via the Couple
// and Join combinators, whose shape mismatch errors propagate unchanged.
//
// # Fill semantics
//
// The fill flag marks an array built by a ragged join, whose rows were
// padded with the kind's sentinel to a common shape. Truncate removes
// wholly-synthetic trailing rows. Eq skips leading and trailing sentinel
// runs; Cmp, ValEq and ValCmp do not. The divergence is deliberate and
// relied upon for sorting versus deduplication behavior.
//
// # Ownership
//
// An Array owns its storage exclusively; two arrays never alias one data
// buffer. Rows borrow without copying and follow ordinary
// exclusive-or-shared discipline: any number of read-only Rows may
// coexist, but a RowsMut iteration needs the array to itself. Nothing in
// this package is safe for concurrent use.
package array
