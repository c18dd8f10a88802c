// Package goranges provides lazy views over sequences of elements.
// Views form a pipeline of adaptors that elements are being passed through.
//
// Views are constructed from slices, from other views, or from arbitrary generators.
// A view is delimited by two cursors: its start and its end. Iterating a view compares a copy of the
// start cursor to the end cursor, reads the current element, and advances, until the cursors are equal.
//
// Elements may then be operated upon using transforming, filtering, and striding adaptors,
// which wrap the cursors of the view they are applied to. Adaptors are chained using Pipe, Chain, and Compose.
//
// Finally, the elements are consumed by materializing them into a container, reducing them,
// checking for matching elements, or simply iterating over them.
//
// Views are always lazy, meaning that adaptor functions are only called while a view is being iterated,
// and only for the elements the iteration reaches. A view is never modified by iterating it, so it can be
// iterated any number of times; if the functions given to its adaptors keep state, or it is backed by a
// Generator, each iteration may produce different elements.
//
// Views are not safe for concurrent iteration unless the functions given to their adaptors are pure and the
// underlying sequence is not modified.
package goranges
