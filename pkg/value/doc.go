// Package value defines the value system of the template engine.
//
// This package contains:
//   - Value, the generic handle every evaluated expression produces
//   - Object and the SeqObject/StructObject capability interfaces that
//     expose host data structures without a serialization step
//   - ObjectKind, the per-call classification driving structural
//     dispatch (iteration, indexing, field access)
//   - The argument decoding helpers for call and method dispatch
//
// The package imports only the standard library and the struct
// decoding library; everything else in the engine depends on it, not
// the reverse.
package value
