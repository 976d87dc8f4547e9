// Package newtype provides single-field wrapper types ("newtypes") for Go.
//
// A newtype gives an existing value a distinct nominal type without changing
// its representation or behavior: a count of meters and a count of seconds
// can both be float64 underneath while staying un-mixable in signatures.
// The repository delivers that in two complementary ways:
//
//   - newtype: a generic library implementing the full forwarding battery
//     (conversion, equality, ordering, hashing, cloning, arithmetic, bitwise,
//     sequence construction, defaults) once, over any struct{ Value T },
//     plus a phantom-tag wrapper for nominal distinctness without codegen.
//   - cmd/newtypegen: a code generator that emits one named wrapper type per
//     declaration, with per-name operation functions delegating to the
//     library. Driven from go:generate lines or a JSON/YAML manifest.
//
// Every operation is a pure forward: the wrapper never introduces its own
// comparison, arithmetic, or hashing semantics, so wrapped values behave
// exactly like their inner values, at any nesting depth.
//
// See subpackages:
//   - newtype: the runtime library used by generated code
//   - cmd/newtypegen: the generator
//   - examples/*: generated and hand-wrapped usage, with property tests
package newtype
