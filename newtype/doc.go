// Package newtype implements the forwarding battery for single-field wrapper types.
//
// Every wrapper in this module has the same shape, struct{ Value T }, captured
// by the Wrapper constraint. The package implements each forwarded operation
// once as a package-level generic function, so the same code serves:
//
//   - Of[Tag, T] — the in-package wrapper; a phantom Tag type parameter keeps
//     two instantiations over the same T nominally distinct with no codegen.
//   - generated types — cmd/newtypegen emits named struct{ Value T } types
//     whose operation functions delegate here.
//   - any hand-written struct{ Value T } in user code.
//
// Operations are package-level functions rather than methods because a method
// cannot narrow its receiver's type parameter: Add needs T to support +, Equal
// needs T comparable, Clone needs a Clone method. As functions, each forward
// carries exactly the constraint it delegates to, and using an unsupported
// forward is rejected by the compiler at that call site, never at wrap time.
//
// Quick guidance
//
// Use Of when you want:
//   - Distinct nominal types with zero generated code
//   - The whole battery available generically (Add, Equal, Hash, Collect, ...)
//
// Use cmd/newtypegen when you want:
//   - A named type per concept (Meters, Seconds) with Name-prefixed helpers
//   - Direct in-place delegation (w.Value += v.Value) on concrete receivers
//   - A declared default inner type resolved as a plain alias
//
// In-place forms: the library's *Assign functions read the wrapper by value,
// apply the non-mutating form, and write it back, because generic code cannot
// take the address of the field inside an arbitrary Wrapper. Generated code
// mutates the field directly. Both leave the same value behind.
//
// Import
//
//	"github.com/smansour/newtype/newtype"
package newtype
