// Command newtypegen — generated named wrapper types (newtypes) for Go
//
// newtypegen turns a list of type declarations into a Go source file defining
// one single-field wrapper type per declaration, plus Name-prefixed operation
// functions that forward to the runtime library
// (github.com/smansour/newtype/newtype):
//
//   - You put declarations on a //go:generate line (or in a small manifest).
//   - newtypegen emits Name[T any] struct{ Value T }, constructors, accessors,
//     and the requested operation groups (equality, ordering, hashing,
//     cloning, arithmetic, bitwise, sequence construction, zero values).
//   - Generated operations are pure forwards: Add on Meters is + on the
//     wrapped values, nothing more.
//
// There is no runtime registration, no reflection, and no configuration
// beyond the declaration list.
//
// When to use newtypegen
//
// Use newtypegen when you want:
//
//   - A distinct named type per concept (Meters, Seconds, Count) so the
//     compiler keeps same-representation values apart.
//   - Name-prefixed helpers (MetersAdd, MetersLess, MetersZero) instead of
//     generic calls at every use site.
//   - In-place operations that mutate the field directly on a concrete
//     pointer receiver.
//   - A declared default inner type: Meters=float64 makes Meters an alias of
//     MetersOf[float64], so the bare name always means the default and the
//     generic stays open as MetersOf[T].
//
// When NOT to use newtypegen
//
// Skip the generator if two or three wrappers are all you need: declare tags
// for newtype.Of and use the library battery generically. The generator earns
// its keep when the same battery repeats across many named types.
//
// Declarations
//
// Positional arguments are declarations, comma- or whitespace-separated:
//
//	Name
//	Name=InnerType
//
// Name must be an exported Go identifier. InnerType is any Go type
// expression without spaces or commas; declarations needing either belong in
// a manifest. A declaration with a default emits the generic type as NameOf
// and the bare Name as its default instantiation.
//
// Manifest format (-spec)
//
// JSON or YAML, chosen by file extension:
//
//	package: units
//	runtime: github.com/smansour/newtype/newtype
//	ops: [eq, ord, arith, zero]
//	types:
//	  - name: Meters
//	    default: float64
//	  - name: Tags
//	    default: "[]string"
//	    ops: [collect, zero]
//
// Spec-level ops apply to every type that does not carry its own list; an
// absent list means every group. The keywords all and none are accepted.
//
// Flags
//
//	-spec path     manifest instead of positional declarations
//	-pkg name      package for the generated file
//	               (default: manifest, then $GOPACKAGE, then the package next to -out)
//	-out path      output file (default: stdout)
//	-ops list      comma-separated groups: eq,ord,hash,clone,arith,bits,collect,zero
//	-runtime path  import path of the runtime library package
//
// The runtime import is resolved in order: -runtime flag, manifest, the
// import already present in an existing output file, sibling sources in the
// output directory, the module containing this generator, and finally the
// canonical path. Overriding it supports forks and vendored copies.
//
// Typical go:generate usage
//
// Put this in a Go file of the target package:
//
//	//go:generate go run ../../cmd/newtypegen -out units_gen.go Meters=float64 Seconds=float64 Count=int
//
// Then:
//
//	go generate ./...
//
// Output discipline
//
// The same declarations always produce byte-identical output: declaration
// order is preserved, operation groups are emitted in a fixed order, and the
// header carries a Source-SHA256 line over the canonical declaration list
// (or raw manifest bytes) so review catches regeneration drift. The
// assembled source is gofmt-formatted and goimports-polished before it is
// written, and file writes are atomic (temp file + rename).
//
// Capability gating
//
// Every operation function constrains its type parameter to exactly the
// capability it forwards (newtype.Addable, newtype.Integer, comparable, ...).
// Wrapping a type that lacks a capability is fine; instantiating the
// unsupported operation for it is a compile error at that call site.
package main
