// cmd/newtypegen/main.go
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/tools/imports"
	"gopkg.in/yaml.v3"
)

// This binary is a code-generation tool.
//
// It reads newtype declarations (positional "Name[=InnerType]" arguments or a
// JSON/YAML manifest) and generates one generic wrapper type per declaration,
// with Name-prefixed operation functions forwarding to the runtime library.
//
// Key behaviors:
// - Parses declarations: Name or Name=InnerType, comma/whitespace separated
// - Manifest mode (-spec): JSON or YAML by extension, per-type op groups
// - Resolves the output package: -pkg, $GOPACKAGE, then the package next to -out
// - Resolves the runtime import: -runtime, manifest, existing output file,
//   sibling sources, the generator's own module, then the canonical path
// - Emits a deterministic file with a Source-SHA256 header, gofmt-formatted
//   and goimports-polished
// - Writes output atomically (temp file + rename) to avoid partial writes

// defaultRuntimeImport is the canonical import path of the runtime library.
const defaultRuntimeImport = "github.com/smansour/newtype/newtype"

// Operation groups. Emission order in generated files is fixed to this
// sequence regardless of the order requested.
const (
	opEq      = "eq"
	opOrd     = "ord"
	opHash    = "hash"
	opClone   = "clone"
	opArith   = "arith"
	opBits    = "bits"
	opCollect = "collect"
	opZero    = "zero"

	// List keywords.
	opsAll  = "all"
	opsNone = "none"
)

var knownOps = []string{opEq, opOrd, opHash, opClone, opArith, opBits, opCollect, opZero}

// TypeSpec is one newtype declaration.
type TypeSpec struct {
	// Name is the declared type name. It must be an exported Go identifier;
	// it prefixes every generated operation function.
	Name string `json:"name" yaml:"name"`

	// Default is an optional inner type expression. When set, the generic
	// type is emitted as NameOf and Name becomes an alias of NameOf[Default],
	// so the bare name always means the default instantiation.
	Default string `json:"default" yaml:"default"`

	// Ops optionally narrows the op groups emitted for this declaration.
	// Empty means "inherit the spec-level list".
	Ops []string `json:"ops" yaml:"ops"`
}

// Spec is the full input schema consumed by the generator.
type Spec struct {
	// Package optionally names the output package (overridden by -pkg).
	Package string `json:"package" yaml:"package"`

	// Runtime optionally overrides the runtime library import path.
	Runtime string `json:"runtime" yaml:"runtime"`

	// Ops optionally narrows the op groups for every type without its own
	// list. Empty means every group.
	Ops []string `json:"ops" yaml:"ops"`

	Types []TypeSpec `json:"types" yaml:"types"`
}

// InvalidNameError is returned for a declaration whose name is not an
// exported Go identifier.
type InvalidNameError struct{ Name string }

// Error implements the error interface.
func (e InvalidNameError) Error() string {
	// Example: invalid type name "meters" (need an exported Go identifier)
	return "invalid type name " + strconv.Quote(e.Name) + " (need an exported Go identifier)"
}

// DuplicateNameError is returned when two declarations would emit the same
// type name. A defaulted declaration emits both Name and NameOf.
type DuplicateNameError struct{ Name string }

// Error implements the error interface.
func (e DuplicateNameError) Error() string {
	return "duplicate generated type name " + strconv.Quote(e.Name)
}

// InvalidDefaultError is returned when a default inner type does not parse
// as a Go type expression.
type InvalidDefaultError struct {
	Name string
	Expr string
}

// Error implements the error interface.
func (e InvalidDefaultError) Error() string {
	return "invalid default inner type " + strconv.Quote(e.Expr) + " for " + strconv.Quote(e.Name)
}

// UnknownOpError is returned for an op group outside the known set.
type UnknownOpError struct{ Op string }

// Error implements the error interface.
func (e UnknownOpError) Error() string {
	return "unknown op group " + strconv.Quote(e.Op) + " (known: " + strings.Join(knownOps, ",") + ")"
}

// EmptySpecError is returned when no declarations were given at all.
type EmptySpecError struct{}

// Error implements the error interface.
func (EmptySpecError) Error() string { return "no type declarations given" }

// MissingPackageError is returned when the output package cannot be
// determined from any source.
type MissingPackageError struct{}

// Error implements the error interface.
func (MissingPackageError) Error() string {
	return "cannot determine output package (use -pkg, set GOPACKAGE, or generate next to existing Go files)"
}

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("newtypegen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to a JSON or YAML manifest (instead of positional declarations)")
	pkgName := flags.String("pkg", "", "package name for the generated file (default: $GOPACKAGE, then the package next to -out)")
	outPath := flags.String("out", "", "output file path (default: stdout)")
	opsList := flags.String("ops", "", "comma-separated op groups to emit: "+strings.Join(knownOps, ",")+" (default: all)")
	runtimeFlag := flags.String("runtime", "", "import path of the runtime library package")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*specPath) != "" && len(flags.Args()) > 0 {
		_, _ = fmt.Fprintln(stderr, "newtypegen: use either -spec or positional declarations, not both")
		return 2
	}

	spec, source, hashInput, err := loadSpec(*specPath, flags.Args())
	if err != nil {
		if _, ok := err.(EmptySpecError); ok {
			_, _ = fmt.Fprintln(stderr, "usage: newtypegen [flags] Name[=InnerType] ...   (or -spec manifest)")
			return 2
		}
		_, _ = fmt.Fprintln(stderr, "newtypegen:", err)
		return 1
	}

	if list := strings.TrimSpace(*opsList); list != "" {
		spec.Ops = normalizeOps(strings.Split(list, ","))
	}

	if err := validateSpec(spec); err != nil {
		_, _ = fmt.Fprintln(stderr, "newtypegen:", err)
		return 1
	}

	pkg, err := resolvePackage(*pkgName, spec.Package, *outPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "newtypegen:", err)
		return 1
	}

	runtimeImport := resolveRuntimeImport(*runtimeFlag, spec.Runtime, *outPath)

	data := buildRenderData(spec, pkg, runtimeImport, source, hashInput)

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	formatted, err := formatGenerated(*outPath, []byte(out.String()))
	if err != nil {
		// Leave the raw output behind for inspection when writing to a file.
		if p := strings.TrimSpace(*outPath); p != "" && p != "-" {
			_ = os.WriteFile(p, []byte(out.String()), 0o644)
		}
		_, _ = fmt.Fprintln(stderr, "newtypegen:", err)
		return 1
	}

	if p := strings.TrimSpace(*outPath); p == "" || p == "-" {
		_, werr := stdout.Write(formatted)
		must(werr)
		return 0
	}

	if err := writeFileAtomic(filepath.Clean(*outPath), formatted, 0o644); err != nil {
		_, _ = fmt.Fprintln(stderr, "newtypegen:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// loadSpec reads the manifest or parses positional declarations.
//
// It returns the spec, a provenance label for the generated header's Source
// line, and the exact bytes the Source-SHA256 line is computed over: raw
// manifest bytes in -spec mode, the canonical declaration list otherwise.
func loadSpec(specPath string, args []string) (*Spec, string, []byte, error) {
	if strings.TrimSpace(specPath) != "" {
		raw, err := os.ReadFile(specPath)
		if err != nil {
			return nil, "", nil, err
		}

		var spec Spec
		switch strings.ToLower(filepath.Ext(specPath)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(raw, &spec)
		default:
			err = json.Unmarshal(raw, &spec)
		}
		if err != nil {
			return nil, "", nil, err
		}

		normalizeSpec(&spec)
		return &spec, filepath.ToSlash(specPath), raw, nil
	}

	types, err := parseDecls(args)
	if err != nil {
		return nil, "", nil, err
	}

	spec := &Spec{Types: types}
	canonical := canonicalDecls(types)
	return spec, canonical, []byte(canonical), nil
}

// parseDecls parses positional declarations: "Name" or "Name=InnerType",
// separated by commas and/or whitespace. Inner types containing spaces or
// commas need the manifest instead.
func parseDecls(args []string) ([]TypeSpec, error) {
	joined := strings.Join(args, " ")
	fields := strings.FieldsFunc(joined, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, EmptySpecError{}
	}

	types := make([]TypeSpec, 0, len(fields))
	for _, field := range fields {
		name, deflt, found := strings.Cut(field, "=")
		if found && strings.TrimSpace(deflt) == "" {
			return nil, InvalidDefaultError{Name: strings.TrimSpace(name), Expr: deflt}
		}
		types = append(types, TypeSpec{
			Name:    strings.TrimSpace(name),
			Default: strings.TrimSpace(deflt),
		})
	}
	return types, nil
}

// canonicalDecls renders declarations back to their canonical
// "Name=Default" comma-joined form, so the emitted hash is stable across
// spacing variants of the same invocation.
func canonicalDecls(types []TypeSpec) string {
	parts := make([]string, 0, len(types))
	for _, ts := range types {
		if ts.Default == "" {
			parts = append(parts, ts.Name)
		} else {
			parts = append(parts, ts.Name+"="+ts.Default)
		}
	}
	return strings.Join(parts, ",")
}

func normalizeSpec(spec *Spec) {
	spec.Package = strings.TrimSpace(spec.Package)
	spec.Runtime = strings.TrimSpace(spec.Runtime)
	spec.Ops = normalizeOps(spec.Ops)
	for i := range spec.Types {
		spec.Types[i].Name = strings.TrimSpace(spec.Types[i].Name)
		spec.Types[i].Default = strings.TrimSpace(spec.Types[i].Default)
		spec.Types[i].Ops = normalizeOps(spec.Types[i].Ops)
	}
}

// normalizeOps trims, lowercases and drops empty entries.
func normalizeOps(ops []string) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		op = strings.ToLower(strings.TrimSpace(op))
		if op != "" {
			out = append(out, op)
		}
	}
	return out
}

// validateSpec validates semantic correctness of the input declarations.
func validateSpec(spec *Spec) error {
	if len(spec.Types) == 0 {
		return EmptySpecError{}
	}
	if err := validateOps(spec.Ops); err != nil {
		return err
	}

	seenNames := make(map[string]struct{}, len(spec.Types)*2)
	record := func(name string) error {
		if _, exists := seenNames[name]; exists {
			return DuplicateNameError{Name: name}
		}
		seenNames[name] = struct{}{}
		return nil
	}

	for _, ts := range spec.Types {
		if !token.IsIdentifier(ts.Name) || !token.IsExported(ts.Name) {
			return InvalidNameError{Name: ts.Name}
		}
		if ts.Default != "" {
			expr, err := parser.ParseExpr(ts.Default)
			if err != nil || !isTypeExpr(expr) {
				return InvalidDefaultError{Name: ts.Name, Expr: ts.Default}
			}
		}
		if err := validateOps(ts.Ops); err != nil {
			return err
		}

		if err := record(ts.Name); err != nil {
			return err
		}
		if ts.Default != "" {
			if err := record(ts.Name + "Of"); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateOps(ops []string) error {
	for _, op := range ops {
		if op == opsAll || op == opsNone {
			continue
		}
		if !slices.Contains(knownOps, op) {
			return UnknownOpError{Op: op}
		}
	}
	return nil
}

// isTypeExpr reports whether e has the syntactic shape of a Go type.
// parser.ParseExpr accepts any expression; a default like "1+2" parses fine
// but is not a type and would only fail in the emitted package's compile.
func isTypeExpr(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.ArrayType, *ast.MapType,
		*ast.ChanType, *ast.FuncType, *ast.StructType, *ast.InterfaceType:
		return true
	case *ast.StarExpr:
		return isTypeExpr(e.X)
	case *ast.ParenExpr:
		return isTypeExpr(e.X)
	case *ast.IndexExpr:
		return isTypeExpr(e.X)
	case *ast.IndexListExpr:
		return isTypeExpr(e.X)
	default:
		return false
	}
}

// effectiveOps resolves the op groups for one declaration: its own list
// wins, then the spec-level list, then every group.
func effectiveOps(spec *Spec, ts TypeSpec) map[string]bool {
	list := ts.Ops
	if len(list) == 0 {
		list = spec.Ops
	}

	enabled := make(map[string]bool, len(knownOps))
	if len(list) == 0 {
		for _, op := range knownOps {
			enabled[op] = true
		}
		return enabled
	}

	for _, op := range list {
		switch op {
		case opsAll:
			for _, known := range knownOps {
				enabled[known] = true
			}
		case opsNone:
			// leaves every group off unless another entry enables it
		default:
			enabled[op] = true
		}
	}
	return enabled
}

// -------------------------
// Package and runtime resolution
// -------------------------

// resolvePackage determines the package clause of the generated file.
//
// Order: -pkg flag, manifest, $GOPACKAGE (set by go generate), then the
// package declared by existing sources next to -out.
func resolvePackage(flagPkg, specPkg, outPath string) (string, error) {
	if p := strings.TrimSpace(flagPkg); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(specPkg); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(os.Getenv("GOPACKAGE")); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(outPath); p != "" && p != "-" {
		if name := scanPackageName(filepath.Dir(p), filepath.Base(p)); name != "" {
			return name, nil
		}
	}
	return "", MissingPackageError{}
}

// scanPackageName returns the package clause of the first parseable
// non-test, non-generated Go file in dir, skipping the output file itself.
func scanPackageName(dir, skipName string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == skipName || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || isGeneratedName(name) {
			continue
		}

		parsed, perr := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if perr != nil || parsed.Name == nil {
			continue
		}
		return parsed.Name.Name
	}
	return ""
}

func isGeneratedName(name string) bool {
	return strings.HasSuffix(name, ".gen.go") || strings.Contains(name, ".gen.") || strings.HasSuffix(name, "_gen.go")
}

// resolveRuntimeImport determines the import path of the runtime library.
//
// Order: -runtime flag, manifest, the import already present in an existing
// output file, sibling sources in the output directory, the module
// containing this generator, then the canonical path. The fallbacks let a
// project fork or vendor the runtime without flags on every invocation.
func resolveRuntimeImport(flagRuntime, specRuntime, outPath string) string {
	if p := strings.TrimSpace(flagRuntime); p != "" {
		return p
	}
	if p := strings.TrimSpace(specRuntime); p != "" {
		return p
	}

	if p := strings.TrimSpace(outPath); p != "" && p != "-" {
		if gi, ok := findImportByAliasOrSuffix(readImportsFromExistingOut(p), "newtype", "/newtype"); ok {
			return gi.Path
		}
		if gi, ok := findImportByAliasOrSuffix(scanPackageImports(filepath.Dir(p)), "newtype", "/newtype"); ok {
			return gi.Path
		}
	}

	if p, err := inferRuntimeImportFromOwnModule(); err == nil {
		return p
	}
	return defaultRuntimeImport
}

// inferRuntimeImportFromOwnModule computes the runtime import path from the
// go.mod of the module that contains this generator. It covers the common
// case of running the generator from its own checkout via go run.
func inferRuntimeImportFromOwnModule() (string, error) {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", &cmdError{msg: "runtime.Caller failed"}
	}

	modRoot, modPath, err := findModule(filepath.Dir(thisFile))
	if err != nil {
		return "", err
	}

	if !dirExists(filepath.Join(modRoot, "newtype")) {
		return "", &cmdError{msg: "no newtype package dir under module root " + filepath.ToSlash(modRoot)}
	}
	return modPath + "/newtype", nil
}

// -------------------------
// go.mod helpers
// -------------------------

type cmdError struct{ msg string }

func (e *cmdError) Error() string { return e.msg }

func findModule(startDir string) (modRoot string, modPath string, err error) {
	dir := startDir
	for {
		gomod := filepath.Join(dir, "go.mod")
		if fileExists(gomod) {
			b, rerr := os.ReadFile(gomod)
			if rerr != nil {
				return "", "", rerr
			}
			for _, ln := range strings.Split(string(b), "\n") {
				ln = strings.TrimSpace(ln)
				if strings.HasPrefix(ln, "module ") {
					mod := strings.TrimSpace(strings.TrimPrefix(ln, "module "))
					if mod == "" {
						return "", "", &cmdError{msg: "go.mod has empty module path at " + filepath.ToSlash(gomod)}
					}
					return dir, mod, nil
				}
			}
			return "", "", &cmdError{msg: "go.mod missing module directive at " + filepath.ToSlash(gomod)}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", "", &cmdError{msg: "could not find go.mod starting from " + filepath.ToSlash(startDir)}
}

func dirExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// -------------------------
// Import scanning
// -------------------------

type GoImport struct {
	Name string // optional alias
	Path string // import path
}

// scanPackageImports reads imports from all non-generated .go files in
// pkgDir (excluding *_test.go and generated outputs) and returns them as
// GoImport entries, aliases preserved.
func scanPackageImports(pkgDir string) []GoImport {
	entries, err := os.ReadDir(pkgDir)
	if err != nil {
		return nil
	}

	var out []GoImport
	fset := token.NewFileSet()

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || isGeneratedName(name) {
			continue
		}

		full := filepath.Join(pkgDir, name)
		src, rerr := os.ReadFile(full)
		if rerr != nil {
			continue
		}

		parsed, perr := parser.ParseFile(fset, full, src, parser.ImportsOnly)
		if perr != nil {
			continue
		}

		for _, imp := range parsed.Imports {
			alias := ""
			if imp.Name != nil {
				alias = imp.Name.Name
			}
			out = append(out, GoImport{Name: alias, Path: strings.Trim(imp.Path.Value, `"`)})
		}
	}

	return dedupeAndSortImports(out)
}

// readImportsFromExistingOut parses imports from a previously generated
// output file, if one exists. Used only for runtime-import inference.
func readImportsFromExistingOut(outPath string) []GoImport {
	if strings.TrimSpace(outPath) == "" {
		return nil
	}
	src, err := os.ReadFile(outPath)
	if err != nil {
		return nil
	}

	fset := token.NewFileSet()
	parsed, err := parser.ParseFile(fset, outPath, src, parser.ImportsOnly)
	if err != nil {
		return nil
	}

	out := make([]GoImport, 0, len(parsed.Imports))
	for _, imp := range parsed.Imports {
		alias := ""
		if imp.Name != nil {
			alias = imp.Name.Name
		}
		out = append(out, GoImport{Name: alias, Path: strings.Trim(imp.Path.Value, `"`)})
	}
	return out
}

// findImportByAliasOrSuffix picks an import from scanned imports.
// Prefer alias match first, then suffix match.
func findImportByAliasOrSuffix(imps []GoImport, preferAlias, preferSuffix string) (GoImport, bool) {
	if preferAlias != "" {
		for _, gi := range imps {
			if gi.Name == preferAlias {
				return gi, true
			}
		}
	}
	if preferSuffix != "" {
		for _, gi := range imps {
			if strings.HasSuffix(gi.Path, preferSuffix) {
				return gi, true
			}
		}
	}
	return GoImport{}, false
}

func dedupeAndSortImports(imps []GoImport) []GoImport {
	type key struct {
		path string
		name string
	}
	seen := map[key]bool{}
	out := make([]GoImport, 0, len(imps))
	for _, gi := range imps {
		k := key{path: gi.Path, name: gi.Name}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, gi)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path == out[j].Path {
			return out[i].Name < out[j].Name
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// -------------------------
// Rendering
// -------------------------

// renderType is one declaration prepared for the template.
type renderType struct {
	// Name is the declared name; it prefixes every operation function.
	Name string

	// Generic is the name carrying the type parameter: Name itself, or
	// Name+"Of" when a default inner type was declared.
	Generic string

	// Alias is true when Name is emitted as an alias of Generic[Default].
	Alias   bool
	Default string

	Ops map[string]bool
}

// renderData is the input passed to the Go template.
type renderData struct {
	Package string
	Source  string
	Hash    string

	StdImports    []string
	RuntimeImport string
	// RuntimeAlias is true when the runtime import path does not end in
	// "newtype" and needs an explicit alias so generated qualifiers hold.
	RuntimeAlias bool

	Types []renderType
}

func buildRenderData(spec *Spec, pkg, runtimeImport, source string, hashInput []byte) renderData {
	var needRuntime, needMaphash, needIter bool

	types := make([]renderType, 0, len(spec.Types))
	for _, ts := range spec.Types {
		rt := renderType{
			Name:    ts.Name,
			Generic: ts.Name,
			Default: ts.Default,
			Ops:     effectiveOps(spec, ts),
		}
		if ts.Default != "" {
			rt.Generic = ts.Name + "Of"
			rt.Alias = true
		}

		for _, op := range knownOps {
			if rt.Ops[op] {
				needRuntime = true
			}
		}
		if rt.Ops[opHash] {
			needMaphash = true
		}
		if rt.Ops[opCollect] {
			needIter = true
		}

		types = append(types, rt)
	}

	std := []string{"fmt"}
	if needMaphash {
		std = append(std, "hash/maphash")
	}
	if needIter {
		std = append(std, "iter")
	}
	sort.Strings(std)

	data := renderData{
		Package:    pkg,
		Source:     source,
		Hash:       sha256Hex(hashInput),
		StdImports: std,
		Types:      types,
	}
	if needRuntime {
		data.RuntimeImport = runtimeImport
		data.RuntimeAlias = path.Base(runtimeImport) != "newtype"
	}
	return data
}

// formatGenerated runs the assembled source through gofmt, then goimports.
// goimports prunes any import left unused by narrowed op groups and applies
// canonical grouping; it needs no module resolution for that, so a failure
// there falls back to the plain gofmt result.
func formatGenerated(outPath string, src []byte) ([]byte, error) {
	formatted, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	name := strings.TrimSpace(outPath)
	if name == "" || name == "-" {
		name = "newtype_gen.go"
	}
	polished, err := imports.Process(name, formatted, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return formatted, nil
	}
	return polished, nil
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// -------------------------
// Atomic output
// -------------------------

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// -------------------------
// Template
// -------------------------

// genTemplate is the Go source template for generated wrapper files. The
// output runs through gofmt afterwards, so layout here only needs to get
// comments and declaration boundaries right.
var genTemplate = template.Must(
	template.New("newtypegen").Parse(`// Code generated by newtypegen; DO NOT EDIT.
// Source: {{ .Source }}
// Source-SHA256: {{ .Hash }}

package {{ .Package }}

import (
{{- range .StdImports }}
	"{{ . }}"
{{- end }}
{{- if .RuntimeImport }}

	{{ if .RuntimeAlias }}newtype {{ end }}"{{ .RuntimeImport }}"
{{- end }}
)
{{ range .Types }}
// {{ .Generic }} is a newtype: a named wrapper giving a distinct type to a
// single value.
type {{ .Generic }}[T any] struct {
	Value T
}
{{ if .Alias }}
// {{ .Name }} is {{ .Generic }} instantiated with its declared default inner type.
type {{ .Name }} = {{ .Generic }}[{{ .Default }}]
{{ end }}
// New{{ .Generic }} wraps v.
func New{{ .Generic }}[T any](v T) {{ .Generic }}[T] {
	return {{ .Generic }}[T]{Value: v}
}
{{ if .Alias }}
// New{{ .Name }} wraps v as the declared default instantiation.
func New{{ .Name }}(v {{ .Default }}) {{ .Name }} {
	return {{ .Name }}{Value: v}
}
{{ end }}
// Get returns the wrapped value.
func (w {{ .Generic }}[T]) Get() T { return w.Value }

// Ref returns a pointer to the wrapped value.
func (w *{{ .Generic }}[T]) Ref() *T { return &w.Value }

// Set replaces the wrapped value.
func (w *{{ .Generic }}[T]) Set(v T) { w.Value = v }

// String formats the wrapped value.
func (w {{ .Generic }}[T]) String() string { return fmt.Sprint(w.Value) }
{{- if index .Ops "eq" }}

// {{ .Name }}Equal reports whether a and b hold equal values.
func {{ .Name }}Equal[T comparable](a, b {{ .Generic }}[T]) bool { return newtype.Equal(a, b) }

// {{ .Name }}NotEqual reports whether a and b hold different values.
func {{ .Name }}NotEqual[T comparable](a, b {{ .Generic }}[T]) bool { return !newtype.Equal(a, b) }
{{- end }}
{{- if index .Ops "ord" }}

// {{ .Name }}Less reports whether a's value orders before b's.
func {{ .Name }}Less[T newtype.Ordered](a, b {{ .Generic }}[T]) bool { return newtype.Less(a, b) }

// {{ .Name }}Compare returns -1, 0 or +1 comparing the wrapped values.
func {{ .Name }}Compare[T newtype.Ordered](a, b {{ .Generic }}[T]) int { return newtype.Compare(a, b) }

// {{ .Name }}Min returns the wrapper holding the smaller value.
func {{ .Name }}Min[T newtype.Ordered](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Min(a, b) }

// {{ .Name }}Max returns the wrapper holding the larger value.
func {{ .Name }}Max[T newtype.Ordered](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Max(a, b) }
{{- end }}
{{- if index .Ops "hash" }}

// {{ .Name }}Hash returns the maphash sum of the wrapped value under seed.
func {{ .Name }}Hash[T comparable](seed maphash.Seed, w {{ .Generic }}[T]) uint64 { return newtype.Hash(seed, w) }

// {{ .Name }}WriteHash feeds the wrapped value into h.
func {{ .Name }}WriteHash[T comparable](h *maphash.Hash, w {{ .Generic }}[T]) { newtype.WriteHash(h, w) }
{{- end }}
{{- if index .Ops "clone" }}

// {{ .Name }}Clone duplicates the wrapper via the inner value's Clone.
func {{ .Name }}Clone[T newtype.Cloneable[T]](w {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Clone(w) }
{{- end }}
{{- if index .Ops "arith" }}

// {{ .Name }}Add returns the wrapper of a's value plus b's.
func {{ .Name }}Add[T newtype.Addable](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Add(a, b) }

// {{ .Name }}Sub returns the wrapper of a's value minus b's.
func {{ .Name }}Sub[T newtype.Numeric](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Sub(a, b) }

// {{ .Name }}Mul returns the wrapper of a's value times b's.
func {{ .Name }}Mul[T newtype.Numeric](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Mul(a, b) }

// {{ .Name }}Div returns the wrapper of a's value divided by b's.
func {{ .Name }}Div[T newtype.Numeric](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Div(a, b) }

// {{ .Name }}Mod returns the wrapper of the remainder of a's value by b's.
func {{ .Name }}Mod[T newtype.Integer](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Mod(a, b) }

// {{ .Name }}Neg returns the wrapper of the negated value.
func {{ .Name }}Neg[T newtype.Numeric](w {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Neg(w) }

// {{ .Name }}AddAssign adds v's value into w in place.
func {{ .Name }}AddAssign[T newtype.Addable](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value += v.Value }

// {{ .Name }}SubAssign subtracts v's value from w in place.
func {{ .Name }}SubAssign[T newtype.Numeric](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value -= v.Value }

// {{ .Name }}MulAssign multiplies w by v's value in place.
func {{ .Name }}MulAssign[T newtype.Numeric](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value *= v.Value }

// {{ .Name }}DivAssign divides w by v's value in place.
func {{ .Name }}DivAssign[T newtype.Numeric](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value /= v.Value }

// {{ .Name }}ModAssign reduces w to its remainder by v's value in place.
func {{ .Name }}ModAssign[T newtype.Integer](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value %= v.Value }
{{- end }}
{{- if index .Ops "bits" }}

// {{ .Name }}And returns the wrapper of the bitwise AND of the two values.
func {{ .Name }}And[T newtype.Integer](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.And(a, b) }

// {{ .Name }}Or returns the wrapper of the bitwise OR of the two values.
func {{ .Name }}Or[T newtype.Integer](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Or(a, b) }

// {{ .Name }}Xor returns the wrapper of the bitwise XOR of the two values.
func {{ .Name }}Xor[T newtype.Integer](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Xor(a, b) }

// {{ .Name }}AndNot returns the wrapper of the bit clear of the two values.
func {{ .Name }}AndNot[T newtype.Integer](a, b {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.AndNot(a, b) }

// {{ .Name }}Shl returns the wrapper of w's value shifted left by n's value.
func {{ .Name }}Shl[T newtype.Integer](w, n {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Shl(w, n) }

// {{ .Name }}Shr returns the wrapper of w's value shifted right by n's value.
func {{ .Name }}Shr[T newtype.Integer](w, n {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Shr(w, n) }

// {{ .Name }}Not returns the wrapper of the bitwise complement of the value.
func {{ .Name }}Not[T newtype.Integer](w {{ .Generic }}[T]) {{ .Generic }}[T] { return newtype.Not(w) }

// {{ .Name }}AndAssign ANDs v's value into w in place.
func {{ .Name }}AndAssign[T newtype.Integer](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value &= v.Value }

// {{ .Name }}OrAssign ORs v's value into w in place.
func {{ .Name }}OrAssign[T newtype.Integer](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value |= v.Value }

// {{ .Name }}XorAssign XORs v's value into w in place.
func {{ .Name }}XorAssign[T newtype.Integer](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value ^= v.Value }

// {{ .Name }}AndNotAssign bit-clears v's value from w in place.
func {{ .Name }}AndNotAssign[T newtype.Integer](w *{{ .Generic }}[T], v {{ .Generic }}[T]) { w.Value &^= v.Value }

// {{ .Name }}ShlAssign shifts w left by n's value in place.
func {{ .Name }}ShlAssign[T newtype.Integer](w *{{ .Generic }}[T], n {{ .Generic }}[T]) { w.Value <<= n.Value }

// {{ .Name }}ShrAssign shifts w right by n's value in place.
func {{ .Name }}ShrAssign[T newtype.Integer](w *{{ .Generic }}[T], n {{ .Generic }}[T]) { w.Value >>= n.Value }
{{- end }}
{{- if index .Ops "collect" }}

// {{ .Name }}Collect builds a wrapper from seq via the inner type's own
// sequence constructor build.
func {{ .Name }}Collect[T, E any](seq iter.Seq[E], build func(iter.Seq[E]) T) {{ .Generic }}[T] {
	return newtype.Collect[{{ .Generic }}[T]](seq, build)
}

// {{ .Name }}CollectSlice builds a wrapper around a slice collected from seq.
func {{ .Name }}CollectSlice[S ~[]E, E any](seq iter.Seq[E]) {{ .Generic }}[S] {
	return newtype.CollectSlice[{{ .Generic }}[S]](seq)
}
{{- end }}
{{- if index .Ops "zero" }}

// {{ .Name }}Zero returns the wrapper of T's zero value.
func {{ .Name }}Zero[T any]() {{ .Generic }}[T] { return newtype.Zero[{{ .Generic }}[T]]() }
{{- end }}
{{ end }}`),
)
