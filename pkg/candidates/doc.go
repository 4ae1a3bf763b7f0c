// Package candidates loads, checks, and prunes the candidates file of an
// expansion study.
//
// # Document Model
//
// A Document is an ordered list of immutable Sections, one per investment
// candidate. Each Section keeps its explicit options in file order and reads
// missing options from the document defaults: the candidates schema
// defaults overlaid by the file's own [DEFAULT] block.
//
// # Checks
//
// Engine.Validate runs the checks in a fixed order and stops at the first
// failure:
//
//  1. every effective option is known, well typed, and has a legal value
//  2. name and link are set, and name has no space
//  3. name and link are unique across sections
//  4. max-investment excludes unit-size/max-units, and sizing needs both
//  5. sections with no meaningful profile are pruned
//  6. has-link-profile flags agree with the profile files they gate
//
// Pruning is not a failure. The returned Result holds a new Document
// without the pruned sections; the input Document is never modified.
//
// # Persistence
//
// Engine.ValidateFile additionally rewrites the file when sections were
// pruned. The original bytes are first copied to <file>.bak and verified by
// SHA256; the file is then atomically replaced.
//
// Usage:
//
//	engine := candidates.New(
//	    candidates.WithResolver(layout.CapacityFile),
//	    candidates.WithVersion(version),
//	)
//	res, err := engine.ValidateFile("user/expansion/candidates.ini")
//	if err != nil {
//	    // errors.CodeOf(err) tells which check failed
//	}
//	for _, p := range res.Pruned {
//	    fmt.Println("removed", p.Name)
//	}
package candidates
