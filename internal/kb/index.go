package kb

import "github.com/go-prolog/engine/internal/term"

// indexKind is the coarse classification of a head's first argument
// for indexing purposes.
type indexKind int

const (
	kindAtom indexKind = iota
	kindCompound
	kindWildcard // number, variable, or anything else
)

// indexKey is the bucket key computed from a term in first-argument
// position: atoms key by name, compounds (including list cells) all
// share one bucket, and everything else — numbers, variables — is the
// wildcard.
type indexKey struct {
	kind indexKind
	name string // only meaningful when kind == kindAtom
}

// keyOf classifies t into its index bucket.
func keyOf(t term.Term) indexKey {
	switch v := t.(type) {
	case *term.Atom:
		return indexKey{kind: kindAtom, name: v.Name}
	case *term.Compound:
		return indexKey{kind: kindCompound}
	default:
		// Number, *term.Variable, or anything else.
		return indexKey{kind: kindWildcard}
	}
}

// firstArgIndex maps a first-argument key to the insertion-ordered
// positions (indices into the bucket's clause slice) of clauses whose
// head has that key.
type firstArgIndex struct {
	positions map[indexKey][]int
}

func newFirstArgIndex() *firstArgIndex {
	return &firstArgIndex{positions: make(map[indexKey][]int)}
}

func (fi *firstArgIndex) add(key indexKey, pos int) {
	fi.positions[key] = append(fi.positions[key], pos)
}

// candidates returns the clauses matching key, merged with the
// wildcard-keyed clauses: matches first (in insertion order), then
// wildcards (in insertion order). A clause with a variable first
// argument is therefore offered after clauses with a matching
// concrete key, which is not strict overall insertion order for the
// predicate; a true k-way merge tagged with sequence numbers would
// restore it, at the cost of a more involved retrieval path.
func (fi *firstArgIndex) candidates(key indexKey, all []*term.Clause) []*term.Clause {
	matchPositions := fi.positions[key]
	wildcardPositions := fi.positions[indexKey{kind: kindWildcard}]

	if len(matchPositions) == 0 && len(wildcardPositions) == 0 {
		return nil
	}

	result := make([]*term.Clause, 0, len(matchPositions)+len(wildcardPositions))
	for _, p := range matchPositions {
		result = append(result, all[p])
	}
	for _, p := range wildcardPositions {
		result = append(result, all[p])
	}
	return result
}
