package autumn

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// checkWellFormedness walks root computing nullable-first reachability
// and fails fast on left recursion that isn't wrapped in a
// LeftRecursive node (spec.md §6 WELL_FORMEDNESS_CHECK, §9 "detect
// unwrapped left recursion... by computing nullable-first
// reachability"). Every independent violation is collected, not just
// the first, via go-multierror.
func checkWellFormedness(root Parser) error {
	nullable := ComputeNullable(root)

	var result *multierror.Error
	for _, msg := range detectUnwrappedLeftRecursion(root, nullable) {
		result = multierror.Append(result, newConfigurationError("%s", msg))
	}
	return result.ErrorOrNil()
}

// leftmostChildren returns the children reachable at the same input
// position as p, i.e. the ones a left-recursion cycle could pass
// through without first consuming anything.
func leftmostChildren(p Parser, nullable map[string]bool) []Parser {
	switch n := p.(type) {
	case *Sequence:
		var out []Parser
		for _, c := range n.children {
			out = append(out, c)
			if !nullable[c.ID().String()] {
				break
			}
		}
		return out
	case *Choice:
		return n.children
	case *Optional:
		return []Parser{n.body}
	case *Repeat:
		return []Parser{n.body}
	case *LookAhead:
		return []Parser{n.body}
	case *Not:
		return []Parser{n.body}
	case *Around:
		return []Parser{n.a}
	case *LeftRecursive:
		return []Parser{n.body}
	case *SemanticAction:
		return []Parser{n.body}
	case *NodeAction:
		return []Parser{n.body}
	case *Memoize:
		return []Parser{n.body}
	case *Ref:
		if n.target == nil {
			return nil
		}
		return []Parser{n.target}
	default:
		return nil
	}
}

// detectUnwrappedLeftRecursion performs the leftmost-corner DFS: a
// LeftRecursive node encountered again while already on the current
// leftmost-corner path is the expected, supported re-entrancy seed
// growing relies on; any other node encountered again is an unwrapped
// left-recursion cycle.
func detectUnwrappedLeftRecursion(root Parser, nullable map[string]bool) []string {
	var diagnostics []string
	onPath := map[string]bool{}

	var visit func(p Parser)
	visit = func(p Parser) {
		id := p.ID().String()
		if _, isLR := p.(*LeftRecursive); isLR {
			if onPath[id] {
				return
			}
		} else if onPath[id] {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"unwrapped left recursion through %q (parser id %s)", p.Name(), id))
			return
		}

		onPath[id] = true
		for _, child := range leftmostChildren(p, nullable) {
			visit(child)
		}
		delete(onPath, id)
	}

	visit(root)
	return diagnostics
}
