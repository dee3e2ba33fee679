package tree

// DefaultMaxExpanded is the visible-node budget for InitialExpansion when the
// caller has no opinion.
const DefaultMaxExpanded = 30

// InitialExpansion picks the set of nodes to pre-expand when a container is
// first opened: enough structure to orient the user, without dumping the
// whole tree. Roots are always expanded. Their children are then considered
// in order, and each one that has children of its own is expanded until the
// running count of visible nodes reaches the budget.
//
// The budget is checked before expanding a candidate, not after, so the last
// expansion may overshoot it: a complete subtree beats a strict cap. Leaf
// candidates are skipped and consume no budget.
func InitialExpansion(v *View, maxExpandedNodes int) []int {
	roots := v.Roots()
	expanded := append([]int(nil), roots...)

	var candidates []int
	for _, r := range roots {
		candidates = append(candidates, v.Children(r)...)
	}

	visible := len(roots) + len(candidates)
	for _, c := range candidates {
		if visible >= maxExpandedNodes {
			break
		}
		kids := v.Children(c)
		if len(kids) == 0 {
			continue
		}
		expanded = append(expanded, c)
		visible += len(kids)
	}
	return expanded
}
