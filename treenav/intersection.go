package treenav

// Intersection describes how the paths from the root to two nodes relate.
type Intersection[N comparable] struct {
	Path1, Path2        []N  // root-first paths, including the nodes themselves
	CommonAncestorIndex int  // index of the deepest common ancestor, or -1
	Path1MetCondition   bool // condition for Path1 held below the common ancestor
	Path2MetCondition   bool // condition for Path2 held below the common ancestor
}

// CommonAncestor returns the deepest common ancestor, if there is one.
func (isect Intersection[N]) CommonAncestor() (N, bool) {
	if isect.CommonAncestorIndex < 0 || isect.CommonAncestorIndex >= len(isect.Path1) {
		var none N
		return none, false
	}
	return isect.Path1[isect.CommonAncestorIndex], true
}

// PathIntersection computes the root-first paths of elem1 and elem2, finds their
// deepest common ancestor, and checks the path segments below it.
//
// cond1 is checked for the nodes of the first path, starting at elem1 and
// moving up towards the common ancestor (excluding it). cond2 is checked for
// the nodes of the second path, starting just below the common ancestor and
// moving down to elem2. Each check stops at the first node failing its
// condition and clears the corresponding flag. A nil condition leaves its
// flag set. If the paths share no root, all nodes of both paths are checked.
//
// If either element is the zero value, its path is nil and the common
// ancestor index is -1.
func (nav *Navigator[N]) PathIntersection(elem1, elem2 N, cond1, cond2 func(N) bool) Intersection[N] {
	var none N
	isect := Intersection[N]{
		Path1:               nav.Ancestors(elem1, none, true),
		Path2:               nav.Ancestors(elem2, none, true),
		CommonAncestorIndex: -1,
		Path1MetCondition:   true,
		Path2MetCondition:   true,
	}
	if isect.Path1 != nil && isect.Path2 != nil {
		isect.CommonAncestorIndex = nav.DeepestCommonAncestorIndex(isect.Path1, isect.Path2)
	}
	if cond1 != nil {
		for i := len(isect.Path1) - 1; i > isect.CommonAncestorIndex; i-- {
			if !cond1(isect.Path1[i]) {
				isect.Path1MetCondition = false
				break
			}
		}
	}
	if cond2 != nil {
		for i := isect.CommonAncestorIndex + 1; i < len(isect.Path2); i++ {
			if !cond2(isect.Path2[i]) {
				isect.Path2MetCondition = false
				break
			}
		}
	}
	tracer().Debugf("path intersection: |p1|=%d, |p2|=%d, common=%d",
		len(isect.Path1), len(isect.Path2), isect.CommonAncestorIndex)
	return isect
}
