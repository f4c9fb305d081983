package nonogram

import "iter"

// lineSolved reports whether the cells of one line satisfy constraint.
//
// The line is scanned once, left to right. Ignored cells (empty, crossed out)
// separate runs; adjacent filled cells with different values also separate
// runs. Each maximal run observed must equal the next constraint entry in
// both value and size, and the two sequences must end together. A line with
// no filled cells satisfies exactly the empty constraint.
func lineSolved[V comparable](constraint Constraint[V], cells iter.Seq[Cell[V]]) bool {
	var (
		next     int // index of the next expected run
		runValue V
		runSize  int
	)

	closeRun := func() bool {
		if runSize == 0 {
			return true
		}
		if next >= len(constraint) {
			return false
		}
		want := constraint[next]
		next++
		ok := want.Value == runValue && want.Size == runSize
		runSize = 0
		return ok
	}

	for cell := range cells {
		if cell.IsIgnored() {
			if !closeRun() {
				return false
			}
			continue
		}
		if runSize > 0 && cell.Value != runValue {
			// Value change without a gap still ends the run.
			if !closeRun() {
				return false
			}
		}
		if runSize == 0 {
			runValue = cell.Value
		}
		runSize++
	}

	return closeRun() && next == len(constraint)
}
