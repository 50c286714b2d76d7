package pane

import "github.com/bnema/dockyard/internal/ui/item"

// TabDetails picks, for each item, the smallest detail level at which its
// tab description differs from every other item's. Items whose description
// stopped changing between levels are left out of the comparison, which
// guarantees termination.
func TabDetails(items []item.Item) []int {
	details := make([]int, len(items))
	byDescription := make(map[string][]int)

	for done := false; !done; {
		done = true
		for ix, it := range items {
			desc, ok := it.TabDescription(details[ix])
			if !ok {
				continue
			}
			if details[ix] > 0 {
				prev, prevOK := it.TabDescription(details[ix] - 1)
				if prevOK && prev == desc {
					continue
				}
			}
			byDescription[desc] = append(byDescription[desc], ix)
		}

		for desc, ixs := range byDescription {
			if len(ixs) > 1 {
				done = false
				for _, ix := range ixs {
					details[ix]++
				}
			}
			delete(byDescription, desc)
		}
	}
	return details
}
