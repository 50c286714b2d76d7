package pane

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/item/itemtest"
)

func describedItems(descs ...[]string) []item.Item {
	fm := focus.NewManager()
	out := make([]item.Item, len(descs))
	for i, d := range descs {
		it := itemtest.New(fm, string(rune('a'+i)), "item")
		it.Descriptions = d
		out[i] = it
	}
	return out
}

func TestTabDetails(t *testing.T) {
	tests := []struct {
		name  string
		descs [][]string
		want  []int
	}{
		{"distinct at level zero", [][]string{{"a"}, {"b"}}, []int{0, 0}},
		{"collision resolved at level one", [][]string{{"x", "p/x"}, {"x", "q/x"}, {"y"}}, []int{1, 1, 0}},
		{"three way with partial resolution", [][]string{
			{"x", "p/x", "a/p/x"},
			{"x", "p/x", "b/p/x"},
			{"x", "q/x"},
		}, []int{2, 2, 1}},
		{"exhausted descriptions terminate", [][]string{{"x"}, {"x"}}, []int{1, 1}},
		{"items without description", [][]string{nil, nil}, []int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TabDetails(describedItems(tt.descs...)))
		})
	}
}

func TestTabDetails_DistinctWhenResolvable(t *testing.T) {
	items := describedItems(
		[]string{"main.go", "cmd/main.go", "a/cmd/main.go"},
		[]string{"main.go", "cmd/main.go", "b/cmd/main.go"},
		[]string{"main.go", "tool/main.go"},
	)
	details := TabDetails(items)

	seen := map[string]bool{}
	for i, it := range items {
		desc, _ := it.TabDescription(details[i])
		assert.False(t, seen[desc], "duplicate description %q", desc)
		seen[desc] = true
	}
}
