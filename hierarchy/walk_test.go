package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leaf(name string, v float64) *Node {
	return &Node{Kind: KindLeaf, Name: name, Value: v}
}

func group(name string, children ...*Node) *Node {
	return &Node{Kind: KindGroup, Name: name, Children: children}
}

func sampleTree() *Node {
	return &Node{Kind: KindRoot, Name: RootName, Children: []*Node{
		group("Retail", leaf("a", 10), leaf("b", 40)),
		group("Tech", leaf("c", 30), leaf("d", 30), leaf("e", 5)),
		group("Energy"),
	}}
}

func TestSortByValue(t *testing.T) {
	tree := sampleTree()
	sorted := SortByValue(tree)

	require.Equal(t, []string{"Tech", "Retail", "Energy"}, childNames(sorted))
	require.Equal(t, []string{"b", "a"}, childNames(sorted.Children[1]))
	require.Equal(t, []string{"c", "d", "e"}, childNames(sorted.Children[0]), "ties keep input order")

	require.Equal(t, []string{"Retail", "Tech", "Energy"}, childNames(tree), "input is untouched")
	require.InDelta(t, Sum(tree), Sum(sorted), 0)
	require.Nil(t, SortByValue(nil))
}

func TestWalk(t *testing.T) {
	var visited []string
	var depths []int
	Walk(sampleTree(), func(n *Node, depth int) bool {
		visited = append(visited, n.Name)
		depths = append(depths, depth)

		return n.Name != "Tech"
	})

	require.Equal(t, []string{RootName, "Retail", "a", "b", "Tech", "Energy"}, visited)
	require.Equal(t, []int{0, 1, 2, 2, 1, 1}, depths)
}

func TestFind(t *testing.T) {
	tree := sampleTree()

	n, ok := Find(tree, "Tech", "d")
	require.True(t, ok)
	require.InDelta(t, 30.0, n.Value, 0)

	n, ok = Find(tree)
	require.True(t, ok)
	require.Same(t, tree, n)

	_, ok = Find(tree, "Tech", "zzz")
	require.False(t, ok)
	_, ok = Find(nil, "Tech")
	require.False(t, ok)
}

func TestSumAndCount(t *testing.T) {
	tree := sampleTree()
	require.InDelta(t, 115.0, Sum(tree), 0)
	require.Equal(t, 5, CountLeaves(tree))
	require.Equal(t, 1, CountLeaves(leaf("x", 1)))
	require.Equal(t, 0, CountLeaves(nil))
	require.Len(t, Leaves(tree), 5)
}

func TestKind_Text(t *testing.T) {
	for _, k := range []Kind{KindRoot, KindGroup, KindLeaf} {
		text, err := k.MarshalText()
		require.NoError(t, err)

		var back Kind
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, k, back)
	}

	_, err := Kind(7).MarshalText()
	require.Error(t, err)
}
