package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTree decodes a JSON document into a RawNode.
func fixtureTree(t *testing.T, doc string) *RawNode {
	t.Helper()
	var raw RawNode
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	return &raw
}

const loginFixture = `{
	"id": "0:0", "name": "Document", "type": "DOCUMENT", "children": [
		{"id": "0:1", "name": "Page 1", "type": "CANVAS", "children": [
			{"id": "1:1", "name": "Login Page", "type": "FRAME", "children": [
				{"id": "1:2", "name": "Email", "type": "TEXT", "characters": "Email"},
				{"id": "1:3", "name": "Password", "type": "TEXT", "characters": "Password"},
				{"id": "1:4", "name": "Submit Button", "type": "FRAME"}
			]},
			{"id": "2:1", "name": "Dashboard", "type": "FRAME", "children": [
				{"id": "2:2", "name": "Team List", "type": "GROUP", "children": [
					{"id": "2:3", "name": "Frame", "type": "FRAME"},
					{"id": "2:4", "name": "Frame", "type": "FRAME"},
					{"id": "2:5", "name": "Frame", "type": "FRAME"}
				]}
			]}
		]}
	]
}`

func TestBuildTree_Success(t *testing.T) {
	tree, err := BuildTree(fixtureTree(t, loginFixture))
	require.NoError(t, err)

	assert.Equal(t, 11, tree.Len())
	require.NotNil(t, tree.Root())
	assert.Equal(t, "0:0", tree.Root().ID)
	assert.Equal(t, TypeDocument, tree.Root().Type)

	login := tree.Get("1:1")
	require.NotNil(t, login)
	assert.Equal(t, "Login Page", login.Name)
	require.NotNil(t, login.Parent())
	assert.Equal(t, "0:1", login.Parent().ID)

	// Child order reflects document order.
	children := login.Children()
	require.Len(t, children, 3)
	assert.Equal(t, "Email", children[0].Name)
	assert.Equal(t, "Password", children[1].Name)
	assert.Equal(t, "Submit Button", children[2].Name)

	text := tree.Get("1:2")
	require.NotNil(t, text)
	assert.Equal(t, "Email", text.Characters)
}

func TestBuildTree_EmptyInput(t *testing.T) {
	tree, err := BuildTree(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tree.Len())
	assert.Nil(t, tree.Root())
}

func TestBuildTree_MissingID(t *testing.T) {
	raw := &RawNode{Name: "Nameless", Type: "FRAME"}
	_, err := BuildTree(raw)

	var mtErr *MalformedTreeError
	require.ErrorAs(t, err, &mtErr)
	assert.Contains(t, mtErr.Error(), "no id")
}

func TestBuildTree_MissingType(t *testing.T) {
	raw := &RawNode{ID: "1:1", Name: "Typeless"}
	_, err := BuildTree(raw)

	var mtErr *MalformedTreeError
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, "1:1", mtErr.NodeID)
	assert.Contains(t, mtErr.Error(), "no type")
}

func TestBuildTree_DuplicateID(t *testing.T) {
	raw := &RawNode{ID: "0:0", Type: "DOCUMENT", Children: []*RawNode{
		{ID: "1:1", Type: "FRAME"},
		{ID: "1:1", Type: "FRAME"},
	}}
	_, err := BuildTree(raw)

	var mtErr *MalformedTreeError
	require.ErrorAs(t, err, &mtErr)
	assert.Equal(t, "1:1", mtErr.NodeID)
	assert.Contains(t, mtErr.Error(), "duplicate")
}

func TestBuildTree_CycleRejected(t *testing.T) {
	// A node listing an ancestor as a child. Impossible to express in
	// JSON, but an in-memory caller can build it.
	root := &RawNode{ID: "0:0", Type: "DOCUMENT"}
	frame := &RawNode{ID: "1:1", Type: "FRAME"}
	root.Children = []*RawNode{frame}
	frame.Children = []*RawNode{root}

	_, err := BuildTree(root)

	var mtErr *MalformedTreeError
	require.ErrorAs(t, err, &mtErr)
	assert.Contains(t, mtErr.Error(), "ancestor")
}

func TestWalk_PreOrderVisitsEveryNodeOnce(t *testing.T) {
	tree, err := BuildTree(fixtureTree(t, loginFixture))
	require.NoError(t, err)

	var visited []string
	tree.Walk(func(n *Node) bool {
		visited = append(visited, n.ID)
		return true
	})

	// Parent before children, children in document order, each exactly once.
	assert.Equal(t, []string{
		"0:0", "0:1",
		"1:1", "1:2", "1:3", "1:4",
		"2:1", "2:2", "2:3", "2:4", "2:5",
	}, visited)
}

func TestWalk_PruneSkipsSubtree(t *testing.T) {
	tree, err := BuildTree(fixtureTree(t, loginFixture))
	require.NoError(t, err)

	var visited []string
	tree.Walk(func(n *Node) bool {
		visited = append(visited, n.ID)
		return n.ID != "1:1" // prune below Login Page
	})

	assert.NotContains(t, visited, "1:2")
	assert.NotContains(t, visited, "1:4")
	assert.Contains(t, visited, "2:1", "siblings after a pruned subtree are still visited")
}
