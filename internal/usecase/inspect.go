package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"figroad/internal/domain"
)

// InspectInput contains the parameters for inspecting a design file.
type InspectInput struct {
	FileKey string // Figma file key (required)
}

// TypeCount is one node type's occurrence count.
type TypeCount struct {
	Type  domain.NodeType
	Count int
}

// InspectOutput contains the census of a design file.
type InspectOutput struct {
	Project    string
	FileKey    string
	TotalNodes int
	TypeCounts []TypeCount // Sorted by type tag
	TreeLines  []string    // Indented "TYPE: name (ID: id)" dump
}

// Inspect is the use case for dumping a design file's structure: type
// statistics plus an indented component tree.
type Inspect struct {
	files domain.FileSource
}

// NewInspect creates a new Inspect use case.
func NewInspect(files domain.FileSource) *Inspect {
	return &Inspect{files: files}
}

// Execute fetches the file and walks it once, collecting type counts and
// the indented tree text.
func (uc *Inspect) Execute(ctx context.Context, in InspectInput) (*InspectOutput, error) {
	file, err := fetchFile(ctx, uc.files, in.FileKey)
	if err != nil {
		return nil, err
	}

	tree, err := domain.BuildTree(file.Document)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.NodeType]int)
	var lines []string
	tree.Walk(func(n *domain.Node) bool {
		counts[n.Type]++
		name := n.Name
		if name == "" {
			name = "Unnamed"
		}
		lines = append(lines, fmt.Sprintf("%s%s: %s (ID: %s)", strings.Repeat("  ", depth(n)), n.Type, name, n.ID))
		return true
	})

	typeCounts := make([]TypeCount, 0, len(counts))
	for nodeType, count := range counts {
		typeCounts = append(typeCounts, TypeCount{Type: nodeType, Count: count})
	}
	sort.Slice(typeCounts, func(i, j int) bool { return typeCounts[i].Type < typeCounts[j].Type })

	return &InspectOutput{
		Project:    file.Name,
		FileKey:    file.Key,
		TotalNodes: tree.Len(),
		TypeCounts: typeCounts,
		TreeLines:  lines,
	}, nil
}

func depth(n *domain.Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}
