package domain

// ExportStatus is the lifecycle status of an ExportableUnit.
type ExportStatus string

// Export statuses.
const (
	StatusPending   ExportStatus = "pending"
	StatusSucceeded ExportStatus = "succeeded"
	StatusFailed    ExportStatus = "failed"
)

// ExportableUnit is a node selected for rendering as a standalone image.
// Created during traversal with StatusPending; the export driver sets the
// final status exactly once.
type ExportableUnit struct {
	Node     *Node
	FileName string // Collision-free, filesystem-safe, without extension
	Status   ExportStatus
	Cause    string // Failure cause, set only when Status is failed
	Path     string // Written file path, set only when Status is succeeded
}

// exportableTypes are the node types worth rendering on their own.
var exportableTypes = map[NodeType]bool{
	TypeFrame:     true,
	TypeGroup:     true,
	TypeComponent: true,
	TypeInstance:  true,
}

// Exportable reports whether the node is a renderable unit.
//
// A node qualifies when its type is frame-like and it is not declared
// zero-size. A GROUP whose children are all themselves exportable is
// skipped as a purely structural wrapper, since rendering it would
// near-duplicate its children's exports. That skip is a heuristic, not a
// guarantee: a group mixing exportable and decorative children still
// exports as a whole.
func Exportable(n *Node) bool {
	if !exportableTypes[n.Type] {
		return false
	}
	if n.ZeroSized() {
		return false
	}
	if n.Type == TypeGroup {
		children := n.Children()
		if len(children) > 0 {
			structural := true
			for _, c := range children {
				if !Exportable(c) {
					structural = false
					break
				}
			}
			if structural {
				return false
			}
		}
	}
	return true
}

// SelectUnits walks the tree depth-first pre-order and returns the
// exportable units in visit order, each with a unique filesystem-safe
// name. Re-running on an unchanged tree yields an identical sequence.
func SelectUnits(t *Tree) []*ExportableUnit {
	var units []*ExportableUnit
	names := newNameSet()
	t.Walk(func(n *Node) bool {
		if Exportable(n) {
			units = append(units, &ExportableUnit{
				Node:     n,
				FileName: names.claim(SanitizeName(n.Name)),
				Status:   StatusPending,
			})
		}
		return true
	})
	return units
}

// Manifest is the final record of one export run: every unit, succeeded or
// failed, with its outcome. A completed run always produces a manifest,
// never a silent partial result.
type Manifest struct {
	Project   string          `yaml:"project"`
	FileKey   string          `yaml:"fileKey"`
	OutputDir string          `yaml:"outputDir"`
	Units     []ManifestEntry `yaml:"units"`
	Succeeded int             `yaml:"succeeded"`
	Failed    int             `yaml:"failed"`
}

// ManifestEntry is one unit's outcome in the manifest.
type ManifestEntry struct {
	Name   string `yaml:"name"`
	NodeID string `yaml:"nodeID"`
	Status string `yaml:"status"`
	Path   string `yaml:"path,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// NewManifest builds a manifest from finished units, preserving traversal
// order.
func NewManifest(project, fileKey, outputDir string, units []*ExportableUnit) *Manifest {
	m := &Manifest{
		Project:   project,
		FileKey:   fileKey,
		OutputDir: outputDir,
		Units:     make([]ManifestEntry, 0, len(units)),
	}
	for _, u := range units {
		entry := ManifestEntry{
			Name:   u.FileName,
			NodeID: u.Node.ID,
			Status: string(u.Status),
			Path:   u.Path,
			Error:  u.Cause,
		}
		switch u.Status {
		case StatusSucceeded:
			m.Succeeded++
		case StatusFailed:
			m.Failed++
		}
		m.Units = append(m.Units, entry)
	}
	return m
}
