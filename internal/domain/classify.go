package domain

import "strings"

// TaskCandidate is one engineering task inferred from a node, tied to the
// rule that produced it. Immutable once created.
type TaskCandidate struct {
	Category    Category
	Description string
	RuleID      string
	NodeID      string
}

// TaskReport is the final categorized task list: three ordered sequences
// of deduplicated candidates, each numbered from 1 by position. Within a
// category no two entries share a normalized description.
type TaskReport struct {
	Project  string
	Frontend []TaskCandidate
	Backend  []TaskCandidate
	AI       []TaskCandidate
}

// Tasks returns the candidates for a category in stored order.
func (r *TaskReport) Tasks(c Category) []TaskCandidate {
	switch c {
	case CategoryFrontend:
		return r.Frontend
	case CategoryBackend:
		return r.Backend
	case CategoryAI:
		return r.AI
	default:
		return nil
	}
}

// Total returns the number of tasks across all categories.
func (r *TaskReport) Total() int {
	return len(r.Frontend) + len(r.Backend) + len(r.AI)
}

// Classify evaluates every rule against every node of the tree and
// returns the deduplicated, categorized task report.
//
// Classification is stateless per node and order-independent: a rule may
// read a node's type, name, and child shape but never mutates the tree.
// A node can contribute tasks to several categories at once. Duplicate
// descriptions inside a category (case-insensitive, whitespace-normalized
// compare) are dropped, keeping the first-seen occurrence, which fixes
// the final numbering.
//
// Returns ErrEmptyTree for a tree with no nodes at all; zero tasks in a
// category is a valid result.
func Classify(project string, t *Tree, rules []Rule) (*TaskReport, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyTree
	}

	report := &TaskReport{Project: project}
	seen := make(map[Category]map[string]bool)

	t.Walk(func(n *Node) bool {
		for _, rule := range rules {
			if !rule.Matches(n) {
				continue
			}
			for _, desc := range rule.Describe(n) {
				key := normalizeDescription(desc)
				if seen[rule.Category] == nil {
					seen[rule.Category] = make(map[string]bool)
				}
				if seen[rule.Category][key] {
					continue
				}
				seen[rule.Category][key] = true
				candidate := TaskCandidate{
					Category:    rule.Category,
					Description: desc,
					RuleID:      rule.ID,
					NodeID:      n.ID,
				}
				switch rule.Category {
				case CategoryFrontend:
					report.Frontend = append(report.Frontend, candidate)
				case CategoryBackend:
					report.Backend = append(report.Backend, candidate)
				case CategoryAI:
					report.AI = append(report.AI, candidate)
				}
			}
		}
		return true
	})

	return report, nil
}

// normalizeDescription is the dedup key: lower-cased with runs of
// whitespace collapsed to single spaces.
func normalizeDescription(desc string) string {
	return strings.Join(strings.Fields(strings.ToLower(desc)), " ")
}
