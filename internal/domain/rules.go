package domain

import "strings"

// Category is the engineering discipline a task belongs to.
type Category string

// Task categories.
const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryAI       Category = "ai"
)

// RuleKind selects the matching strategy of a rule. The set is closed:
// rules are data over these three families, dispatched by one function,
// with no dynamic registration.
type RuleKind int

const (
	// KindKeyword matches case-insensitive keywords against the node name.
	KindKeyword RuleKind = iota
	// KindType matches the node type, optionally gated on name keywords.
	KindType
	// KindStructural matches the shape of the node's children.
	KindStructural
)

// Rule maps a structural or textual pattern in node metadata to one or
// more task descriptions. Templates may contain a single "%s" which
// expands to the node's display name.
type Rule struct {
	ID         string
	Category   Category
	Kind       RuleKind
	Types      []NodeType // KindType: accepted node types
	Keywords   []string   // Lower-case keywords matched as substrings
	MinNameLen int        // KindKeyword: skip names shorter than this
	Templates  []string
}

// listLikeMin is the sibling count at which same-typed children are read
// as a data feed rather than standalone content.
const listLikeMin = 3

// Matches reports whether the rule fires for the node. Matching never
// mutates the node or its relatives; it only reads type, name, and child
// shape.
func (r Rule) Matches(n *Node) bool {
	name := strings.ToLower(strings.TrimSpace(n.Name))
	switch r.Kind {
	case KindKeyword:
		if len(name) < r.MinNameLen {
			return false
		}
		return containsAny(name, r.Keywords)
	case KindType:
		if !typeIn(n.Type, r.Types) {
			return false
		}
		if len(r.Keywords) == 0 {
			return true
		}
		return containsAny(name, r.Keywords)
	case KindStructural:
		return hasListLikeChildren(n)
	default:
		return false
	}
}

// Describe expands the rule's templates for the node.
func (r Rule) Describe(n *Node) []string {
	display := strings.TrimSpace(n.Name)
	if display == "" {
		display = "Unnamed"
	}
	out := make([]string, 0, len(r.Templates))
	for _, tmpl := range r.Templates {
		if strings.Contains(tmpl, "%s") {
			out = append(out, strings.Replace(tmpl, "%s", display, 1))
		} else {
			out = append(out, tmpl)
		}
	}
	return out
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

func typeIn(t NodeType, types []NodeType) bool {
	for _, candidate := range types {
		if t == candidate {
			return true
		}
	}
	return false
}

// hasListLikeChildren reports whether at least listLikeMin children share
// one exportable type, the structural signature of a repeated data feed.
func hasListLikeChildren(n *Node) bool {
	counts := make(map[NodeType]int)
	for _, c := range n.Children() {
		if exportableTypes[c.Type] {
			counts[c.Type]++
			if counts[c.Type] >= listLikeMin {
				return true
			}
		}
	}
	return false
}

// DefaultRules is the built-in rule set. Order matters: it fixes the
// first-seen order of descriptions inside each category, which in turn
// fixes the numbering of the final report.
func DefaultRules() []Rule {
	return []Rule{
		// Frontend
		{
			ID:        "fe-component",
			Category:  CategoryFrontend,
			Kind:      KindType,
			Types:     []NodeType{TypeComponent},
			Templates: []string{"Create %s component"},
		},
		{
			ID:        "fe-screen",
			Category:  CategoryFrontend,
			Kind:      KindType,
			Types:     []NodeType{TypeFrame},
			Keywords:  []string{"page", "screen", "view"},
			Templates: []string{"Implement %s page/screen"},
		},
		{
			ID:        "fe-button",
			Category:  CategoryFrontend,
			Kind:      KindType,
			Types:     []NodeType{TypeRectangle, TypeFrame, TypeInstance},
			Keywords:  []string{"button"},
			Templates: []string{"Implement %s functionality"},
		},
		{
			ID:        "fe-form-field",
			Category:  CategoryFrontend,
			Kind:      KindType,
			Types:     []NodeType{TypeText},
			Keywords:  []string{"input", "field", "form", "email", "password", "username"},
			Templates: []string{"Create form validation for %s"},
		},

		// Backend
		{
			ID:       "be-data",
			Category: CategoryBackend,
			Kind:     KindKeyword,
			Keywords: []string{"list", "feed", "dashboard", "profile"},
			Templates: []string{
				"Create API endpoint for %s",
				"Implement database schema for %s",
			},
		},
		{
			ID:       "be-auth",
			Category: CategoryBackend,
			Kind:     KindKeyword,
			Keywords: []string{"login", "signup", "auth"},
			Templates: []string{
				"Implement user authentication system",
				"Set up session management",
			},
		},
		{
			ID:       "be-persistence",
			Category: CategoryBackend,
			Kind:     KindKeyword,
			Keywords: []string{"form", "submit", "save", "contact us"},
			Templates: []string{
				"Create data validation middleware",
				"Implement CRUD operations",
			},
		},
		{
			ID:       "be-realtime",
			Category: CategoryBackend,
			Kind:     KindKeyword,
			Keywords: []string{"chat", "notification", "live"},
			Templates: []string{
				"Set up WebSocket connections",
				"Implement real-time data synchronization",
			},
		},
		{
			ID:        "be-list-feed",
			Category:  CategoryBackend,
			Kind:      KindStructural,
			Templates: []string{"Implement paginated data feed for %s"},
		},

		// AI
		{
			ID:         "ai-chatbot",
			Category:   CategoryAI,
			Kind:       KindKeyword,
			Keywords:   []string{"chat", "chatbot", "messenger"},
			MinNameLen: 3,
			Templates:  []string{"Implement chatbot functionality"},
		},
		{
			ID:         "ai-recommendation",
			Category:   CategoryAI,
			Kind:       KindKeyword,
			Keywords:   []string{"recommendation", "suggest", "suggestions", "recommend"},
			MinNameLen: 6,
			Templates:  []string{"Implement recommendation engine"},
		},
		{
			ID:         "ai-search",
			Category:   CategoryAI,
			Kind:       KindKeyword,
			Keywords:   []string{"search", "filter", "find"},
			MinNameLen: 5,
			Templates:  []string{"Implement search algorithm and indexing"},
		},
		{
			ID:       "ai-generation",
			Category: CategoryAI,
			Kind:     KindKeyword,
			Keywords: []string{"generate", "ai", "smart", "auto"},
			Templates: []string{
				"Integrate AI content generation API",
				"Implement content moderation system",
			},
		},
		{
			ID:       "ai-media",
			Category: CategoryAI,
			Kind:     KindKeyword,
			Keywords: []string{"upload", "image", "photo", "media"},
			Templates: []string{
				"Implement image processing and optimization",
				"Add content analysis and tagging",
			},
		},
		{
			ID:       "ai-personalization",
			Category: CategoryAI,
			Kind:     KindKeyword,
			Keywords: []string{"personalize", "custom", "preference"},
			Templates: []string{
				"Create user behavior tracking system",
				"Implement personalization algorithms",
			},
		},
		{
			ID:       "ai-analytics",
			Category: CategoryAI,
			Kind:     KindKeyword,
			Keywords: []string{"analytics", "metrics", "insights"},
			Templates: []string{
				"Set up analytics data pipeline",
				"Implement data visualization algorithms",
			},
		},
	}
}
