// Package navigation builds the permission-driven navigation structures of
// the admin console: the module forest rendered as the sidebar menu and the
// flat, ordered permission list the dynamic route table is derived from.
package navigation

// Permission represents a single grantable capability of the logged-in
// user, optionally bound to a navigable page route. Description is the
// access-control key; it is matched exactly (case-sensitive).
type Permission struct {
	ID            uint   `json:"id"`
	Description   string `json:"description"`
	Route         string `json:"route,omitempty"`
	VisibleInMenu bool   `json:"visible_in_menu"`
}

// Module represents a navigable or organizational grouping node of the
// menu tree. ParentID is nil for roots; Children is derived client-side of
// the database by BuildHierarchy and never transmitted upward.
type Module struct {
	ID          uint         `json:"id"`
	Description string       `json:"description"`
	ParentID    *uint        `json:"parent_id,omitempty"`
	Permissions []Permission `json:"permissions"`
	Children    []*Module    `json:"children,omitempty"`
}

// BuildHierarchy converts a flat list of modules into a rooted forest with
// populated Children. It works in two passes so parents may appear after
// their children in the input: first every module is cloned and indexed by
// id, then each node is attached to its parent's Children when the parent
// id resolves within the index. A node whose parent id does not resolve is
// promoted to a root. Root order and sibling order match input order.
func BuildHierarchy(modules []*Module) []*Module {
	index := make(map[uint]*Module, len(modules))
	ordered := make([]*Module, 0, len(modules))

	for _, mod := range modules {
		clone := *mod
		clone.Children = make([]*Module, 0)
		index[clone.ID] = &clone
		ordered = append(ordered, &clone)
	}

	roots := make([]*Module, 0, len(ordered))

	for _, node := range ordered {
		if node.ParentID != nil {
			if parent, ok := index[*node.ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}

		// parent absent from the assigned set (or self-referential):
		// the orphan roots silently so its pages stay reachable
		roots = append(roots, node)
	}

	return roots
}

// FlattenPermissions walks the module forest depth-first and collects every
// permission into one flat list: a module's own permissions first, then the
// permissions of its children, siblings in input order. The flat list feeds
// the dynamic route table and the "all permissions held" view, which must
// stay consistent with each other.
func FlattenPermissions(modules []*Module) []Permission {
	out := make([]Permission, 0)

	for _, mod := range modules {
		out = append(out, mod.Permissions...)
		out = append(out, FlattenPermissions(mod.Children)...)
	}

	return out
}

// HasPermission reports whether a permission with the exact description
// exists anywhere in the module forest. A nil or empty forest holds no
// permissions.
func HasPermission(modules []*Module, description string) bool {
	for _, mod := range modules {
		for _, perm := range mod.Permissions {
			if perm.Description == description {
				return true
			}
		}

		if HasPermission(mod.Children, description) {
			return true
		}
	}

	return false
}
