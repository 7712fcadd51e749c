package navigation

// MenuItem is one entry of the sidebar menu: a module node with its
// sub-modules and permission leaves, or a permission leaf itself.
// Navigable is true only for leaves bound to a page route; a visible
// permission without a route renders as inert text.
type MenuItem struct {
	ID        uint       `json:"id"`
	Title     string     `json:"title"`
	Route     string     `json:"route,omitempty"`
	Navigable bool       `json:"navigable"`
	Items     []MenuItem `json:"items,omitempty"`
	Children  []MenuItem `json:"children,omitempty"`
}

// BuildMenu renders the module forest as menu items for the sidebar.
// Permissions not flagged as menu-visible are omitted; a module with no
// visible permissions and no surviving children is dropped entirely, so
// hidden capabilities never leave an empty header behind. Each module node
// collapses independently on the client, so no open/closed state is kept
// here.
func BuildMenu(roots []*Module) []MenuItem {
	items := make([]MenuItem, 0, len(roots))

	for _, mod := range roots {
		item := MenuItem{
			ID:    mod.ID,
			Title: mod.Description,
		}

		for _, perm := range mod.Permissions {
			if !perm.VisibleInMenu {
				continue
			}

			item.Items = append(item.Items, MenuItem{
				ID:        perm.ID,
				Title:     perm.Description,
				Route:     perm.Route,
				Navigable: perm.Route != "",
			})
		}

		item.Children = BuildMenu(mod.Children)

		if len(item.Items) == 0 && len(item.Children) == 0 {
			continue
		}

		items = append(items, item)
	}

	return items
}
