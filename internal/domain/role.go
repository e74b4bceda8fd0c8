package domain

// Role is a closed set. Each role carries its own fixed navigation
// entries instead of a string-keyed menu lookup.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleWaiter  Role = "waiter"
	RoleKitchen Role = "kitchen"
)

type NavEntry struct {
	Name string
	Path string
}

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleWaiter, RoleKitchen:
		return Role(s), true
	}
	return "", false
}

// NavEntries returns the role's dashboard menu. Unknown roles get none.
func (r Role) NavEntries() []NavEntry {
	switch r {
	case RoleAdmin:
		return []NavEntry{
			{Name: "Dashboard", Path: "/admin"},
			{Name: "Items", Path: "/admin/products"},
			{Name: "Categories", Path: "/admin/categories"},
			{Name: "Orders", Path: "/admin/orders"},
			{Name: "Users", Path: "/admin/users"},
		}
	case RoleWaiter:
		return []NavEntry{
			{Name: "Dashboard", Path: "/waiter"},
			{Name: "Take Order", Path: "/waiter/order"},
		}
	case RoleKitchen:
		return []NavEntry{
			{Name: "Dashboard", Path: "/kitchen"},
			{Name: "Completed Orders", Path: "/kitchen/completed-orders"},
		}
	}
	return nil
}
