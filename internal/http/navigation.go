package httpx

import (
	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
)

// NavItem is a single sidebar link.
type NavItem struct {
	Label string
	Href  string
	Page  string
}

// NavSection groups related sidebar links under a heading.
type NavSection struct {
	Heading string
	Items   []NavItem
}

// navEntry tags a section with the roles allowed to see it. An empty
// role list means every authenticated user, whatever their role.
type navEntry struct {
	section NavSection
	roles   []domainauth.Role
}

// navEntries is the static navigation definition. Filtering happens per
// request against the session role; unknown roles see only the untagged
// sections.
//
//nolint:gochecknoglobals // static read-only navigation definition
var navEntries = []navEntry{
	{
		section: NavSection{
			Heading: "Administration",
			Items: []NavItem{
				{Label: "Users", Href: "/users", Page: PageUsers},
				{Label: "Add User", Href: "/users/new", Page: PageUserForm},
			},
		},
		roles: []domainauth.Role{domainauth.RoleAdmin},
	},
	{
		section: NavSection{
			Heading: "Store Management",
			Items: []NavItem{
				{Label: "Dashboard", Href: "/dashboard", Page: PageDashboard},
				{Label: "Add Store", Href: "/stores/new", Page: PageStoreForm},
			},
		},
		roles: []domainauth.Role{domainauth.RoleStoreOwner, domainauth.RoleOwner, domainauth.RoleAdmin},
	},
	{
		section: NavSection{
			Heading: "Browse & Rate",
			Items: []NavItem{
				{Label: "Stores", Href: "/stores", Page: PageStores},
			},
		},
		roles: []domainauth.Role{
			domainauth.RoleCustomer,
			domainauth.RoleStoreOwner,
			domainauth.RoleOwner,
			domainauth.RoleAdmin,
		},
	},
	{
		section: NavSection{
			Heading: "Account",
			Items: []NavItem{
				{Label: "Settings", Href: "/settings", Page: PageSettings},
			},
		},
	},
}

// NavigationFor returns the sidebar sections visible to the given session.
// Anonymous visitors get no sections; sessions with an unrecognized role
// see only the common sections.
func NavigationFor(sess *domainauth.Session) []NavSection {
	if sess == nil {
		return nil
	}

	sections := make([]NavSection, 0, len(navEntries))
	for _, entry := range navEntries {
		if !roleAllowed(sess.Role, entry.roles) {
			continue
		}
		sections = append(sections, entry.section)
	}
	return sections
}

func roleAllowed(role domainauth.Role, allowed []domainauth.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
