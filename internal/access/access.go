// Package access is the single source of truth for "can the current actor do
// X". Every check operates on the session loaded by the middleware; a nil or
// role-less session fails every check — absence of a role is never an error,
// it is the weakest possible role.
package access

import (
	"pospenjualan/internal/model"
)

// HasAccess is the gating primitive: true iff the session carries a
// recognized role whose ordinal satisfies the required level.
func HasAccess(s *model.Session, required model.Role) bool {
	if s == nil || !s.Level.Valid() {
		return false
	}
	return s.Level >= required
}

// Page describes one entry of the fixed page table.
type Page struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Icon  string     `json:"icon"`
	Level model.Role `json:"level"`
}

// pages is the hand-declared allow-list, in menu order. It is declared
// independently of the role ordinal and must not be "simplified" into a
// per-role derivation; see the Manager level description in LevelOptions,
// which promises less than the ordinal check grants.
var pages = []Page{
	{ID: "dashboard", Name: "Dashboard", Icon: "fas fa-home", Level: model.RoleKasir},
	{ID: "sales", Name: "Sales", Icon: "fas fa-shopping-cart", Level: model.RoleKasir},
	{ID: "items", Name: "Item", Icon: "fas fa-boxes", Level: model.RoleKasir},
	{ID: "customers", Name: "Customer", Icon: "fas fa-users", Level: model.RoleKasir},
	{ID: "transactions", Name: "Transaction", Icon: "fas fa-receipt", Level: model.RoleKasir},
	{ID: "reports", Name: "Laporan", Icon: "fas fa-chart-bar", Level: model.RoleManager},
	{ID: "users", Name: "Pengguna", Icon: "fas fa-user-cog", Level: model.RoleAdmin},
}

// PageLevel returns the level required for a page id. Unknown pages require
// the strongest role (fail closed on unknown resources).
func PageLevel(pageID string) model.Role {
	for _, p := range pages {
		if p.ID == pageID {
			return p.Level
		}
	}
	return model.RoleAdmin
}

// CanAccessPage checks a single page against the table.
func CanAccessPage(s *model.Session, pageID string) bool {
	return HasAccess(s, PageLevel(pageID))
}

// AccessiblePages filters the page table down to what the session satisfies.
// Order is the declaration order of the table, stable across calls.
func AccessiblePages(s *model.Session) []Page {
	out := make([]Page, 0, len(pages))
	for _, p := range pages {
		if HasAccess(s, p.Level) {
			out = append(out, p)
		}
	}
	return out
}

// Permission tags granted per threshold crossed. Unlike the page table, the
// permission set is strictly additive along the ordinal.
var (
	kasirTags = []string{
		"view_dashboard",
		"create_sales",
		"view_sales",
		"create_transactions",
		"view_transactions",
		"manage_customers",
		"manage_items",
	}
	managerTags = []string{"view_reports", "export_data"}
	adminTags   = []string{"manage_users", "system_settings", "full_access"}
)

// Permissions returns the additive union of tag sets for every threshold the
// session's role satisfies.
func Permissions(s *model.Session) []string {
	if s == nil || !s.Level.Valid() {
		return []string{}
	}
	perms := make([]string, 0, len(kasirTags)+len(managerTags)+len(adminTags))
	if s.Level >= model.RoleKasir {
		perms = append(perms, kasirTags...)
	}
	if s.Level >= model.RoleManager {
		perms = append(perms, managerTags...)
	}
	if s.Level >= model.RoleAdmin {
		perms = append(perms, adminTags...)
	}
	return perms
}

// HasPermission is a membership test against Permissions.
func HasPermission(s *model.Session, tag string) bool {
	for _, p := range Permissions(s) {
		if p == tag {
			return true
		}
	}
	return false
}

// LevelOption feeds the level dropdown on the user form. The descriptions
// are kept verbatim from the product copy even where they disagree with what
// the ordinal check actually grants (Manager).
type LevelOption struct {
	Value       model.Role `json:"value"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

func LevelOptions() []LevelOption {
	return []LevelOption{
		{Value: model.RoleKasir, Name: model.RoleKasir.Name(), Description: "Bisa akses Sales, Transactions, Customers, Items"},
		{Value: model.RoleManager, Name: model.RoleManager.Name(), Description: "Hanya bisa akses Laporan"},
		{Value: model.RoleAdmin, Name: model.RoleAdmin.Name(), Description: "Akses penuh sistem termasuk Users"},
	}
}

// DashboardInfo bundles everything the dashboard header needs.
type DashboardInfo struct {
	Role          string   `json:"role"`
	RoleIcon      string   `json:"role_icon"`
	RoleColor     string   `json:"role_color"`
	Pages         []Page   `json:"accessible_pages"`
	Permissions   []string `json:"permissions"`
	PrimaryAction string   `json:"primary_action"`
	PrimaryPage   string   `json:"primary_page"`
	Description   string   `json:"description"`
}

// DashboardData derives the per-role dashboard bundle from the session.
func DashboardData(s *model.Session) DashboardInfo {
	info := DashboardInfo{
		Role:        model.Role(0).Name(),
		RoleIcon:    model.Role(0).Icon(),
		RoleColor:   model.Role(0).Color(),
		Pages:       AccessiblePages(s),
		Permissions: Permissions(s),
	}
	if s == nil {
		return info
	}
	info.Role = s.Level.Name()
	info.RoleIcon = s.Level.Icon()
	info.RoleColor = s.Level.Color()
	switch s.Level {
	case model.RoleKasir:
		info.PrimaryAction = "Buat Transaksi"
		info.PrimaryPage = "sales"
		info.Description = "Input transaksi penjualan, kelola sales, customer, dan item"
	case model.RoleManager:
		info.PrimaryAction = "Lihat Laporan"
		info.PrimaryPage = "reports"
		info.Description = "Hanya bisa mengakses laporan sistem"
	case model.RoleAdmin:
		info.PrimaryAction = "Kelola Sistem"
		info.PrimaryPage = "users"
		info.Description = "Akses penuh sistem dan kelola pengguna"
	}
	return info
}
