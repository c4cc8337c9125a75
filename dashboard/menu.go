package dashboard

type (
	// MenuItem is a single navigable entry. Badge is display-only and may
	// carry a count or a short text like "NEW".
	MenuItem struct {
		ID    string
		Label string
		Icon  string
		Path  string
		Badge string
	}

	// MenuSection is either a flat navigable item (Path set) or a collapsible
	// group of items (Collapsible set, Children populated).
	MenuSection struct {
		ID          string
		Label       string
		Icon        string
		Collapsible bool
		Path        string
		Children    []MenuItem
	}
)

type Viewport int

const (
	// ViewportWide keeps the shell persistently docked.
	ViewportWide Viewport = iota
	// ViewportNarrow turns the shell into an overlay drawer that closes
	// itself after a navigation selection.
	ViewportNarrow
)

// Shell is the navigation shell's view state: a static menu tree, per-section
// collapse state (default closed), the active path and the drawer behavior.
// Collapsing or expanding a section has no data consequence.
type Shell struct {
	menu         []MenuSection
	activePath   string
	openSections map[string]bool
	viewport     Viewport
	drawerOpen   bool
	onNavigate   func(path string)
}

// NewShell builds a shell over menu. onNavigate reports the user's selection
// upward as an opaque path string; it may be nil.
func NewShell(menu []MenuSection, onNavigate func(path string)) *Shell {
	return &Shell{
		menu:         menu,
		activePath:   "/dashboard",
		openSections: make(map[string]bool),
		onNavigate:   onNavigate,
	}
}

func (s *Shell) Menu() []MenuSection { return s.menu }
func (s *Shell) ActivePath() string  { return s.activePath }

func (s *Shell) IsActive(path string) bool { return s.activePath == path }

// Navigate selects a path, reports it upward and, on a narrow viewport,
// closes the drawer.
func (s *Shell) Navigate(path string) {
	s.activePath = path
	if s.onNavigate != nil {
		s.onNavigate(path)
	}
	if s.viewport == ViewportNarrow {
		s.drawerOpen = false
	}
}

// ToggleSection flips one collapsible section's open state.
func (s *Shell) ToggleSection(id string) {
	s.openSections[id] = !s.openSections[id]
}

func (s *Shell) SectionOpen(id string) bool { return s.openSections[id] }

func (s *Shell) SetViewport(v Viewport) {
	s.viewport = v
	if v == ViewportWide {
		s.drawerOpen = false
	}
}

func (s *Shell) Viewport() Viewport { return s.viewport }

// DrawerVisible reports whether the shell is currently part of the layout:
// always true when docked, only while the drawer is open when narrow.
func (s *Shell) DrawerVisible() bool {
	if s.viewport == ViewportWide {
		return true
	}
	return s.drawerOpen
}

func (s *Shell) OpenDrawer()  { s.drawerOpen = true }
func (s *Shell) CloseDrawer() { s.drawerOpen = false }

// DefaultMenu is the network's static menu configuration.
func DefaultMenu() []MenuSection {
	return []MenuSection{
		{ID: "home", Label: "Dashboard", Icon: "layout-dashboard", Path: "/dashboard"},
		{
			ID: "base-data", Label: "Données de Base", Icon: "briefcase", Collapsible: true,
			Children: []MenuItem{
				{ID: "cities", Label: "Villes", Icon: "map-pin", Path: "/cities", Badge: "5"},
				{ID: "agencies", Label: "Agences", Icon: "building-2", Path: "/agencies", Badge: "15"},
				{ID: "zones", Label: "Zones", Icon: "map", Path: "/zones", Badge: "5"},
				{ID: "sales", Label: "Commerciaux", Icon: "users", Path: "/sales", Badge: "15"},
				{ID: "services", Label: "Services", Icon: "briefcase", Path: "/services"},
				{ID: "exam-sessions", Label: "Session d'exam", Icon: "calendar", Path: "/exam-sessions", Badge: "3"},
				{ID: "clients", Label: "Clients", Icon: "user-check", Path: "/clients", Badge: "247"},
				{ID: "trainings", Label: "Formations", Icon: "graduation-cap", Path: "/trainings", Badge: "18"},
			},
		},
		{
			ID: "finance", Label: "Finance", Icon: "credit-card", Collapsible: true,
			Children: []MenuItem{
				{ID: "registrations", Label: "Inscriptions", Icon: "user-check", Path: "/finance/registrations", Badge: "NEW"},
				{ID: "payment-history", Label: "Histo. Paiement", Icon: "history", Path: "/finance/payment-history"},
				{ID: "client-tracking", Label: "Suivie Clients", Icon: "user-cog", Path: "/finance/client-tracking", Badge: "12"},
				{ID: "expense-history", Label: "Histo. Dépenses", Icon: "receipt", Path: "/finance/expense-history"},
				{ID: "transaction-history", Label: "Histo. Transaction", Icon: "arrow-left-right", Path: "/finance/transaction-history"},
			},
		},
		{
			ID: "financial-reporting", Label: "Reporting Financier", Icon: "bar-chart-3", Collapsible: true,
			Children: []MenuItem{
				{ID: "registration-stats", Label: "Stats. inscriptions", Icon: "trending-up", Path: "/reporting/registration-stats"},
				{ID: "city-performance", Label: "Performance Villes", Icon: "map-pin", Path: "/reporting/city-performance"},
				{ID: "agency-performance", Label: "Performance Agences", Icon: "building-2", Path: "/reporting/agency-performance"},
				{ID: "zone-performance", Label: "Performance Zones", Icon: "map", Path: "/reporting/zone-performance"},
				{ID: "training-performance", Label: "Perfor. Formations", Icon: "graduation-cap", Path: "/reporting/training-performance"},
				{ID: "sales-performance", Label: "Perfor. commerciaux", Icon: "users", Path: "/reporting/sales-performance"},
				{ID: "transaction-balance", Label: "Bilan Transaction", Icon: "arrow-left-right", Path: "/reporting/transaction-balance"},
			},
		},
		{
			ID: "settings", Label: "Paramètres", Icon: "settings", Collapsible: true,
			Children: []MenuItem{
				{ID: "users", Label: "Utilisateurs", Icon: "users", Path: "/settings/users", Badge: "24"},
				{ID: "roles", Label: "Rôles & permissions", Icon: "shield", Path: "/settings/roles"},
				{ID: "service-packs", Label: "Services / Packs", Icon: "package", Path: "/settings/service-packs"},
				{ID: "system-settings", Label: "Paramètres système", Icon: "cog", Path: "/settings/system"},
			},
		},
	}
}
