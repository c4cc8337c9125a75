package dashboard

import "testing"

func TestShell_Navigate(t *testing.T) {
	var gotPath string
	s := NewShell(DefaultMenu(), func(path string) { gotPath = path })

	if s.ActivePath() != "/dashboard" {
		t.Errorf("ActivePath() = %q, want %q", s.ActivePath(), "/dashboard")
	}

	s.Navigate("/cities")
	if s.ActivePath() != "/cities" || !s.IsActive("/cities") {
		t.Errorf("ActivePath() = %q", s.ActivePath())
	}
	if gotPath != "/cities" {
		t.Errorf("onNavigate path = %q", gotPath)
	}
}

func TestShell_sectionsDefaultClosed(t *testing.T) {
	s := NewShell(DefaultMenu(), nil)

	for _, section := range s.Menu() {
		if section.Collapsible && s.SectionOpen(section.ID) {
			t.Errorf("section %q open by default", section.ID)
		}
	}

	s.ToggleSection("base-data")
	if !s.SectionOpen("base-data") {
		t.Error("ToggleSection() did not open the section")
	}
	// collapsing has no effect on any other state
	s.ToggleSection("base-data")
	if s.SectionOpen("base-data") {
		t.Error("ToggleSection() did not close the section")
	}
	if s.ActivePath() != "/dashboard" {
		t.Errorf("ActivePath() = %q changed by toggling", s.ActivePath())
	}
}

func TestShell_drawerBehavior(t *testing.T) {
	s := NewShell(DefaultMenu(), nil)

	// docked on a wide viewport: always part of the layout
	if !s.DrawerVisible() {
		t.Error("DrawerVisible() = false on wide viewport")
	}

	s.SetViewport(ViewportNarrow)
	if s.DrawerVisible() {
		t.Error("DrawerVisible() = true with drawer closed")
	}

	s.OpenDrawer()
	if !s.DrawerVisible() {
		t.Error("DrawerVisible() = false with drawer open")
	}

	// navigating from the overlay closes it
	s.Navigate("/agencies")
	if s.DrawerVisible() {
		t.Error("Navigate() left the drawer open on a narrow viewport")
	}

	// back to wide: drawer state resets
	s.OpenDrawer()
	s.SetViewport(ViewportWide)
	if !s.DrawerVisible() {
		t.Error("DrawerVisible() = false after returning to wide viewport")
	}

	s.SetViewport(ViewportNarrow)
	if s.DrawerVisible() {
		t.Error("drawer survived the viewport roundtrip")
	}
}

func TestDefaultMenu(t *testing.T) {
	menu := DefaultMenu()
	if len(menu) != 5 {
		t.Fatalf("DefaultMenu() sections = %d, want 5", len(menu))
	}
	if menu[0].Path != "/dashboard" || menu[0].Collapsible {
		t.Errorf("home section = %+v", menu[0])
	}

	baseData := menu[1]
	if !baseData.Collapsible || len(baseData.Children) != 8 {
		t.Errorf("base-data section = %+v", baseData)
	}
	if baseData.Children[0].Path != "/cities" || baseData.Children[0].Badge != "5" {
		t.Errorf("cities item = %+v", baseData.Children[0])
	}
}
