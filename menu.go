package shell

// Menu is the menu collaborator. Neither backend renders menus; every
// mutation is a logged no-op kept for API shape.
type Menu struct {
	popup bool
}

// NewMenu creates an empty menubar menu.
func NewMenu() *Menu {
	return &Menu{}
}

// NewMenuForPopup creates an empty context menu.
func NewMenuForPopup() *Menu {
	return &Menu{popup: true}
}

// AddDropdown adds a submenu.
func (m *Menu) AddDropdown(submenu *Menu, text string, enabled bool) {
	logger.Warn("Menu.AddDropdown unimplemented", "text", text)
}

// AddItem adds an entry to the menu.
func (m *Menu) AddItem(id uint32, text string, key *HotKey, enabled, selected bool) {
	logger.Warn("Menu.AddItem unimplemented", "id", id, "text", text)
}

// AddSeparator adds a separator line.
func (m *Menu) AddSeparator() {
	logger.Warn("Menu.AddSeparator unimplemented")
}
