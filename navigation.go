package main

type tab int

const (
	tabControls tab = iota
	tabPresets
	tabCode
	tabStyles
)

var tabNames = []string{"Controls", "Presets", "Code", "Styles"}

func (t tab) String() string { return tabNames[t] }

// Tab navigation helpers
func (m *model) nextTab() {
	m.switchTab(tab((int(m.activeTab) + 1) % len(tabNames)))
}

func (m *model) prevTab() {
	m.switchTab(tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))
}

func (m *model) switchTab(t tab) {
	if t < 0 || int(t) >= len(tabNames) {
		return
	}
	m.activeTab = t
	if t == tabCode {
		m.refreshCode()
	}
}

// Control selection helpers
func (m *model) selectField(delta int) {
	n := len(controls)
	m.field = ((m.field+delta)%n + n) % n
}
