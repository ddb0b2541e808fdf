package main

// handleNavigation moves the pointer from the keyboard, for terminals
// without mouse motion reporting. Letter keys are taken by the alphabet,
// so only arrows and home/end move it.
func (m *model) handleNavigation(key string) {
	geom := m.session.Geometry
	switch key {
	case "left", "shift+left":
		m.pointerX -= m.getMoveSpeed(key)
	case "right", "shift+right":
		m.pointerX += m.getMoveSpeed(key)
	case "home":
		m.pointerX = geom.PointerFor(0)
	case "end":
		m.pointerX = geom.PointerFor(1)
	}
	m.ensurePointerInBounds()
}

func (m *model) ensurePointerInBounds() {
	width := m.session.Geometry.Width
	if m.pointerX < 0 {
		m.pointerX = 0
	}
	if m.pointerX > width {
		m.pointerX = width
	}
}

func (m *model) getMoveSpeed(key string) float64 {
	switch key {
	case "shift+left", "shift+right":
		return 5 * pointerStep
	default:
		return pointerStep
	}
}
