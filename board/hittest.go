package board

import "whiteboard-server/models"

// Text elements carry no explicit extent, so their bounds are estimated from
// the font size and glyph count. Hit testing and rendering share the estimate
// so a selection outline always matches the clickable area.
const (
	defaultHitFontSize = 16.0
	glyphAdvanceRatio  = 0.6
	lineHeightRatio    = 1.2
)

// ElementBounds returns the axis-aligned box an element occupies.
func ElementBounds(el models.Element) (x, y, w, h float64) {
	x, y = el.X, el.Y
	switch el.Type {
	case models.ElementRectangle:
		if el.Width != nil {
			w = *el.Width
		}
		if el.Height != nil {
			h = *el.Height
		}
	case models.ElementText:
		size := defaultHitFontSize
		if el.FontSize != nil {
			size = *el.FontSize
		}
		text := ""
		if el.Text != nil {
			text = *el.Text
		}
		w = float64(len([]rune(text))) * size * glyphAdvanceRatio
		h = size * lineHeightRatio
	}
	return x, y, w, h
}

// hitTest returns the topmost element under the pointer, or nil. Later
// entries in the visible list draw on top of earlier ones.
func hitTest(elements []models.Element, px, py float64) *models.Element {
	for i := len(elements) - 1; i >= 0; i-- {
		x, y, w, h := ElementBounds(elements[i])
		if px >= x && px <= x+w && py >= y && py <= y+h {
			return &elements[i]
		}
	}
	return nil
}
