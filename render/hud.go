package render

import "github.com/lixenwraith/echo-sandbox/parameter"

const keyHints = "zqsd/arrows move  c clone  v phantom  space pause  m mute  esc quit"

// drawHUD writes the metric lines top-left and key hints on the last row
func drawHUD(buf *RenderBuffer, overlay Overlay) {
	w, h := buf.Size()
	if w == 0 || h == 0 {
		return
	}

	y := parameter.HUDMarginY
	if overlay.Paused {
		buf.Text(parameter.HUDMarginX, y, "PAUSED", RgbHUDPaused)
		y++
	}
	if overlay.Muted {
		buf.Text(parameter.HUDMarginX, y, "muted", RgbHUDHint)
		y++
	}
	for _, line := range overlay.Lines {
		if y >= h-parameter.StatusLineHeight {
			break
		}
		buf.Text(parameter.HUDMarginX, y, line, RgbHUDText)
		y++
	}

	buf.Text(parameter.HUDMarginX, h-1, keyHints, RgbHUDHint)
}
