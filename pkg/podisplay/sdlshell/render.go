package sdlshell

import (
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/screen"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	margin      = int32(20)
	rowSpacing  = int32(6)
	pillPadding = int32(8)
)

type fonts struct {
	large *ttf.Font
	small *ttf.Font
}

func openFonts(path string) (*fonts, error) {
	large, err := ttf.OpenFont(path, 28)
	if err != nil {
		return nil, err
	}
	small, err := ttf.OpenFont(path, 20)
	if err != nil {
		large.Close()
		return nil, err
	}
	return &fonts{large: large, small: small}, nil
}

func (f *fonts) close() {
	f.large.Close()
	f.small.Close()
}

type painter struct {
	window *Window
	theme  Theme
	fonts  *fonts
	cache  *textureCache
}

func (p *painter) draw(frame screen.Frame) {
	r := p.window.Renderer
	bg := p.theme.BackgroundColor
	r.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	r.Clear()

	width := p.window.Width()
	height := p.window.Height()

	y := p.header(frame, width)
	for _, line := range frame.Lines {
		y += p.row(line, margin, y, width-2*margin) + rowSpacing
	}

	if frame.Overlay != nil {
		p.overlay(frame.Overlay, width, height)
	}

	p.toasts(frame.Toasts, width, height)
	p.footer(frame.Footer, height)

	p.window.Present()
}

func (p *painter) header(frame screen.Frame, width int32) int32 {
	headerHeight := int32(p.fonts.large.Height()+p.fonts.small.Height()) + 3*rowSpacing
	p.fill(sdl.Rect{X: 0, Y: 0, W: width, H: headerHeight}, p.theme.AccentColor)

	p.text(p.fonts.large, frame.Title, margin, rowSpacing, p.theme.TextColor)
	p.text(p.fonts.small, frame.Hash, margin, int32(p.fonts.large.Height())+2*rowSpacing, p.theme.HintColor)
	return headerHeight + margin
}

func (p *painter) row(line screen.Line, x, y, w int32) int32 {
	h := int32(p.fonts.small.Height()) + 2*rowSpacing
	color := p.theme.TextColor
	if line.Focused {
		p.fill(sdl.Rect{X: x, Y: y, W: w, H: h}, p.theme.HighlightColor)
		color = p.theme.HighlightedTextColor
	} else if !line.Focusable {
		color = p.theme.HintColor
	}

	labelWidth := p.text(p.fonts.small, line.Label, x+pillPadding, y+rowSpacing, color)
	if line.Value != "" {
		p.text(p.fonts.small, line.Value, x+pillPadding+max(labelWidth+margin, w/3), y+rowSpacing, color)
	}
	return h
}

func (p *painter) overlay(o *screen.OverlayFrame, width, height int32) {
	rowHeight := int32(p.fonts.small.Height()) + 3*rowSpacing
	boxWidth := width * 2 / 3
	boxHeight := int32(p.fonts.large.Height()) + 4*rowSpacing + rowHeight*int32(max(len(o.Items), 1))
	box := sdl.Rect{X: (width - boxWidth) / 2, Y: (height - boxHeight) / 2, W: boxWidth, H: boxHeight}

	p.fill(sdl.Rect{X: box.X - 2, Y: box.Y - 2, W: box.W + 4, H: box.H + 4}, p.theme.AccentColor)
	p.fill(box, p.theme.BackgroundColor)

	p.text(p.fonts.large, o.Title, box.X+margin, box.Y+rowSpacing, p.theme.TextColor)
	y := box.Y + int32(p.fonts.large.Height()) + 2*rowSpacing
	for _, item := range o.Items {
		y += p.row(item, box.X+margin, y, box.W-2*margin) + rowSpacing
	}
}

func (p *painter) toasts(toasts []string, width, height int32) {
	y := height - margin - 2*int32(p.fonts.small.Height()) - 4*pillPadding
	for i := len(toasts) - 1; i >= 0; i-- {
		w, h := p.size(p.fonts.small, toasts[i])
		rect := sdl.Rect{X: (width-w)/2 - pillPadding, Y: y - h - pillPadding, W: w + 2*pillPadding, H: h + 2*pillPadding}
		p.fill(rect, p.theme.ToastColor)
		p.text(p.fonts.small, toasts[i], rect.X+pillPadding, rect.Y+pillPadding, p.theme.TextColor)
		y = rect.Y - rowSpacing
	}
}

func (p *painter) footer(items []screen.FooterHelpItem, height int32) {
	x := margin
	y := height - margin - int32(p.fonts.small.Height()) - 2*pillPadding
	for _, item := range items {
		w, h := p.size(p.fonts.small, item.ButtonName)
		pill := sdl.Rect{X: x, Y: y, W: w + 2*pillPadding, H: h + 2*pillPadding}
		p.fill(pill, p.theme.HighlightColor)
		p.text(p.fonts.small, item.ButtonName, x+pillPadding, y+pillPadding, p.theme.ButtonLabelColor)
		x += pill.W + pillPadding
		x += p.text(p.fonts.small, item.HelpText, x, y+pillPadding, p.theme.TextColor) + 2*margin
	}
}

func (p *painter) fill(rect sdl.Rect, color sdl.Color) {
	p.window.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	p.window.Renderer.FillRect(&rect)
}

func (p *painter) size(font *ttf.Font, text string) (int32, int32) {
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// text draws text at (x, y) and returns its width.
func (p *painter) text(font *ttf.Font, text string, x, y int32, color sdl.Color) int32 {
	if text == "" {
		return 0
	}

	key := textKey(font, text, color)
	entry, ok := p.cache.get(key)
	if !ok {
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			return 0
		}
		texture, err := p.window.Renderer.CreateTextureFromSurface(surface)
		entry = cachedTexture{texture: texture, w: surface.W, h: surface.H}
		surface.Free()
		if err != nil {
			return 0
		}
		p.cache.set(key, entry)
	}

	p.window.Renderer.Copy(entry.texture, nil, &sdl.Rect{X: x, Y: y, W: entry.w, H: entry.h})
	return entry.w
}
