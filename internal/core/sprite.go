package core

import "math"

// quadrantRunes maps 4-bit sub-cell patterns to Unicode quadrant characters.
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = opaque).
var quadrantRunes = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// Sprite is a small bitmap in playfield pixels with per-pixel palette
// colors and a transparency mask.
type Sprite struct {
	W, H   int
	pix    []Color
	opaque []bool
}

// NewSprite creates a fully transparent sprite.
func NewSprite(w, h int) *Sprite {
	w, h = Max(w, 1), Max(h, 1)
	return &Sprite{
		W:      w,
		H:      h,
		pix:    make([]Color, w*h),
		opaque: make([]bool, w*h),
	}
}

// NewSolidSprite creates a sprite with every pixel set to c.
func NewSolidSprite(w, h int, c Color) *Sprite {
	s := NewSprite(w, h)
	for i := range s.pix {
		s.pix[i] = c
		s.opaque[i] = true
	}
	return s
}

// SetPixel marks the pixel at (x, y) opaque with color c.
func (s *Sprite) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return
	}
	s.pix[y*s.W+x] = c
	s.opaque[y*s.W+x] = true
}

// At returns the pixel color and whether it is opaque.
func (s *Sprite) At(x, y int) (Color, bool) {
	if x < 0 || x >= s.W || y < 0 || y >= s.H {
		return ColorDefault, false
	}
	i := y*s.W + x
	return s.pix[i], s.opaque[i]
}

// Scaled returns a nearest-neighbour resampled copy of size w×h.
func (s *Sprite) Scaled(w, h int) *Sprite {
	out := NewSprite(w, h)
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			if c, ok := s.At(x*s.W/out.W, y*s.H/out.H); ok {
				out.SetPixel(x, y, c)
			}
		}
	}
	return out
}

// Overlay returns a copy of s with the opaque pixels of top drawn over it.
// top is resampled to the size of s.
func (s *Sprite) Overlay(top *Sprite) *Sprite {
	out := s.Scaled(s.W, s.H)
	scaledTop := top.Scaled(s.W, s.H)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if c, ok := scaledTop.At(x, y); ok {
				out.SetPixel(x, y, c)
			}
		}
	}
	return out
}

// Viewport describes the logical playfield size that is mapped onto the
// whole screen.
type Viewport struct {
	W, H int
}

// ToScreen converts a playfield point to a screen cell.
func (v Viewport) ToScreen(s *Screen, x, y int) (int, int) {
	if v.W <= 0 || v.H <= 0 {
		return 0, 0
	}
	return x * s.width / v.W, y * s.height / v.H
}

type quadCell struct {
	bits  int
	color Color
	set   bool
}

// Blit rasterises sp stretched over the playfield rectangle dst.
// Each screen cell is split into 2×2 sub-pixels which are sampled from the
// sprite and combined into a quadrant glyph. Sprites smaller than one
// sub-pixel still cover at least one.
func (s *Screen) Blit(sp *Sprite, dst Rect, vp Viewport) {
	if sp == nil || s.width == 0 || s.height == 0 || vp.W <= 0 || vp.H <= 0 || dst.W <= 0 || dst.H <= 0 {
		return
	}

	subW, subH := 2*s.width, 2*s.height
	fx := float64(subW) / float64(vp.W)
	fy := float64(subH) / float64(vp.H)

	sx0 := int(math.Floor(float64(dst.X) * fx))
	sx1 := int(math.Ceil(float64(dst.Right()) * fx))
	sy0 := int(math.Floor(float64(dst.Y) * fy))
	sy1 := int(math.Ceil(float64(dst.Bottom()) * fy))
	if sx1 <= sx0 {
		sx1 = sx0 + 1
	}
	if sy1 <= sy0 {
		sy1 = sy0 + 1
	}
	sx0, sx1 = Clamp(sx0, 0, subW), Clamp(sx1, 0, subW)
	sy0, sy1 = Clamp(sy0, 0, subH), Clamp(sy1, 0, subH)
	if sx0 >= sx1 || sy0 >= sy1 {
		return
	}

	cx0, cy0 := sx0/2, sy0/2
	cols := (sx1-1)/2 - cx0 + 1
	rows := (sy1-1)/2 - cy0 + 1
	acc := make([]quadCell, cols*rows)

	for sy := sy0; sy < sy1; sy++ {
		wy := (float64(sy) + 0.5) / fy
		v := Clamp(int((wy-float64(dst.Y))*float64(sp.H)/float64(dst.H)), 0, sp.H-1)
		for sx := sx0; sx < sx1; sx++ {
			wx := (float64(sx) + 0.5) / fx
			u := Clamp(int((wx-float64(dst.X))*float64(sp.W)/float64(dst.W)), 0, sp.W-1)

			c, ok := sp.At(u, v)
			if !ok {
				continue
			}
			q := &acc[(sy/2-cy0)*cols+(sx/2-cx0)]
			q.bits |= 1 << ((sx & 1) + 2*(sy&1))
			if !q.set {
				q.color = c
				q.set = true
			}
		}
	}

	for i, q := range acc {
		if q.bits == 0 {
			continue
		}
		s.SetCell(cx0+i%cols, cy0+i/cols, Cell{Rune: quadrantRunes[q.bits], Color: q.color})
	}
}
