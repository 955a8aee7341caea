// Package render draws the static overlay image: three single-currency
// progress rows and one stacked BSC row, on a transparent canvas sized for
// an OBS source. Geometry is fixed; only the values change between runs.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"

	"github.com/Extraversi0n/road-to-brivJ/internal/calculator"
	"github.com/Extraversi0n/road-to-brivJ/internal/model"
	"github.com/Extraversi0n/road-to-brivJ/internal/progress"
)

// Canvas geometry.
const (
	ImgWidth   = 950
	RowHeight  = 84
	Padding    = 16
	IconSize   = 56
	BarWidth   = 520
	BarHeight  = 22
	TitleGap   = 10
	LegendGap  = 6
	titleLineH = 16
)

// Palette.
var (
	colorGold    = color.RGBA{255, 215, 0, 255}
	colorSilver  = color.RGBA{192, 192, 192, 255}
	colorGems    = color.RGBA{100, 200, 150, 255}
	colorBase    = color.RGBA{80, 170, 255, 255}
	colorBarBG   = color.RGBA{40, 40, 40, 255}
	colorOutline = color.RGBA{58, 58, 58, 255}
	colorTitle   = color.RGBA{255, 255, 255, 255}
	colorPct     = color.RGBA{220, 220, 220, 255}
	colorMeta    = color.RGBA{210, 210, 210, 255}
	colorDate    = color.RGBA{180, 180, 180, 255}
)

// Overlay renders snapshots to PNG files.
type Overlay struct {
	icons *IconSet
	med   font.Face
	small font.Face
}

// NewOverlay creates a renderer. fontPath may be empty, in which case a
// built-in bitmap face is used. iconDir may be empty to skip icons.
func NewOverlay(fontPath, iconDir string) *Overlay {
	return &Overlay{
		icons: NewIconSet(iconDir),
		med:   loadFace(fontPath, 21),
		small: loadFace(fontPath, 15),
	}
}

// WritePNG renders the snapshot and writes it to path.
func (o *Overlay) WritePNG(snap *model.Snapshot, path string) error {
	img := o.Render(snap)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Render draws the full overlay for one snapshot.
func (o *Overlay) Render(snap *model.Snapshot) *image.RGBA {
	imgH := Padding*2 + 4*RowHeight + 40
	img := image.NewRGBA(image.Rect(0, 0, ImgWidth, imgH))

	// Date line, e.g. "28 September 2025".
	o.text(img, Padding, 6+titleLineH, snap.GeneratedAt.Format("2 January 2006"), o.small, colorDate)

	segColors := []color.RGBA{colorBase, colorGold, colorSilver, colorGems}
	barColors := []color.RGBA{colorGold, colorSilver, colorGems}
	iconNames := []string{IconGold, IconSilver, IconGems}

	y0 := 26
	for i, block := range snap.Blocks {
		suffix := fmt.Sprintf(" (%d = 1 BSC)", block.Ratio)
		o.drawCurrencyRow(img, y0+i*RowHeight, block, o.icons.Load(iconNames[i]), barColors[i], suffix)
	}
	o.drawStackedRow(img, y0+3*RowHeight, snap, segColors, o.icons.Load(IconBSC))

	return img
}

// drawCurrencyRow draws one single-currency block: title with percent on the
// right, the bar, and a Remaining/Goal meta line.
func (o *Overlay) drawCurrencyRow(img *image.RGBA, y int, block model.CurrencyBlock, icon image.Image, barColor color.RGBA, metaSuffix string) {
	barX := Padding
	if icon != nil {
		barX += IconSize + 10
	}
	barY := y + titleLineH + TitleGap

	o.drawBarFrame(img, barX, barY)

	frac := 0.0
	if block.RawGoal > 0 {
		frac = float64(block.Raw) / float64(block.RawGoal)
		if frac > 1 {
			frac = 1
		}
	}
	if fillW := int(float64(BarWidth) * frac); fillW > 0 {
		fillRect(img, barX, barY, fillW, BarHeight, barColor)
	}

	if icon != nil {
		pasteIcon(img, icon, Padding, y+(RowHeight-IconSize)/2)
	}

	o.text(img, barX, y+titleLineH, block.Title, o.med, colorTitle)
	pct := calculator.Percent(block.Raw, block.RawGoal)
	o.textRight(img, barX+BarWidth, y+titleLineH, pct, o.small, colorPct)

	remaining := block.RawGoal - block.Raw
	if remaining < 0 {
		remaining = 0
	}
	meta := fmt.Sprintf("Remaining: %s • Goal: %s%s",
		calculator.FormatUnits(remaining), calculator.FormatUnits(block.RawGoal), metaSuffix)
	o.text(img, barX, barY+BarHeight+4+titleLineH, meta, o.small, colorMeta)
}

// drawStackedRow draws the combined BSC block: stacked segments against the
// global goal, a legend of per-segment values, and the remaining/goal line.
func (o *Overlay) drawStackedRow(img *image.RGBA, y int, snap *model.Snapshot, segColors []color.RGBA, icon image.Image) {
	barX := Padding
	if icon != nil {
		barX += IconSize + 10
	}
	barY := y + titleLineH + TitleGap

	o.drawBarFrame(img, barX, barY)

	widths := progress.SegmentWidths(snap.Segments[:], snap.Goal, BarWidth)
	used := 0
	for i, w := range widths {
		if w <= 0 {
			continue
		}
		fillRect(img, barX+used, barY, w, BarHeight, segColors[i])
		used += w
	}

	if icon != nil {
		pasteIcon(img, icon, Padding, y+(RowHeight-IconSize)/2)
	}

	o.text(img, barX, y+titleLineH, "Blacksmith Contracts", o.med, colorTitle)
	o.textRight(img, barX+BarWidth, y+titleLineH, calculator.Percent(snap.Total, snap.Goal), o.small, colorPct)

	legend := ""
	for i, seg := range snap.Segments {
		if i > 0 {
			legend += " | "
		}
		legend += fmt.Sprintf("%s %s", seg.Label, calculator.FormatUnits(seg.Value))
	}
	o.text(img, barX, barY+BarHeight+LegendGap+titleLineH, legend, o.small, colorMeta)

	meta := fmt.Sprintf("Remaining: %s • Goal: %s",
		calculator.FormatUnits(snap.Remaining), calculator.FormatUnits(snap.Goal))
	o.text(img, barX, barY+BarHeight+LegendGap+18+titleLineH, meta, o.small, colorMeta)
}

func (o *Overlay) drawBarFrame(img *image.RGBA, x, y int) {
	fillRect(img, x, y, BarWidth, BarHeight, colorBarBG)
	outlineRect(img, x, y, BarWidth, BarHeight, colorOutline)
}

func (o *Overlay) text(img *image.RGBA, x, y int, s string, face font.Face, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixedPoint(x, y),
	}
	d.DrawString(s)
}

func (o *Overlay) textRight(img *image.RGBA, right, y int, s string, face font.Face, c color.RGBA) {
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face}
	w := d.MeasureString(s).Ceil()
	d.Dot = fixedPoint(right-w, y)
	d.DrawString(s)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	draw.Draw(img, image.Rect(x, y, x+w, y+h), image.NewUniform(c), image.Point{}, draw.Src)
}

func outlineRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for i := x; i < x+w; i++ {
		img.SetRGBA(i, y, c)
		img.SetRGBA(i, y+h-1, c)
	}
	for j := y; j < y+h; j++ {
		img.SetRGBA(x, j, c)
		img.SetRGBA(x+w-1, j, c)
	}
}
