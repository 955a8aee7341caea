package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Extraversi0n/road-to-brivJ/internal/model"
	"github.com/Extraversi0n/road-to-brivJ/internal/progress"
)

func testSnapshot() *model.Snapshot {
	inv := &model.Inventory{Gold: 100, Silver: 250, Gems: 10000}
	buffs := model.BuffAggregate{Total: 12, Breakdown: map[int64]int64{33: 2}}
	return progress.Build(inv, buffs, 1000)
}

func TestRender_CanvasSize(t *testing.T) {
	o := NewOverlay("", "")
	img := o.Render(testSnapshot())

	b := img.Bounds()
	if b.Dx() != ImgWidth {
		t.Errorf("width = %d, want %d", b.Dx(), ImgWidth)
	}
	wantH := Padding*2 + 4*RowHeight + 40
	if b.Dy() != wantH {
		t.Errorf("height = %d, want %d", b.Dy(), wantH)
	}
}

func TestRender_BarBackgroundPresent(t *testing.T) {
	o := NewOverlay("", "")
	img := o.Render(testSnapshot())

	// Without icons the first bar starts at Padding; the fill for gold
	// (100/943 of the bar) covers the left edge.
	barY := 26 + titleLineH + TitleGap
	got := img.RGBAAt(Padding+1, barY+BarHeight/2)
	if got != colorGold {
		t.Errorf("expected gold fill at bar start, got %v", got)
	}
	// Far right of the bar is still background.
	got = img.RGBAAt(Padding+BarWidth-5, barY+BarHeight/2)
	if got != colorBarBG {
		t.Errorf("expected background at bar end, got %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	o := NewOverlay("", "")
	path := filepath.Join(t.TempDir(), "overlay.png")

	if err := o.WritePNG(testSnapshot(), path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg.Width != ImgWidth {
		t.Errorf("decoded width = %d, want %d", cfg.Width, ImgWidth)
	}
}

func TestWritePNG_BadPath(t *testing.T) {
	o := NewOverlay("", "")
	if err := o.WritePNG(testSnapshot(), filepath.Join(t.TempDir(), "missing", "overlay.png")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestIconSet_MissingDirAndFile(t *testing.T) {
	if icon := NewIconSet("").Load(IconGold); icon != nil {
		t.Error("empty dir should disable icons")
	}
	s := NewIconSet(t.TempDir())
	if icon := s.Load(IconGold); icon != nil {
		t.Error("missing file should yield nil icon")
	}
	// Second lookup hits the cache and still yields nil.
	if icon := s.Load(IconGold); icon != nil {
		t.Error("cached missing icon should stay nil")
	}
}
