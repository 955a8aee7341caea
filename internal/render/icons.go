package render

import (
	"image"
	"log"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	_ "image/png"
)

// Icon file names expected in the icon directory.
const (
	IconGold   = "goldtruhe_icon.png"
	IconSilver = "silbertruhe_icon.png"
	IconGems   = "gems_icon.png"
	IconBSC    = "blacksmithcontract_icon.png"
)

// IconSet loads and scales icons, caching decoded results so watch mode
// doesn't re-read them on every tick.
type IconSet struct {
	dir   string
	cache *gocache.Cache
}

// NewIconSet creates an icon loader rooted at dir. An empty dir disables
// icons entirely.
func NewIconSet(dir string) *IconSet {
	return &IconSet{
		dir:   dir,
		cache: gocache.New(10*time.Minute, 30*time.Minute),
	}
}

// Load returns the named icon scaled to IconSize, or nil when the file is
// missing or unreadable. A missing icon only shifts the row's bar left, so
// it is logged and skipped rather than treated as an error.
func (s *IconSet) Load(name string) image.Image {
	if s.dir == "" {
		return nil
	}
	if cached, ok := s.cache.Get(name); ok {
		if cached == nil {
			return nil
		}
		return cached.(image.Image)
	}

	img := s.load(name)
	s.cache.Set(name, img, gocache.DefaultExpiration)
	return img
}

func (s *IconSet) load(name string) image.Image {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] open icon %s: %v", path, err)
		}
		return nil
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		log.Printf("[WARN] decode icon %s: %v", path, err)
		return nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, IconSize, IconSize))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// pasteIcon alpha-composites an icon onto the canvas.
func pasteIcon(img xdraw.Image, icon image.Image, x, y int) {
	r := icon.Bounds()
	xdraw.Draw(img, image.Rect(x, y, x+r.Dx(), y+r.Dy()), icon, r.Min, xdraw.Over)
}

// loadFace opens a TTF/OTF face at the given point size, falling back to the
// built-in bitmap face when no font file is configured or loading fails.
func loadFace(path string, size float64) font.Face {
	if path == "" {
		return basicfont.Face7x13
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[WARN] read font %s: %v, using builtin face", path, err)
		return basicfont.Face7x13
	}
	ft, err := opentype.Parse(data)
	if err != nil {
		log.Printf("[WARN] parse font %s: %v, using builtin face", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("[WARN] build font face: %v, using builtin face", err)
		return basicfont.Face7x13
	}
	return face
}

func fixedPoint(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
}
