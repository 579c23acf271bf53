// Package render draws LinkedIn carousel slides for the daily digest,
// one title slide plus one slide per selected story.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/startupwire/startupwire/pkg/config"
	"github.com/startupwire/startupwire/pkg/domain"
)

// slide geometry, 1080x1080 is the LinkedIn carousel format
const (
	slideSize    = 1080
	maxSummary   = 250
	maxIndicator = 10
)

// brand palette
const (
	colorPrimary       = "#1e3a8a"
	colorSecondary     = "#3b82f6"
	colorAccent        = "#f59e0b"
	colorTextPrimary   = "#1f2937"
	colorTextSecondary = "#6b7280"
	colorTextLight     = "#9ca3af"
	colorBackground    = "#ffffff"
	colorCardBg        = "#f8fafc"
	colorBorder        = "#e5e7eb"
)

// faces holds the typography scale. All slots fall back to the built-in
// bitmap face when no TTF file is configured.
type faces struct {
	title    font.Face
	headline font.Face
	body     font.Face
	caption  font.Face
	number   font.Face
}

func loadFaces(fontFile string) (*faces, error) {
	if fontFile == "" {
		f := basicfont.Face7x13
		return &faces{title: f, headline: f, body: f, caption: f, number: f}, nil
	}

	sizes := []float64{64, 40, 28, 22, 48}
	loaded := make([]font.Face, len(sizes))
	for i, size := range sizes {
		face, err := gg.LoadFontFace(fontFile, size)
		if err != nil {
			return nil, fmt.Errorf("load font %s at %v: %w", fontFile, size, err)
		}
		loaded[i] = face
	}
	return &faces{title: loaded[0], headline: loaded[1], body: loaded[2], caption: loaded[3], number: loaded[4]}, nil
}

// Renderer writes carousel PNG slides into the configured directory
type Renderer struct {
	outDir string
	faces  *faces
	now    func() time.Time
}

// New creates a renderer, loading the configured TTF font if any
func New(cfg config.SlidesConfig) (*Renderer, error) {
	fc, err := loadFaces(cfg.FontFile)
	if err != nil {
		return nil, err
	}
	return &Renderer{outDir: cfg.OutDir, faces: fc, now: time.Now}, nil
}

// RenderCarousel writes the title slide followed by one numbered slide per
// article and returns the written file paths in slide order.
func (r *Renderer) RenderCarousel(articles []domain.Article) ([]string, error) {
	if err := os.MkdirAll(r.outDir, 0o750); err != nil {
		return nil, fmt.Errorf("create slides dir: %w", err)
	}

	paths := make([]string, 0, len(articles)+1)

	titlePath := filepath.Join(r.outDir, "slide_00_title.png")
	if err := r.titleSlide(titlePath, len(articles)); err != nil {
		return nil, fmt.Errorf("render title slide: %w", err)
	}
	paths = append(paths, titlePath)

	for i, article := range articles {
		path := filepath.Join(r.outDir, fmt.Sprintf("slide_%02d.png", i+1))
		if err := r.storySlide(path, i+1, len(articles), article); err != nil {
			return nil, fmt.Errorf("render slide %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (r *Renderer) titleSlide(path string, total int) error {
	dc := gg.NewContext(slideSize, slideSize)

	dc.SetHexColor(colorPrimary)
	dc.Clear()

	// top accent bar
	dc.SetHexColor(colorAccent)
	dc.DrawRectangle(0, 0, slideSize, 54)
	dc.Fill()

	dc.SetHexColor(colorBackground)
	dc.SetFontFace(r.faces.title)
	dc.DrawStringAnchored(fmt.Sprintf("TOP %d", total), slideSize/2, 410, 0.5, 0.5)
	dc.DrawStringAnchored("INDIAN STARTUP", slideSize/2, 540, 0.5, 0.5)
	dc.DrawStringAnchored("NEWS DIGEST", slideSize/2, 625, 0.5, 0.5)

	dc.SetHexColor(colorAccent)
	dc.SetFontFace(r.faces.headline)
	dc.DrawStringAnchored(r.now().Format("January 2, 2006"), slideSize/2, 790, 0.5, 0.5)

	dc.SetHexColor(colorBackground)
	dc.SetFontFace(r.faces.caption)
	dc.DrawStringAnchored("Curated daily • Ready to share", slideSize/2, 900, 0.5, 0.5)

	// bottom decorative line
	dc.SetHexColor(colorAccent)
	dc.SetLineWidth(3)
	dc.DrawLine(216, 993, 864, 993)
	dc.Stroke()

	return dc.SavePNG(path)
}

func (r *Renderer) storySlide(path string, rank, total int, article domain.Article) error {
	dc := gg.NewContext(slideSize, slideSize)

	dc.SetHexColor(colorBackground)
	dc.Clear()

	// header bar
	dc.SetHexColor(colorPrimary)
	dc.DrawRectangle(0, 0, slideSize, 108)
	dc.Fill()

	dc.SetHexColor(colorBackground)
	dc.SetFontFace(r.faces.caption)
	dc.DrawStringAnchored("INDIAN STARTUP NEWS", slideSize-54, 54, 1, 0.5)

	// rank badge overlapping the header
	dc.SetHexColor(colorAccent)
	dc.DrawCircle(130, 195, 86)
	dc.Fill()
	dc.SetHexColor(colorBackground)
	dc.SetLineWidth(3)
	dc.DrawCircle(130, 195, 86)
	dc.Stroke()
	dc.SetFontFace(r.faces.number)
	dc.DrawStringAnchored(fmt.Sprintf("%d", rank), 130, 195, 0.5, 0.5)

	// content card
	dc.SetHexColor(colorCardBg)
	dc.DrawRectangle(54, 270, slideSize-108, 648)
	dc.Fill()
	dc.SetHexColor(colorBorder)
	dc.SetLineWidth(2)
	dc.DrawRectangle(54, 270, slideSize-108, 648)
	dc.Stroke()

	dc.SetHexColor(colorTextPrimary)
	dc.SetFontFace(r.faces.headline)
	dc.DrawStringWrapped(article.Title, slideSize/2, 390, 0.5, 0.5, slideSize-220, 1.3, gg.AlignCenter)

	summary := article.Summary
	if len(summary) > maxSummary {
		summary = summary[:maxSummary] + "..."
	}
	dc.SetHexColor(colorTextSecondary)
	dc.SetFontFace(r.faces.body)
	dc.DrawStringWrapped(summary, slideSize/2, 630, 0.5, 0.5, slideSize-260, 1.4, gg.AlignCenter)

	dc.SetHexColor(colorTextLight)
	dc.SetFontFace(r.faces.caption)
	dc.DrawStringAnchored(article.Source, slideSize/2, 845, 0.5, 0.5)

	r.importanceIndicator(dc, article.Importance)

	dc.SetHexColor(colorTextLight)
	dc.SetFontFace(r.faces.caption)
	footer := fmt.Sprintf("Slide %d of %d • %d", rank, total, r.now().Year())
	dc.DrawStringAnchored(footer, slideSize/2, 1035, 0.5, 0.5)

	return dc.SavePNG(path)
}

// importanceIndicator draws a row of dots filled up to the capped score
func (r *Renderer) importanceIndicator(dc *gg.Context, importance float64) {
	score := int(importance)
	if score > maxIndicator {
		score = maxIndicator
	}
	if score < 0 {
		score = 0
	}

	const (
		radius  = 10
		spacing = 34
		y       = 895.0
	)
	startX := slideSize/2 - float64(maxIndicator-1)*spacing/2
	for i := 0; i < maxIndicator; i++ {
		x := startX + float64(i)*spacing
		if i < score {
			dc.SetHexColor(colorSecondary)
		} else {
			dc.SetHexColor(colorBorder)
		}
		dc.DrawCircle(x, y, radius)
		dc.Fill()
	}
}
