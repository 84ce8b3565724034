// Package visualize renders the text blocks of pages to images, colored by
// semantic role. It is meant for inspecting classification results.
package visualize

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/pdfact/export"
	"github.com/tsawler/pdfact/model"
)

var (
	// ErrNoPage is returned when there is no page to render.
	ErrNoPage = errors.New("no page to render")

	// ErrPageSize is returned for pages without a usable size.
	ErrPageSize = errors.New("invalid page size")
)

// maxPixels bounds the size of a rendered page.
const maxPixels = 64 << 20

// Options holds rendering options.
type Options struct {
	// Scale is the number of pixels per point
	// Default: 1.5
	Scale float64

	// Unit selects the elements drawn as rectangles. Paragraphs need the
	// document; RenderPage draws blocks for them instead.
	// Default: export.UnitBlocks
	Unit export.Unit

	// Roles limits the drawn elements to these roles. Nil means all roles;
	// an empty slice draws nothing.
	Roles []model.SemanticRole

	// Colors maps roles to outline colors. Roles without a color use
	// Fallback.
	Colors   map[model.SemanticRole]color.RGBA
	Fallback color.RGBA

	// Characters outlines every character in light gray.
	Characters bool

	// Labels draws the role name above each paragraph or block
	// Default: true
	Labels bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{
		Scale: 1.5,
		Unit:  export.UnitBlocks,
		Colors: map[model.SemanticRole]color.RGBA{
			model.RoleBodyText:   {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
			model.RoleHeading:    {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
			model.RoleTitle:      {R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
			model.RolePageHeader: {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			model.RolePageFooter: {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
			model.RoleCaption:    {R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
			model.RoleReference:  {R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
		},
		Fallback: color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
		Labels:   true,
	}
}

// RenderPage draws the elements of page onto a white image of the page's
// size.
func RenderPage(page *model.Page, opts Options) (*image.RGBA, error) {
	return RenderDocumentPage(nil, page, opts)
}

// RenderDocumentPage is RenderPage with access to the paragraphs of doc,
// which UnitParagraphs draws. A nil doc renders as RenderPage.
func RenderDocumentPage(doc *model.Document, page *model.Page, opts Options) (*image.RGBA, error) {
	if page == nil {
		return nil, ErrNoPage
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}

	w := int(math.Ceil(page.Width * opts.Scale))
	h := int(math.Ceil(page.Height * opts.Scale))
	if w <= 0 || h <= 0 || w*h > maxPixels {
		return nil, fmt.Errorf("%w: page %d is %gx%g points", ErrPageSize, page.Number, page.Width, page.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	r := &renderer{img: img, page: page, opts: opts}
	if opts.Roles != nil {
		r.roles = make(map[model.SemanticRole]bool, len(opts.Roles))
		for _, role := range opts.Roles {
			r.roles[role] = true
		}
	}

	if opts.Unit == export.UnitParagraphs && doc != nil {
		r.paragraphs(doc.Paragraphs)
		return img, nil
	}
	for _, b := range page.Blocks {
		if b.IsEmpty() || !r.selected(b.Role) {
			continue
		}
		if opts.Characters {
			r.characters(b)
		}
		r.block(b)
	}
	return img, nil
}

// WritePNG renders page and encodes it as PNG to w.
func WritePNG(w io.Writer, page *model.Page, opts Options) error {
	return writePNG(w, nil, page, opts)
}

func writePNG(w io.Writer, doc *model.Document, page *model.Page, opts Options) error {
	img, err := RenderDocumentPage(doc, page, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode page %d: %w", page.Number, err)
	}
	return nil
}

// WritePNGs renders every page of doc to dir as page-NNN.png and returns
// the written paths.
func WritePNGs(dir string, doc *model.Document, opts Options) ([]string, error) {
	if doc == nil {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var paths []string
	for _, page := range doc.Pages {
		if page == nil {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("page-%03d.png", page.Number))
		if err := writePNGFile(path, doc, page, opts); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNGFile(path string, doc *model.Document, page *model.Page, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := writePNG(f, doc, page, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type renderer struct {
	img   *image.RGBA
	page  *model.Page
	opts  Options
	roles map[model.SemanticRole]bool // nil selects all roles
}

func (r *renderer) selected(role model.SemanticRole) bool {
	return r.roles == nil || r.roles[role]
}

// toImage converts a rectangle in page points (origin bottom left) to
// image pixels (origin top left).
func (r *renderer) toImage(b model.BBox) image.Rectangle {
	s := r.opts.Scale
	x0 := int(math.Floor(b.Left() * s))
	x1 := int(math.Ceil(b.Right() * s))
	y0 := int(math.Floor((r.page.Height - b.Top()) * s))
	y1 := int(math.Ceil((r.page.Height - b.Bottom()) * s))
	return image.Rect(x0, y0, x1, y1).Intersect(r.img.Bounds())
}

func (r *renderer) color(role model.SemanticRole) color.RGBA {
	if c, ok := r.opts.Colors[role]; ok {
		return c
	}
	return r.opts.Fallback
}

// paragraphs draws the parts of paragraphs that lie on the page.
func (r *renderer) paragraphs(paragraphs []*model.Paragraph) {
	for _, p := range paragraphs {
		if p == nil || p.Text == "" || !r.selected(p.Role) {
			continue
		}
		for _, pos := range p.Positions {
			if pos.Page == r.page.Number {
				r.element(pos.Rect, p.Role, true)
			}
		}
	}
}

// block draws b at the configured unit.
func (r *renderer) block(b *model.TextBlock) {
	switch r.opts.Unit {
	case export.UnitLines:
		for _, l := range b.Lines {
			if !l.IsEmpty() {
				r.element(l.Position.Rect, b.Role, false)
			}
		}
	case export.UnitWords:
		for _, w := range b.Words() {
			for _, pos := range w.Positions {
				if pos.Page == r.page.Number {
					r.element(pos.Rect, b.Role, false)
				}
			}
		}
	case export.UnitCharacters:
		for _, w := range b.Words() {
			for _, c := range w.Characters {
				if c != nil && c.Position.Page == r.page.Number && c.Position.Rect.IsFinite() {
					r.element(c.Position.Rect, b.Role, false)
				}
			}
		}
	default:
		r.element(b.Position.Rect, b.Role, true)
	}
}

// element fills and outlines bbox in the color of role.
func (r *renderer) element(bbox model.BBox, role model.SemanticRole, label bool) {
	rect := r.toImage(bbox)
	if rect.Empty() {
		return
	}
	c := r.color(role)

	fill := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0x30}
	draw.Draw(r.img, rect, image.NewUniform(fill), image.Point{}, draw.Over)
	r.outline(rect, c)

	if label && r.opts.Labels {
		r.label(rect, c, role.String())
	}
}

func (r *renderer) characters(b *model.TextBlock) {
	gray := color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	for _, w := range b.Words() {
		for _, c := range w.Characters {
			if c == nil || !c.Position.Rect.IsFinite() {
				continue
			}
			if rect := r.toImage(c.Position.Rect); !rect.Empty() {
				r.outline(rect, gray)
			}
		}
	}
}

// outline draws a one-pixel border along the inside of rect.
func (r *renderer) outline(rect image.Rectangle, c color.RGBA) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1),
		image.Rect(rect.Min.X, rect.Max.Y-1, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y),
		image.Rect(rect.Max.X-1, rect.Min.Y, rect.Max.X, rect.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(r.img, e, src, image.Point{}, draw.Src)
	}
}

// label writes text just above rect, or inside it at the top of the page.
func (r *renderer) label(rect image.Rectangle, c color.RGBA, text string) {
	face := basicfont.Face7x13
	baseline := rect.Min.Y - 2
	if baseline-face.Ascent < 0 {
		baseline = rect.Min.Y + face.Ascent + 1
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(rect.Min.X+1, baseline),
	}
	d.DrawString(text)
}
