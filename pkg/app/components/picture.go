package components

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/tirinha/pkg/data"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// halfBlock paints the upper pixel with the foreground colour and the
// lower pixel with the background colour, so one cell holds two pixels.
const halfBlock = "▀"

// LoadImage decodes the image stored at path
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, data.Wrap(data.ErrRender, err, "failed to open %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, data.Wrap(data.ErrRender, err, "failed to decode %s", path)
	}
	return img, nil
}

// FitDimensions scales width x height to the largest size that fits in
// maxWidth x maxHeight while keeping the aspect ratio
func FitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return 0, 0
	}

	widthScale := float64(maxWidth) / float64(width)
	heightScale := float64(maxHeight) / float64(height)

	// Use the smaller scale to ensure image fits within bounds
	scale := widthScale
	if heightScale < widthScale {
		scale = heightScale
	}

	newWidth := max(1, int(float64(width)*scale))
	newHeight := max(1, int(float64(height)*scale))

	return min(newWidth, maxWidth), min(newHeight, maxHeight)
}

// Picture renders an image as a block of coloured terminal cells
type Picture struct {
	img image.Image
}

func NewPicture(img image.Image) *Picture {
	return &Picture{img: img}
}

// LoadPicture decodes the image at path into a Picture
func LoadPicture(path string) (*Picture, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewPicture(img), nil
}

// Size returns the cell grid the picture occupies when fitted in cols x rows
func (p *Picture) Size(cols, rows int) (int, int) {
	b := p.img.Bounds()
	w, h := FitDimensions(b.Dx(), b.Dy(), cols, rows*2)
	return w, (h + 1) / 2
}

// Render scales the picture into cols x rows cells and centres it
func (p *Picture) Render(cols, rows int) (string, error) {
	if cols <= 0 || rows <= 0 {
		return "", nil
	}

	b := p.img.Bounds()
	if b.Empty() {
		return "", data.Errorf(data.ErrRender, "image has no pixels")
	}

	w, h := FitDimensions(b.Dx(), b.Dy(), cols, rows*2)
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), p.img, b, draw.Over, nil)

	lines := make([]string, 0, (h+1)/2)
	for y := 0; y < h; y += 2 {
		var line strings.Builder
		for x := 0; x < w; x++ {
			top := scaled.RGBAAt(x, y)
			cell := lipgloss.NewStyle().Foreground(hexColor(top))
			if y+1 < h {
				cell = cell.Background(hexColor(scaled.RGBAAt(x, y+1)))
			}
			line.WriteString(cell.Render(halfBlock))
		}
		lines = append(lines, line.String())
	}

	return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n")), nil
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}
