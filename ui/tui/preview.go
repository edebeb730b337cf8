package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

// renderHalfBlocks draws the image with one character cell per two pixel
// rows: the upper pixel is the foreground and the lower the background.
func renderHalfBlocks(img image.Image) string {
	if img == nil {
		return ""
	}
	bounds := img.Bounds()
	var sb strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			sb.WriteString("\n")
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(toLipglossColor(img.At(x, y)))
			if y+1 < bounds.Max.Y {
				style = style.Background(toLipglossColor(img.At(x, y+1)))
			}
			sb.WriteString(style.Render(halfBlock))
		}
	}
	return sb.String()
}

func toLipglossColor(c color.Color) lipgloss.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B))
}
