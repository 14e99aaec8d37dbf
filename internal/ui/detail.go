package ui

import (
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/meal-maker/internal/render"
	"github.com/ytget/meal-maker/internal/thumbnail"
)

var (
	centeredStyle = widget.RichTextStyle{
		Alignment: fyne.TextAlignCenter,
		ColorName: theme.ColorNameForeground,
		SizeName:  theme.SizeNameText,
		TextStyle: fyne.TextStyle{Bold: true},
	}
	plainStyle = widget.RichTextStyle{
		Alignment: fyne.TextAlignCenter,
		ColorName: theme.ColorNameForeground,
		SizeName:  theme.SizeNameText,
	}
)

// segmentsFor converts a document into rich text segments.
// Tapping a link segment calls onLink with the link index.
func segmentsFor(doc render.Document, onLink func(index int)) []widget.RichTextSegment {
	segments := make([]widget.RichTextSegment, 0, len(doc.Lines))

	for _, line := range doc.Lines {
		switch line.Style {
		case render.StyleLink:
			link, ok := doc.LinkAt(line.Link)
			if !ok {
				segments = append(segments, &widget.TextSegment{Text: line.Text, Style: plainStyle})
				continue
			}
			segments = append(segments, linkSegment(line.Link, link, onLink))
		case render.StyleCentered:
			segments = append(segments, &widget.TextSegment{Text: line.Text, Style: centeredStyle})
		default:
			segments = append(segments, &widget.TextSegment{Text: line.Text, Style: plainStyle})
		}
	}

	return segments
}

// linkSegment builds a hyperlink whose tap goes through onLink instead of the default handler
func linkSegment(index int, link render.Link, onLink func(index int)) *widget.HyperlinkSegment {
	parsed, err := url.Parse(link.URL)
	if err != nil {
		log.Printf("Displaying unparsable link %q: %v", link.URL, err)
	}

	return &widget.HyperlinkSegment{
		Alignment: fyne.TextAlignCenter,
		Text:      link.URL,
		URL:       parsed,
		OnTapped: func() {
			if onLink != nil {
				onLink(index)
			}
		},
	}
}

// newImageRegion creates the image area showing the initial placeholder
func newImageRegion() *canvas.Image {
	img := canvas.NewImageFromImage(thumbnail.NewPlaceholder(thumbnail.InitialColor).Image)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(ImageRegionWidth, ImageRegionHeight))
	return img
}

// setThumbnail shows thumb in img, sized to the thumbnail's pixel dimensions
func setThumbnail(img *canvas.Image, thumb *thumbnail.Thumbnail) {
	if img == nil || thumb == nil || thumb.Image == nil {
		return
	}

	w, h := thumb.Size()
	img.Image = thumb.Image
	img.SetMinSize(fyne.NewSize(float32(w), float32(h)))
	img.Refresh()
}
