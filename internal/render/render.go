package render

import (
	"strings"

	"github.com/ytget/meal-maker/internal/model"
)

// Field labels
const (
	LabelName         = "Name:"
	LabelOrigin       = "Origin:"
	LabelCategory     = "Category:"
	LabelIngredients  = "Ingredients:"
	LabelMeasurements = "Measurements:"

	// LinkMarker precedes the video link line; FindLinkAfter scans for it
	LinkMarker = "YouTube:"

	// PairSeparator joins an ingredient with its measure in paired mode
	PairSeparator = ": "
)

// Options controls recipe formatting
type Options struct {
	// PairIngredients renders one "ingredient: measure" line per slot instead of
	// two independently joined lists.
	PairIngredients bool
}

// Render formats recipe into a Document
func Render(recipe *model.Recipe, opts Options) Document {
	if recipe == nil {
		return Document{Kind: KindEmpty}
	}
	doc := Document{Kind: KindRecipe}

	field := func(label, value string) {
		doc.addLine(label+" "+value, StyleCentered)
		doc.addLine("", StyleCentered)
	}

	field(LabelName, recipe.Name)
	field(LabelOrigin, recipe.Area)
	field(LabelCategory, recipe.Category)

	if opts.PairIngredients {
		doc.addLine(LabelIngredients, StyleCentered)
		for _, pair := range recipe.Pairs() {
			doc.addLine(formatPair(pair), StyleCentered)
		}
		doc.addLine("", StyleCentered)
	} else {
		field(LabelIngredients, recipe.JoinedIngredients())
		field(LabelMeasurements, recipe.JoinedMeasurements())
	}

	if recipe.HasVideo() {
		doc.addLine(LinkMarker, StyleCentered)
		doc.addLink(strings.TrimSpace(recipe.VideoURL))
		doc.addLine("", StyleCentered)
	}

	return doc
}

// RenderMessage returns a Document showing a single plain message
func RenderMessage(text string) Document {
	doc := Document{Kind: KindMessage}
	doc.addLine(text, StylePlain)
	return doc
}

// formatPair renders one paired slot; a missing side is left out
func formatPair(pair model.IngredientPair) string {
	switch {
	case pair.Measure == "":
		return pair.Ingredient
	case pair.Ingredient == "":
		return pair.Measure
	default:
		return pair.Ingredient + PairSeparator + pair.Measure
	}
}
