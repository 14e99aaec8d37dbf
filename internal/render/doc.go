package render

// Package render turns a recipe (or a plain status message) into a Document:
// an ordered list of styled lines plus the links they carry. The UI draws the
// Document; link activation works on the structured links, with a text scan
// over the rendered text as a fallback.
