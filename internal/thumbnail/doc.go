package thumbnail

// Package thumbnail fetches recipe thumbnails, decodes them and resamples them to
// the fixed display width. Any failure is absorbed: callers always get an image,
// falling back to a solid placeholder.
