package platform

// Package platform contains OS integration helpers, such as handing a URL to the
// system browser.
