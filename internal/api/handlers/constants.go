package handlers

const (
	// Catalog and request limits
	minGridDimension = 1
	maxMotifIDs      = 16

	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"

	// Context keys shared with the logging middleware
	ctxKeyRugStyle = "rug_style"
)
