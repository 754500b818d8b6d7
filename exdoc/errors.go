package exdoc

import "errors"

// Sentinel errors for documentation generation.
var (
	ErrMalformedSource = errors.New("example source lacks a docstring block")
	ErrMissingField    = errors.New("document field is empty")
	ErrWriteDocument   = errors.New("failed to write document")

	// Capture errors.
	ErrCaptureFailed  = errors.New("snapshot capture failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load preview page")
	ErrScreenshot     = errors.New("failed to capture screenshot")
	ErrPreviewRender  = errors.New("preview rendering failed")
)
