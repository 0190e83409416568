package static

import "embed"

// FS exposes site static assets for HTTP serving.
//
//go:embed *.css *.svg
var FS embed.FS
