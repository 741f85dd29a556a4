// Package templates embeds the HTML pages of the site.
package templates

import "embed"

// FS holds layout.html and one file per page
//
//go:embed *.html
var FS embed.FS
