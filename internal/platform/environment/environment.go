// Package environment resolves the public site URL from the build mode.
package environment

import "strings"

const (
	ProductionSiteURL  = "https://tryaiqualify.com"
	DevelopmentSiteURL = "http://localhost:5173"

	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// buildMode is set at link time:
//
//	go build -ldflags "-X github.com/aiqualify/golang_services/internal/platform/environment.buildMode=production"
var buildMode = ModeDevelopment

// siteURL is resolved from buildMode at package init and again by Init.
var siteURL = BaseURL(IsProduction(buildMode))

// Init fixes the build mode and site URL for the rest of the process.
// Call it once from main, before serving; it is not safe for concurrent use.
func Init(mode string) {
	buildMode = mode
	siteURL = BaseURL(IsProduction(mode))
}

// BaseURL returns the site URL for a production or non-production build.
func BaseURL(production bool) string {
	if production {
		return ProductionSiteURL
	}
	return DevelopmentSiteURL
}

// IsProduction reports whether mode names a production build.
func IsProduction(mode string) bool {
	return strings.EqualFold(strings.TrimSpace(mode), ModeProduction)
}

// BuildMode returns the active build mode.
func BuildMode() string {
	return buildMode
}

// SiteURL returns the site URL for the active build mode.
func SiteURL() string {
	return siteURL
}
