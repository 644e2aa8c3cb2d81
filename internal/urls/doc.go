// Package urls provides centralized constants for the external documentation
// URLs used throughout the application.
//
// This package was created to enable URL updates without hunting through code.
// All documentation URLs are defined here as exported constants and can be
// updated in a single location before release.
//
// Usage:
//
//	import "github.com/easelart/easel/internal/urls"
//
//	fmt.Printf("Get a token at: %s\n", urls.TokenSettings)
package urls
