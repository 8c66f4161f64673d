// Package urls provides centralized constants for the public links used
// throughout the application.
//
// Usage:
//
//	import "github.com/orbytrixx/orbytrixx/internal/urls"
//
//	fmt.Printf("Write to us at %s\n", urls.ContactEmail)
package urls
