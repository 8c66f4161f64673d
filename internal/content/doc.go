// Package content embeds the copy of the Orbytrixx site: brand taglines,
// services, company timeline, differentiators, open roles and contact
// channels.
//
// The copy lives in site.yaml and is parsed once. Every string is reduced to
// plain text with a strict bluemonday policy, so a stray tag in the YAML can
// never reach the terminal as markup.
//
//	site := content.MustLoad()
//	svc, ok := site.Service("web-development")
//	if ok {
//	    message := svc.Inquiry() // "Web Development – Project Inquiry"
//	}
//
// Page builders (HomeMarkdown, AboutMarkdown, ...) return markdown that the
// TUI renders with glamour.
package content
