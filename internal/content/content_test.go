package content

import (
	"strings"
	"testing"
)

func TestLoadEmbeddedSite(t *testing.T) {
	site, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if site.Brand.Tagline != "Designed to Build. Built to Scale." {
		t.Errorf("Tagline = %q", site.Brand.Tagline)
	}
	if len(site.Services) != 7 {
		t.Errorf("len(Services) = %d, want 7", len(site.Services))
	}
	if len(site.About.Milestones) != 4 || len(site.WhyUs.Advantages) != 6 {
		t.Error("unexpected about/why-us content")
	}

	again, _ := Load()
	if again != site {
		t.Error("Load() should return the shared instance")
	}
}

func TestEntitiesDecoded(t *testing.T) {
	site := MustLoad()

	svc, ok := site.Service("video-ai-ads")
	if !ok {
		t.Fatal("video-ai-ads missing")
	}
	if svc.Title != "Video & AI Ads" {
		t.Errorf("Title = %q, want decoded ampersand", svc.Title)
	}
	if site.Contact.Headline != "Let's Connect." {
		t.Errorf("Headline = %q", site.Contact.Headline)
	}
}

func TestParseStripsMarkup(t *testing.T) {
	data := []byte(`
brand:
  tagline: "<b>Bold</b>   claim <script>alert(1)</script>"
services:
  - slug: web
    title: "<i>Web</i>"
`)
	site, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if site.Brand.Tagline != "Bold claim" {
		t.Errorf("Tagline = %q, want %q", site.Brand.Tagline, "Bold claim")
	}
	if site.Services[0].Title != "Web" {
		t.Errorf("Title = %q", site.Services[0].Title)
	}
}

func TestParseRejectsBadServices(t *testing.T) {
	tests := map[string]string{
		"none":      "brand:\n  name: x\n",
		"no slug":   "services:\n  - title: A\n",
		"duplicate": "services:\n  - slug: a\n    title: A\n  - slug: a\n    title: B\n",
		"yaml":      "services: [\n",
	}
	for name, data := range tests {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: Parse() should fail", name)
		}
	}
}

func TestServiceLookup(t *testing.T) {
	site := MustLoad()

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"web-development", "Web Development", true},
		{"Web Development", "Web Development", true},
		{"  autonomous ai ", "Autonomous AI", true},
		{"video & ai ads", "Video & AI Ads", true},
		{"blockchain", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		svc, ok := site.Service(tt.key)
		if ok != tt.ok || svc.Title != tt.want {
			t.Errorf("Service(%q) = %q, %v; want %q, %v", tt.key, svc.Title, ok, tt.want, tt.ok)
		}
	}
}

func TestInquirySubject(t *testing.T) {
	if got := InquirySubject("Web Development"); got != "Web Development – Project Inquiry" {
		t.Errorf("InquirySubject() = %q", got)
	}
	svc, _ := MustLoad().Service("data-analysis")
	if svc.Inquiry() != "Data Analysis – Project Inquiry" {
		t.Errorf("Inquiry() = %q", svc.Inquiry())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 40, "short"},
		{"Intelligent conversational systems that interact through text or voice", 40, "Intelligent conversational systems th..."},
		{"ééééé", 4, "é..."},
		{"abc", 2, "abc"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestCarouselWraps(t *testing.T) {
	c := NewCarousel(3)

	c.Prev()
	if c.Index() != 2 {
		t.Errorf("Prev from 0 = %d, want 2", c.Index())
	}
	c.Next()
	if c.Index() != 0 {
		t.Errorf("Next from 2 = %d, want 0", c.Index())
	}

	prev, next := c.Neighbors()
	if prev != 2 || next != 1 {
		t.Errorf("Neighbors() = %d, %d", prev, next)
	}

	if c.Set(5) || c.Index() != 0 {
		t.Error("Set out of range should be ignored")
	}
	if !c.Set(1) || c.Index() != 1 {
		t.Error("Set(1) failed")
	}

	empty := NewCarousel(0)
	empty.Next()
	empty.Prev()
	if empty.Index() != 0 {
		t.Error("empty carousel moved")
	}
}

func TestMarkdownBuilders(t *testing.T) {
	site := MustLoad()

	tests := []struct {
		name string
		md   string
		want []string
	}{
		{"home", site.HomeMarkdown(), []string{"# Designed to Build. Built to Scale.", "DuveWorld", "**01. Discover**"}},
		{"about", site.AboutMarkdown(), []string{"## Our Story", "**December 2025**", "Autonomous AI Systems"}},
		{"why", site.WhyUsMarkdown(), []string{"| Build Time | 12 - 24 Weeks | 4 - 8 Weeks |"}},
		{"careers", site.CareersMarkdown(), []string{"Open Missions", "Content Specialist", "Coming Soon", "Cultural Orbit"}},
		{"contact", site.ContactMarkdown(), []string{"contact@orbytrixx.com", "Greater Noida", "Instagram"}},
		{"service", ServiceMarkdown(site.Services[0]), []string{"# Web Development", "### Ideal For", "- Business websites"}},
	}

	for _, tt := range tests {
		for _, want := range tt.want {
			if !strings.Contains(tt.md, want) {
				t.Errorf("%s markdown missing %q", tt.name, want)
			}
		}
	}
}

func TestFooterLine(t *testing.T) {
	if line := MustLoad().FooterLine(); !strings.Contains(line, "© 2026 Orbytrixx") {
		t.Errorf("FooterLine() = %q", line)
	}
}
