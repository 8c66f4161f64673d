package content

import (
	"fmt"
	"strings"

	"github.com/orbytrixx/orbytrixx/internal/urls"
)

// The builders below produce markdown for the terminal renderer. They never
// include the interactive parts of a page (forms, carousel controls).

func heading(b *strings.Builder, level int, text string) {
	fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", level), text)
}

func bullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func cards(b *strings.Builder, items []Card) {
	for _, c := range items {
		fmt.Fprintf(b, "- **%s**: %s\n", c.Title, c.Desc)
	}
	b.WriteString("\n")
}

func steps(b *strings.Builder, items []Step) {
	for _, s := range items {
		fmt.Fprintf(b, "**%s. %s**  \n%s\n\n", s.Num, s.Title, s.Desc)
	}
}

// HomeMarkdown renders the landing page.
func (s *Site) HomeMarkdown() string {
	var b strings.Builder
	heading(&b, 1, s.Brand.Tagline)
	fmt.Fprintf(&b, "%s\n\n", s.Brand.Lead)

	heading(&b, 2, "Our Happy Customer.")
	c := s.Home.Customer
	fmt.Fprintf(&b, "**%s** (%s)  \n%s\n\n", c.Name, c.Tagline, c.URL)
	fmt.Fprintf(&b, "> %s\n\n", c.Story)
	b.WriteString("Services provided: " + strings.Join(c.Services, " · ") + "\n\n")

	cards(&b, s.Home.Features)

	heading(&b, 2, "Our Process.")
	steps(&b, s.Home.Process)

	heading(&b, 2, s.Home.CTA.Title)
	fmt.Fprintf(&b, "%s\n", s.Home.CTA.Desc)
	return b.String()
}

// AboutMarkdown renders the company narrative and timeline.
func (s *Site) AboutMarkdown() string {
	var b strings.Builder
	heading(&b, 1, s.About.Headline)
	for _, p := range s.About.Paragraphs {
		fmt.Fprintf(&b, "%s\n\n", p)
	}

	heading(&b, 3, "Our Role")
	fmt.Fprintf(&b, "%s\n\n", s.About.Role)
	heading(&b, 3, "Our Philosophy")
	fmt.Fprintf(&b, "%s\n\n", s.About.Philosophy)

	heading(&b, 2, "Our Story")
	for _, m := range s.About.Milestones {
		fmt.Fprintf(&b, "- **%s** · %s  \n  %s\n", m.Date, m.Title, m.Desc)
	}
	b.WriteString("\n")

	heading(&b, 2, "Global Capabilities")
	bullets(&b, s.About.Capabilities)

	fmt.Fprintf(&b, "> %s\n\n", s.About.Vision)
	fmt.Fprintf(&b, "*%s*\n", s.Brand.Tagline)
	return b.String()
}

// ServiceMarkdown renders the detail view of one service.
func ServiceMarkdown(svc Service) string {
	var b strings.Builder
	heading(&b, 1, svc.Title)
	if svc.ComingSoon {
		b.WriteString("*Coming soon*\n\n")
	}
	fmt.Fprintf(&b, "%s\n\n", svc.Desc)

	heading(&b, 3, "Key Features")
	bullets(&b, svc.Features)
	heading(&b, 3, "Capabilities")
	bullets(&b, svc.Capabilities)
	if len(svc.IdealFor) > 0 {
		heading(&b, 3, "Ideal For")
		bullets(&b, svc.IdealFor)
	}
	return b.String()
}

// WhyUsMarkdown renders the differentiators and the benchmark table.
func (s *Site) WhyUsMarkdown() string {
	var b strings.Builder
	heading(&b, 1, s.Brand.Tagline)
	fmt.Fprintf(&b, "%s\n\n", s.Brand.Lead)
	cards(&b, s.WhyUs.Advantages)

	heading(&b, 2, "The Scalability Benchmark")
	b.WriteString("| Metric | Standard Agency | Orbytrixx |\n|---|---|---|\n")
	for _, r := range s.WhyUs.Benchmark {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", r.Metric, r.Standard, r.Orbytrixx)
	}
	return b.String()
}

// CareersMarkdown renders everything on the careers page above the form.
func (s *Site) CareersMarkdown() string {
	var b strings.Builder
	heading(&b, 1, s.Careers.Headline)
	fmt.Fprintf(&b, "%s\n\n", s.Brand.Lead)
	cards(&b, s.Careers.Benefits)

	heading(&b, 2, "Open Missions")
	for _, r := range s.Careers.Roles {
		status := r.Type
		if r.Future {
			status = "Coming Soon"
		}
		fmt.Fprintf(&b, "- **%s** (%s · %s · %s)  \n  %s\n", r.Title, r.Team, r.Location, status, r.Desc)
	}
	b.WriteString("\n")

	heading(&b, 2, "Onboarding Framework")
	steps(&b, s.Careers.HiringSteps)
	return b.String()
}

// ContactMarkdown renders the contact channels next to the inquiry form.
func (s *Site) ContactMarkdown() string {
	var b strings.Builder
	heading(&b, 1, s.Contact.Headline)
	fmt.Fprintf(&b, "%s\n\n", s.Contact.Lead)
	fmt.Fprintf(&b, "- **Contact Us**: %s\n", s.Contact.Email)
	fmt.Fprintf(&b, "- **Primary**: %s\n", s.Contact.Phone)
	fmt.Fprintf(&b, "- **Location**: %s\n\n", s.Contact.Location)

	heading(&b, 3, "Digital Orbit")
	for _, l := range urls.Social {
		fmt.Fprintf(&b, "- %s: %s\n", l.Label, l.URL)
	}
	return b.String()
}

// FooterLine is the one-line footer shown under every page.
func (s *Site) FooterLine() string {
	return fmt.Sprintf("%s · %s · %s", s.Brand.Copyright, s.Contact.Email, urls.Website)
}
