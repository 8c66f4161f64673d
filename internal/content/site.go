package content

import (
	_ "embed"
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var siteYAML []byte

// Site is the complete copy of the company site.
type Site struct {
	Brand    Brand     `yaml:"brand"`
	Home     Home      `yaml:"home"`
	About    About     `yaml:"about"`
	Services []Service `yaml:"services"`
	WhyUs    WhyUs     `yaml:"why_us"`
	Careers  Careers   `yaml:"careers"`
	Contact  Contact   `yaml:"contact"`
}

// Brand holds the wordmark and taglines shared by every page.
type Brand struct {
	Name      string `yaml:"name"`
	Tagline   string `yaml:"tagline"`
	Lead      string `yaml:"lead"`
	Footer    string `yaml:"footer"`
	Copyright string `yaml:"copyright"`
}

// Card is a titled blurb (features, advantages, benefits).
type Card struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// Step is a numbered process step.
type Step struct {
	Num   string `yaml:"num"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// Home is the landing page.
type Home struct {
	Features []Card   `yaml:"features"`
	Process  []Step   `yaml:"process"`
	Customer Customer `yaml:"customer"`
	CTA      Card     `yaml:"cta"`
}

// Customer is the featured success story.
type Customer struct {
	Name     string   `yaml:"name"`
	Tagline  string   `yaml:"tagline"`
	URL      string   `yaml:"url"`
	Story    string   `yaml:"story"`
	Services []string `yaml:"services"`
}

// Milestone is one entry of the company timeline.
type Milestone struct {
	Date  string `yaml:"date"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// About is the company narrative page.
type About struct {
	Headline     string      `yaml:"headline"`
	Paragraphs   []string    `yaml:"paragraphs"`
	Role         string      `yaml:"role"`
	Philosophy   string      `yaml:"philosophy"`
	Milestones   []Milestone `yaml:"milestones"`
	Capabilities []string    `yaml:"capabilities"`
	Vision       string      `yaml:"vision"`
}

// BenchmarkRow compares a metric against a standard agency.
type BenchmarkRow struct {
	Metric    string `yaml:"metric"`
	Standard  string `yaml:"standard"`
	Orbytrixx string `yaml:"orbytrixx"`
}

// WhyUs is the differentiators page.
type WhyUs struct {
	Advantages []Card         `yaml:"advantages"`
	Benchmark  []BenchmarkRow `yaml:"benchmark"`
}

// Role is an open position. Future roles are listed but cannot be applied to.
type Role struct {
	Title    string `yaml:"title"`
	Team     string `yaml:"team"`
	Location string `yaml:"location"`
	Type     string `yaml:"type"`
	Desc     string `yaml:"desc"`
	Future   bool   `yaml:"future"`
}

// Careers is the hiring page and the copy around the application form.
type Careers struct {
	Headline     string `yaml:"headline"`
	Benefits     []Card `yaml:"benefits"`
	Roles        []Role `yaml:"roles"`
	HiringSteps  []Step `yaml:"hiring_steps"`
	FormTitle    string `yaml:"form_title"`
	SubmitLabel  string `yaml:"submit_label"`
	SuccessTitle string `yaml:"success_title"`
	SuccessBody  string `yaml:"success_body"`
	ResetLabel   string `yaml:"reset_label"`
}

// Contact is the inquiry page.
type Contact struct {
	Headline     string `yaml:"headline"`
	Lead         string `yaml:"lead"`
	Email        string `yaml:"email"`
	Phone        string `yaml:"phone"`
	Location     string `yaml:"location"`
	SubmitLabel  string `yaml:"submit_label"`
	SuccessTitle string `yaml:"success_title"`
	SuccessBody  string `yaml:"success_body"`
	ResetLabel   string `yaml:"reset_label"`
}

var (
	globalSite     *Site
	globalSiteOnce sync.Once
	globalSiteErr  error

	textPolicy = bluemonday.StrictPolicy()
)

// Load parses the embedded site copy. The result is shared; callers must not
// modify it.
func Load() (*Site, error) {
	globalSiteOnce.Do(func() {
		globalSite, globalSiteErr = Parse(siteYAML)
	})
	return globalSite, globalSiteErr
}

// MustLoad is Load for callers that treat a broken embedded file as a bug.
func MustLoad() *Site {
	site, err := Load()
	if err != nil {
		panic(err)
	}
	return site
}

// Parse decodes site copy from YAML, strips any markup from the text and
// checks that services are addressable.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	site.sanitize()
	if err := site.validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Text reduces s to plain text: tags are removed, entities decoded and
// whitespace collapsed.
func Text(s string) string {
	clean := html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Join(strings.Fields(clean), " ")
}

func textAll(items []string) {
	for i := range items {
		items[i] = Text(items[i])
	}
}

func (c *Card) sanitize() {
	c.Title = Text(c.Title)
	c.Desc = Text(c.Desc)
}

func (st *Step) sanitize() {
	st.Num = Text(st.Num)
	st.Title = Text(st.Title)
	st.Desc = Text(st.Desc)
}

func sanitizeCards(cards []Card) {
	for i := range cards {
		cards[i].sanitize()
	}
}

func sanitizeSteps(steps []Step) {
	for i := range steps {
		steps[i].sanitize()
	}
}

func (s *Site) sanitize() {
	b := &s.Brand
	b.Name, b.Tagline, b.Lead = Text(b.Name), Text(b.Tagline), Text(b.Lead)
	b.Footer, b.Copyright = Text(b.Footer), Text(b.Copyright)

	sanitizeCards(s.Home.Features)
	sanitizeSteps(s.Home.Process)
	s.Home.CTA.sanitize()
	cu := &s.Home.Customer
	cu.Name, cu.Tagline, cu.Story = Text(cu.Name), Text(cu.Tagline), Text(cu.Story)
	textAll(cu.Services)

	a := &s.About
	a.Headline, a.Role, a.Philosophy, a.Vision = Text(a.Headline), Text(a.Role), Text(a.Philosophy), Text(a.Vision)
	textAll(a.Paragraphs)
	textAll(a.Capabilities)
	for i := range a.Milestones {
		m := &a.Milestones[i]
		m.Date, m.Title, m.Desc = Text(m.Date), Text(m.Title), Text(m.Desc)
	}

	for i := range s.Services {
		svc := &s.Services[i]
		svc.Slug, svc.Title = Text(svc.Slug), Text(svc.Title)
		svc.Short, svc.Desc = Text(svc.Short), Text(svc.Desc)
		textAll(svc.Features)
		textAll(svc.Capabilities)
		textAll(svc.IdealFor)
	}

	sanitizeCards(s.WhyUs.Advantages)
	for i := range s.WhyUs.Benchmark {
		r := &s.WhyUs.Benchmark[i]
		r.Metric, r.Standard, r.Orbytrixx = Text(r.Metric), Text(r.Standard), Text(r.Orbytrixx)
	}

	c := &s.Careers
	sanitizeCards(c.Benefits)
	sanitizeSteps(c.HiringSteps)
	for i := range c.Roles {
		r := &c.Roles[i]
		r.Title, r.Team, r.Location = Text(r.Title), Text(r.Team), Text(r.Location)
		r.Type, r.Desc = Text(r.Type), Text(r.Desc)
	}
	c.Headline, c.FormTitle, c.SubmitLabel = Text(c.Headline), Text(c.FormTitle), Text(c.SubmitLabel)
	c.SuccessTitle, c.SuccessBody, c.ResetLabel = Text(c.SuccessTitle), Text(c.SuccessBody), Text(c.ResetLabel)

	ct := &s.Contact
	ct.Headline, ct.Lead, ct.Location = Text(ct.Headline), Text(ct.Lead), Text(ct.Location)
	ct.SubmitLabel, ct.ResetLabel = Text(ct.SubmitLabel), Text(ct.ResetLabel)
	ct.SuccessTitle, ct.SuccessBody = Text(ct.SuccessTitle), Text(ct.SuccessBody)
}

func (s *Site) validate() error {
	if len(s.Services) == 0 {
		return fmt.Errorf("site content has no services")
	}
	seen := make(map[string]bool, len(s.Services))
	for i, svc := range s.Services {
		if svc.Slug == "" || svc.Title == "" {
			return fmt.Errorf("service %d: slug and title are required", i)
		}
		if seen[svc.Slug] {
			return fmt.Errorf("duplicate service slug %q", svc.Slug)
		}
		seen[svc.Slug] = true
	}
	return nil
}
