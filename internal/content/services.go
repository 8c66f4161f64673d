package content

import (
	"strings"
	"unicode/utf8"
)

// inquirySeparator joins a service title and the inquiry suffix.
const inquirySeparator = " – "

// Service is one offering of the services carousel.
type Service struct {
	Slug         string   `yaml:"slug"`
	Title        string   `yaml:"title"`
	Short        string   `yaml:"short"`
	Desc         string   `yaml:"desc"`
	Features     []string `yaml:"features"`
	Capabilities []string `yaml:"capabilities"`
	IdealFor     []string `yaml:"ideal_for"`
	ComingSoon   bool     `yaml:"coming_soon"`
}

// InquirySubject is the Contact message seeded when a visitor arrives from
// a service: "<title> – Project Inquiry".
func InquirySubject(title string) string {
	return title + inquirySeparator + "Project Inquiry"
}

// Inquiry returns InquirySubject for the service.
func (s Service) Inquiry() string {
	return InquirySubject(s.Title)
}

// ServiceIndex returns the index of the service matching key by slug or,
// case-insensitively, by title. Deep links from the services page carry the
// title while footer links carry the slug; both resolve here.
func (s *Site) ServiceIndex(key string) (int, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, false
	}
	for i, svc := range s.Services {
		if svc.Slug == key || strings.EqualFold(svc.Title, key) {
			return i, true
		}
	}
	return 0, false
}

// Service returns the service matching key (see ServiceIndex).
func (s *Site) Service(key string) (Service, bool) {
	i, ok := s.ServiceIndex(key)
	if !ok {
		return Service{}, false
	}
	return s.Services[i], true
}

// Truncate shortens s to max runes, ending in "..." when cut.
func Truncate(s string, max int) string {
	if max <= 3 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}

// Carousel tracks the active item of a circular list.
type Carousel struct {
	index int
	size  int
}

// NewCarousel creates a carousel over size items starting at the first.
func NewCarousel(size int) *Carousel {
	if size < 0 {
		size = 0
	}
	return &Carousel{size: size}
}

// Index returns the active position.
func (c *Carousel) Index() int { return c.index }

// Len returns the number of items.
func (c *Carousel) Len() int { return c.size }

// Next advances with wraparound.
func (c *Carousel) Next() {
	if c.size == 0 {
		return
	}
	c.index = (c.index + 1) % c.size
}

// Prev steps back with wraparound.
func (c *Carousel) Prev() {
	if c.size == 0 {
		return
	}
	c.index = (c.index - 1 + c.size) % c.size
}

// Set jumps to i. Out-of-range values are ignored.
func (c *Carousel) Set(i int) bool {
	if i < 0 || i >= c.size {
		return false
	}
	c.index = i
	return true
}

// Neighbors returns the previous and next positions of the active item.
func (c *Carousel) Neighbors() (prev, next int) {
	if c.size == 0 {
		return 0, 0
	}
	return (c.index - 1 + c.size) % c.size, (c.index + 1) % c.size
}
