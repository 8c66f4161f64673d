package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/orbytrixx/orbytrixx/internal/config"
	"github.com/orbytrixx/orbytrixx/internal/content"
	"github.com/orbytrixx/orbytrixx/internal/form"
	"github.com/orbytrixx/orbytrixx/internal/logging"
)

// Page represents one page of the site
type Page int

const (
	PageHome Page = iota
	PageServices
	PageAbout
	PageCareers
	PageWhyUs
	PageContact
)

// pageCount is the number of navigable pages.
const pageCount = 6

// navHeight is the number of content rows used by the navigation bar.
const navHeight = 2

var pageNames = [pageCount]string{"Home", "Services", "About", "Careers", "Why Us", "Contact"}

var pageSlugs = [pageCount]string{"home", "services", "about", "careers", "why-us", "contact"}

// String returns the navigation label of the page.
func (p Page) String() string {
	if p < 0 || int(p) >= pageCount {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// Slug returns the command-line name of the page.
func (p Page) Slug() string {
	if p < 0 || int(p) >= pageCount {
		return ""
	}
	return pageSlugs[p]
}

// ParsePage resolves a page slug or label, case-insensitively.
func ParsePage(name string) (Page, error) {
	name = strings.TrimSpace(name)
	for i := 0; i < pageCount; i++ {
		if strings.EqualFold(name, pageSlugs[i]) || strings.EqualFold(name, pageNames[i]) {
			return Page(i), nil
		}
	}
	return PageHome, fmt.Errorf("unknown page %q (want one of %s)", name, strings.Join(pageSlugs[:], ", "))
}

// PageHeight is the height available to a page below the navigation bar.
func PageHeight(terminalHeight int) int {
	h := ContentHeight(terminalHeight) - navHeight
	if h < 1 {
		return 1
	}
	return h
}

// appKeyMap defines the global key bindings
type appKeyMap struct {
	Pages    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Scroll   key.Binding
	Select   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pages, k.NextPage, k.Scroll, k.Select, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pages, k.NextPage, k.PrevPage},
		{k.Scroll, k.Select},
		{k.Help, k.Quit},
	}
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Pages: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "pages"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous page"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// formKeyMap defines key bindings while a form has focus
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Leave  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Submit, k.Leave}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Submit, k.Leave}}
}

func newFormKeyMap() formKeyMap {
	return formKeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave form")),
	}
}

// pickerKeyMap defines key bindings while the dial-code panel is open
type pickerKeyMap struct {
	Move   key.Binding
	Choose key.Binding
	Search key.Binding
	Close  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Choose, k.Search, k.Close}
}

// FullHelp returns keybindings for the expanded help view
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Move:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("type", "search")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// Options configures NewAppModel.
type Options struct {
	Site      *content.Site
	Settings  *config.Settings
	Submitter form.Submitter

	// StartPage is the first page shown after the intro.
	StartPage Page
	// Service matches a service slug or title. With StartPage set to
	// PageServices it opens that service's detail; otherwise it deep-links
	// into Contact with the service inquiry pre-filled.
	Service string
	// SkipIntro opens the site directly.
	SkipIntro bool
	// MarkdownStyle is a glamour style name; empty picks one from the
	// terminal background.
	MarkdownStyle string
}

// AppModel is the root model of the terminal site
type AppModel struct {
	site      *content.Site
	settings  *config.Settings
	submitter form.Submitter
	renderer  *markdownRenderer

	page      Page
	showIntro bool
	intro     IntroModel

	home     PageModel
	about    PageModel
	whyUs    PageModel
	services ServicesModel
	careers  FormModel
	contact  FormModel

	Width  int
	Height int

	help       help.Model
	keys       appKeyMap
	formKeys   formKeyMap
	pickerKeys pickerKeyMap
}

// NewAppModel builds the site. An unknown Service is an error.
func NewAppModel(opts Options) (AppModel, error) {
	site := opts.Site
	if site == nil {
		loaded, err := content.Load()
		if err != nil {
			return AppModel{}, err
		}
		site = loaded
	}
	settings := opts.Settings
	if settings == nil {
		settings = config.NewSettings()
	}

	renderer := newMarkdownRenderer(opts.MarkdownStyle)
	m := AppModel{
		site:       site,
		settings:   settings,
		submitter:  opts.Submitter,
		renderer:   renderer,
		page:       opts.StartPage,
		showIntro:  !opts.SkipIntro && !settings.Display.SkipIntro,
		intro:      NewIntroModel(site.Brand.Name, site.Brand.Tagline),
		home:       NewPageModel(site.HomeMarkdown(), renderer),
		about:      NewPageModel(site.AboutMarkdown(), renderer),
		whyUs:      NewPageModel(site.WhyUsMarkdown(), renderer),
		services:   NewServicesModel(site.Services, renderer),
		help:       help.New(),
		keys:       newAppKeyMap(),
		formKeys:   newFormKeyMap(),
		pickerKeys: newPickerKeyMap(),
	}
	if m.page < 0 || int(m.page) >= pageCount {
		m.page = PageHome
	}
	if m.page == PageContact {
		m.showIntro = false
	}

	m.careers = m.newCareersForm()
	m.contact = m.newContactForm("")

	if opts.Service != "" {
		i, ok := site.ServiceIndex(opts.Service)
		if !ok {
			return AppModel{}, fmt.Errorf("unknown service %q", opts.Service)
		}
		if m.page == PageServices {
			m.services.Focus(i)
			return m, nil
		}
		m.contact = m.newContactForm(site.Services[i].Inquiry())
		m.page = PageContact
		m.showIntro = false
	}
	return m, nil
}

func (m AppModel) sessionOptions() []form.Option {
	var opts []form.Option
	if code := m.settings.Display.DefaultDialCode; code != "" {
		opts = append(opts, form.WithDefault(form.FieldCountryCode, code))
	}
	return opts
}

func (m AppModel) newCareersForm() FormModel {
	c := m.site.Careers
	return NewFormModel(FormOptions{
		Session:   form.NewCareers(m.sessionOptions()...),
		Submitter: m.submitter,
		Copy: FormCopy{
			Title:        c.FormTitle,
			SubmitLabel:  c.SubmitLabel,
			SuccessTitle: c.SuccessTitle,
			SuccessBody:  c.SuccessBody,
			ResetLabel:   c.ResetLabel,
		},
		Info:       NewPageModel(m.site.CareersMarkdown(), m.renderer),
		Breakpoint: m.settings.Display.CompactBreakpoint,
	})
}

// newContactForm creates the inquiry form. A non-empty inquiry pre-fills the
// message of the first record; Reset clears it.
func (m AppModel) newContactForm(inquiry string) FormModel {
	opts := m.sessionOptions()
	if inquiry != "" {
		opts = append(opts, form.WithInitial(form.FieldMessage, inquiry))
	}
	c := m.site.Contact
	return NewFormModel(FormOptions{
		Session:   form.NewContact(opts...),
		Submitter: m.submitter,
		Copy: FormCopy{
			Title:        "Start a Project",
			SubmitLabel:  c.SubmitLabel,
			SuccessTitle: c.SuccessTitle,
			SuccessBody:  c.SuccessBody,
			ResetLabel:   c.ResetLabel,
		},
		Info:       NewPageModel(m.site.ContactMarkdown(), m.renderer),
		Breakpoint: m.settings.Display.CompactBreakpoint,
	})
}

// Page returns the active page.
func (m AppModel) Page() Page { return m.page }

// ShowingIntro reports whether the splash is on screen.
func (m AppModel) ShowingIntro() bool { return m.showIntro }

// Careers returns the careers form.
func (m AppModel) Careers() FormModel { return m.careers }

// Contact returns the contact form.
func (m AppModel) Contact() FormModel { return m.contact }

// Services returns the services carousel.
func (m AppModel) Services() ServicesModel { return m.services }

// Init starts the intro when it is shown.
func (m AppModel) Init() tea.Cmd {
	if m.showIntro {
		return m.intro.Init()
	}
	return nil
}

// activeForm returns the form of the current page, if any.
func (m *AppModel) activeForm() *FormModel {
	switch m.page {
	case PageCareers:
		return &m.careers
	case PageContact:
		return &m.contact
	}
	return nil
}

// Update handles messages and updates the model
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if m.showIntro {
		var cmd tea.Cmd
		m.intro, cmd = m.intro.Update(msg)
		if m.intro.Done() {
			m.showIntro = false
			logging.LogNavigation("intro", m.page.Slug())
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case startProjectMsg:
		m.contact = m.newContactForm(msg.service.Inquiry())
		m.contact.SetSize(ContentWidth(m.Width), PageHeight(m.Height), m.Width, m.Height)
		m.navigate(PageContact)
		return m, nil

	case submitCompleteMsg:
		var cmd tea.Cmd
		if msg.variant == form.Careers {
			m.careers, cmd = m.careers.Update(msg)
		} else {
			m.contact, cmd = m.contact.Update(msg)
		}
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.careers, cmd = m.careers.Update(msg)
	cmds = append(cmds, cmd)
	m.contact, cmd = m.contact.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if f := m.activeForm(); f != nil && f.Captures() {
		var cmd tea.Cmd
		*f, cmd = f.Update(msg)
		return m, cmd
	}

	switch s := msg.String(); s {
	case "q":
		return m, tea.Quit
	case "?":
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case "tab":
		m.navigate(Page((int(m.page) + 1) % pageCount))
		return m, nil
	case "shift+tab":
		m.navigate(Page((int(m.page) + pageCount - 1) % pageCount))
		return m, nil
	case "1", "2", "3", "4", "5", "6":
		n, _ := strconv.Atoi(s)
		m.navigate(Page(n - 1))
		return m, nil
	}

	var cmd tea.Cmd
	switch m.page {
	case PageHome:
		m.home, cmd = m.home.Update(msg)
	case PageAbout:
		m.about, cmd = m.about.Update(msg)
	case PageWhyUs:
		m.whyUs, cmd = m.whyUs.Update(msg)
	case PageServices:
		m.services, cmd = m.services.Update(msg)
	case PageCareers:
		m.careers, cmd = m.careers.Update(msg)
	case PageContact:
		m.contact, cmd = m.contact.Update(msg)
	}
	return m, cmd
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (AppModel, tea.Cmd) {
	x := msg.X - contentLeft
	y := msg.Y - contentTop - navHeight

	var cmd tea.Cmd
	switch m.page {
	case PageCareers:
		m.careers, cmd = m.careers.HandleMouse(msg, x, y)
	case PageContact:
		m.contact, cmd = m.contact.HandleMouse(msg, x, y)
	case PageHome:
		m.home, _ = m.home.Update(msg)
	case PageAbout:
		m.about, _ = m.about.Update(msg)
	case PageWhyUs:
		m.whyUs, _ = m.whyUs.Update(msg)
	case PageServices:
		m.services, _ = m.services.Update(msg)
	}
	return m, cmd
}

// navigate switches pages. Open pickers are closed on the way out.
func (m *AppModel) navigate(to Page) {
	if to == m.page {
		return
	}
	if f := m.activeForm(); f != nil && f.picker.IsOpen() {
		f.picker.Close()
	}
	logging.LogNavigation(m.page.Slug(), to.Slug())
	m.page = to
}

func (m *AppModel) resize(width, height int) {
	m.Width = width
	m.Height = height
	m.intro.Width = width
	m.intro.Height = height
	m.help.Width = ContentWidth(width)

	w := ContentWidth(width)
	h := PageHeight(height)
	m.home.SetSize(w, h)
	m.about.SetSize(w, h)
	m.whyUs.SetSize(w, h)
	m.services.SetSize(w, h)
	m.careers.SetSize(w, h, width, height)
	m.contact.SetSize(w, h, width, height)
}

// View renders the active screen
func (m AppModel) View() string {
	if m.Width == 0 {
		return "Loading..."
	}
	if m.showIntro {
		return m.intro.View()
	}

	if f := m.activeForm(); f != nil && f.Alert() != "" {
		return RenderModal(f.AlertView(m.Width), m.Width, m.Height)
	}

	var body string
	switch m.page {
	case PageHome:
		body = m.home.View()
	case PageAbout:
		body = m.about.View()
	case PageWhyUs:
		body = m.whyUs.View()
	case PageServices:
		body = m.services.View()
	case PageCareers:
		body = m.careers.View()
	case PageContact:
		body = m.contact.View()
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, m.renderNav(), "", body)
	return RenderApplicationContainer(screen, m.footerText(), m.Width, m.Height)
}

func (m AppModel) renderNav() string {
	items := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		label := fmt.Sprintf("%d %s", i+1, pageNames[i])
		if Page(i) == m.page {
			items = append(items, ActiveNavItemStyle.Render(label))
		} else {
			items = append(items, NavItemStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m AppModel) footerText() string {
	if f := m.activeForm(); f != nil {
		switch {
		case f.picker.IsOpen():
			return m.help.View(m.pickerKeys)
		case f.Focused():
			return m.help.View(m.formKeys)
		}
	}
	return m.help.View(m.keys) + "  " + m.site.FooterLine()
}
