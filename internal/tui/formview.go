package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/orbytrixx/orbytrixx/internal/form"
	"github.com/orbytrixx/orbytrixx/internal/logging"
	"github.com/orbytrixx/orbytrixx/internal/selector"
	"github.com/orbytrixx/orbytrixx/internal/submission"
)

// submitCompleteMsg carries the result of an asynchronous submission.
type submitCompleteMsg struct {
	variant   form.Variant
	attemptID string
	err       error
	elapsed   time.Duration
}

// FormCopy is the text around a form.
type FormCopy struct {
	Title        string
	SubmitLabel  string
	SuccessTitle string
	SuccessBody  string
	ResetLabel   string
}

const noFocus = -1

// FormModel renders a form.Session as an interactive form next to an info
// page. Validation and outcome live in the session; this model only owns
// focus, widgets and layout.
type FormModel struct {
	session   *form.Session
	submitter form.Submitter
	copy      FormCopy

	fields []form.Field
	inputs []textinput.Model
	area   textarea.Model
	picker PickerModel
	role   int

	// focus indexes fields; len(fields) is the submit button.
	focus int

	info    PageModel
	body    viewport.Model
	spinner spinner.Model

	alert     string
	attemptID string

	// panelTop is the body row of the open desktop dropdown.
	panelTop int
	// focusTop and focusBottom bound the focused block in the body.
	focusTop    int
	focusBottom int
	// blocks holds the body rows [top, bottom) of each field and, last,
	// the submit button.
	blocks [][2]int

	width  int
	height int
}

// FormOptions configures NewFormModel.
type FormOptions struct {
	Session    *form.Session
	Submitter  form.Submitter
	Copy       FormCopy
	Info       PageModel
	Breakpoint int
}

// NewFormModel builds the widgets for every field of the session variant.
func NewFormModel(opts FormOptions) FormModel {
	session := opts.Session
	fields := session.Variant().Fields()

	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		if isTextField(f) {
			inputs[i] = newFieldInput(f)
		}
	}

	area := textarea.New()
	area.ShowLineNumbers = false
	area.CharLimit = 2000
	area.SetHeight(4)
	switch session.Variant() {
	case form.Careers:
		area.Placeholder = "Metrics, impact and the work you are proudest of"
	default:
		area.Placeholder = "Tell us about the project"
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	selOpts := []selector.Option{
		selector.WithOnChange(session.SetCountryCode),
		selector.WithOnBlur(func() { session.SetTouched(form.FieldCountryCode) }),
	}
	if opts.Breakpoint > 0 {
		selOpts = append(selOpts, selector.WithBreakpoint(opts.Breakpoint))
	}
	sel := selector.New(session.Value(form.FieldCountryCode), selOpts...)

	m := FormModel{
		session:   session,
		submitter: opts.Submitter,
		copy:      opts.Copy,
		fields:    fields,
		inputs:    inputs,
		area:      area,
		picker:    NewPickerModel(session.Variant().String(), sel),
		focus:     noFocus,
		info:      opts.Info,
		body:      viewport.New(0, 0),
		spinner:   sp,
	}
	m.loadValues()
	return m
}

func isTextField(f form.Field) bool {
	switch f {
	case form.FieldCountryCode, form.FieldRole, form.FieldMessage, form.FieldSummary:
		return false
	}
	return true
}

func isAreaField(f form.Field) bool {
	return f == form.FieldMessage || f == form.FieldSummary
}

func newFieldInput(f form.Field) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 120
	switch f {
	case form.FieldName:
		ti.Placeholder = "Ada Lovelace"
	case form.FieldEmail:
		ti.Placeholder = "name@domain.com"
	case form.FieldPhone:
		ti.Placeholder = "10-digit number"
		ti.CharLimit = 14
	case form.FieldCompany:
		ti.Placeholder = "Company"
	case form.FieldPortfolio:
		ti.Placeholder = "https://github.com/you"
		ti.CharLimit = 200
	}
	return ti
}

// loadValues copies the session record into the widgets.
func (m *FormModel) loadValues() {
	for i, f := range m.fields {
		switch {
		case isTextField(f):
			m.inputs[i].SetValue(m.session.Value(f))
		case isAreaField(f):
			m.area.SetValue(m.session.Value(f))
		case f == form.FieldRole:
			m.role = roleIndex(m.session.Value(f))
		case f == form.FieldCountryCode:
			m.picker.SetValue(m.session.Value(f))
		}
	}
}

func roleIndex(role string) int {
	for i, r := range form.Roles {
		if r == role {
			return i
		}
	}
	return 0
}

// Session returns the underlying form session.
func (m FormModel) Session() *form.Session { return m.session }

// Alert returns the blocking failure message, or "" when none is showing.
func (m FormModel) Alert() string { return m.alert }

// Focused reports whether a field or the submit button has focus.
func (m FormModel) Focused() bool { return m.focus != noFocus }

// FocusedField returns the focused field, or "" when none.
func (m FormModel) FocusedField() form.Field {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return ""
	}
	return m.fields[m.focus]
}

// Picker returns the dial-code picker.
func (m FormModel) Picker() PickerModel { return m.picker }

// Captures reports whether the form wants every key, so page navigation is
// suspended.
func (m FormModel) Captures() bool {
	return m.focus != noFocus || m.alert != "" || m.picker.IsOpen()
}

func (m FormModel) compact() bool {
	return m.picker.Selector().Compact()
}

// SetSize lays out the info page and the form column for a page area.
// termWidth and termHeight drive the picker layout.
func (m *FormModel) SetSize(width, height, termWidth, termHeight int) {
	m.width = width
	m.height = height
	m.picker.SetSize(termWidth, termHeight)

	infoWidth, formWidth := m.columns()
	if m.compact() {
		m.info.SetSize(infoWidth, height-1)
	} else {
		m.info.SetSize(infoWidth, height)
	}
	m.body.Width = formWidth
	m.body.Height = height

	inputWidth := formWidth - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	for i, f := range m.fields {
		if isTextField(f) {
			m.inputs[i].Width = inputWidth
		}
	}
	m.area.SetWidth(inputWidth)
	m.sync()
}

// columns splits the page into info and form widths. The compact layout
// shows one column at a time.
func (m FormModel) columns() (int, int) {
	if m.compact() {
		return m.width, m.width
	}
	info := m.width/2 - 1
	return info, m.width - info - 2
}

// formOrigin is the page position of the form column.
func (m FormModel) formOrigin() (int, int) {
	if m.compact() {
		return 0, 0
	}
	info, _ := m.columns()
	return info + 2, 0
}

// Update routes messages to the focused widget.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case submitCompleteMsg:
		if msg.variant == m.session.Variant() {
			m.finishSubmit(msg)
		}

	case spinner.TickMsg:
		if m.session.Outcome() == form.Submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case focusSearchMsg:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	default:
		switch {
		case m.picker.IsOpen():
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			cmds = append(cmds, cmd)
		case m.FocusedField() != "" && isAreaField(m.FocusedField()):
			var cmd tea.Cmd
			m.area, cmd = m.area.Update(msg)
			cmds = append(cmds, cmd)
		case m.focus >= 0 && m.focus < len(m.fields) && isTextField(m.fields[m.focus]):
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			cmds = append(cmds, cmd)
		case m.focus == noFocus:
			var cmd tea.Cmd
			m.info, cmd = m.info.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.sync()
	return m, tea.Batch(cmds...)
}

func (m FormModel) handleKey(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	if m.alert != "" {
		switch msg.String() {
		case "enter", "esc", " ":
			m.alert = ""
			m.session.DismissFailure()
		}
		return m, nil
	}

	switch m.session.Outcome() {
	case form.Submitting:
		return m, nil
	case form.Submitted:
		switch msg.String() {
		case "enter", "r":
			m.reset()
		}
		return m, nil
	}

	if m.picker.IsOpen() {
		var cmd tea.Cmd
		var handled bool
		m.picker, cmd, handled = m.picker.HandleKey(msg)
		if handled {
			return m, cmd
		}
	}

	if m.focus == noFocus {
		switch msg.String() {
		case "enter", "f":
			return m, m.setFocus(0)
		}
		var cmd tea.Cmd
		m.info, cmd = m.info.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "tab":
		return m, m.setFocus((m.focus + 1) % (len(m.fields) + 1))
	case "shift+tab":
		return m, m.setFocus((m.focus + len(m.fields)) % (len(m.fields) + 1))
	case "esc":
		return m, m.setFocus(noFocus)
	case "ctrl+s":
		return m, m.submit()
	}

	if m.focus == len(m.fields) {
		switch msg.String() {
		case "enter", " ":
			return m, m.submit()
		case "up":
			return m, m.setFocus(m.focus - 1)
		}
		return m, nil
	}

	f := m.fields[m.focus]
	switch {
	case f == form.FieldCountryCode:
		var cmd tea.Cmd
		var handled bool
		m.picker, cmd, handled = m.picker.HandleKey(msg)
		if handled {
			return m, cmd
		}
		return m, m.moveKey(msg)

	case f == form.FieldRole:
		switch msg.String() {
		case "left", "h":
			m.setRole(m.role - 1)
		case "right", "l", " ":
			m.setRole(m.role + 1)
		default:
			return m, m.moveKey(msg)
		}
		return m, nil

	case isAreaField(f):
		var cmd tea.Cmd
		m.area, cmd = m.area.Update(msg)
		m.session.SetField(f, m.area.Value())
		return m, cmd
	}

	switch msg.String() {
	case "enter", "down", "up":
		return m, m.moveKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	value := m.inputs[m.focus].Value()
	m.session.SetField(f, value)
	if stored := m.session.Value(f); stored != value {
		m.inputs[m.focus].SetValue(stored)
	}
	return m, cmd
}

// moveKey moves focus for enter/down/up on single-line fields.
func (m *FormModel) moveKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "down":
		return m.setFocus(m.focus + 1)
	case "up":
		if m.focus > 0 {
			return m.setFocus(m.focus - 1)
		}
	}
	return nil
}

func (m *FormModel) setRole(i int) {
	n := len(form.Roles)
	m.role = (i%n + n) % n
	m.session.SetField(form.FieldRole, form.Roles[m.role])
}

// setFocus blurs the current widget, marking its field touched, and focuses
// the widget at next.
func (m *FormModel) setFocus(next int) tea.Cmd {
	if next == m.focus {
		return nil
	}
	m.blurCurrent()
	m.focus = next

	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil
	}
	f := m.fields[m.focus]
	switch {
	case isTextField(f):
		return m.inputs[m.focus].Focus()
	case isAreaField(f):
		return m.area.Focus()
	}
	return nil
}

func (m *FormModel) blurCurrent() {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return
	}
	f := m.fields[m.focus]
	switch {
	case f == form.FieldCountryCode:
		m.picker.Blur()
		return
	case isTextField(f):
		m.inputs[m.focus].Blur()
	case isAreaField(f):
		m.area.Blur()
	}
	m.session.SetTouched(f)
}

// submit starts a submission, or reveals every error when the form is not
// ready.
func (m *FormModel) submit() tea.Cmd {
	if !m.session.CanSubmit() {
		m.session.TouchAll()
		return nil
	}
	if err := m.session.Begin(); err != nil {
		return nil
	}
	m.blurCurrent()
	m.focus = len(m.fields)
	m.attemptID = uuid.NewString()

	if !m.session.NeedsNetwork() || m.submitter == nil {
		m.finishSubmit(submitCompleteMsg{variant: m.session.Variant(), attemptID: m.attemptID})
		return nil
	}
	return tea.Batch(m.spinner.Tick, submitCmd(m.submitter, m.session.Variant(), m.attemptID, m.session.Values()))
}

func submitCmd(sub form.Submitter, variant form.Variant, attemptID string, values form.Values) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		err := sub.Submit(context.Background(), values)
		return submitCompleteMsg{
			variant:   variant,
			attemptID: attemptID,
			err:       err,
			elapsed:   time.Since(start),
		}
	}
}

func (m *FormModel) finishSubmit(msg submitCompleteMsg) {
	if m.session.Outcome() != form.Submitting {
		return
	}
	m.session.Finish(msg.err)
	logging.LogSubmission(msg.attemptID, msg.variant.String(), m.session.Outcome().String(), msg.elapsed, msg.err)

	if m.session.Outcome() == form.Failed {
		m.alert = submission.AlertMessage(msg.err)
		return
	}
	m.focus = noFocus
}

func (m *FormModel) reset() {
	m.blurCurrent()
	m.session.Reset()
	m.loadValues()
	m.focus = noFocus
	m.alert = ""
}

// sync re-renders the form body and scrolls the focused block into view.
func (m *FormModel) sync() {
	if m.body.Width <= 0 {
		return
	}
	m.body.SetContent(m.renderBody())
	if m.focus == noFocus {
		return
	}
	if m.focusBottom-m.focusTop >= m.body.Height || m.focusTop < m.body.YOffset {
		m.body.SetYOffset(m.focusTop)
	} else if m.focusBottom > m.body.YOffset+m.body.Height {
		m.body.SetYOffset(m.focusBottom - m.body.Height)
	}
}

// renderBody renders the form column and records block offsets for
// scrolling and mouse hit-testing.
func (m *FormModel) renderBody() string {
	var lines []string
	add := func(block string) (top, bottom int) {
		top = len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		return top, len(lines)
	}

	add(TitleStyle.Render(m.copy.Title))
	m.focusTop, m.focusBottom = 0, 0
	m.blocks = m.blocks[:0]

	if m.session.Outcome() == form.Submitted {
		add(m.renderSuccess())
		return strings.Join(lines, "\n")
	}

	for i, f := range m.fields {
		top, bottom := add(m.renderField(i, f))
		if f == form.FieldCountryCode && m.picker.IsOpen() && !m.compact() {
			m.panelTop = len(lines)
			_, bottom = add(m.picker.PanelView())
		}
		if i == m.focus {
			m.focusTop, m.focusBottom = top, bottom
		}
		m.blocks = append(m.blocks, [2]int{top, bottom})
	}

	top, bottom := add("\n" + m.renderSubmit())
	m.blocks = append(m.blocks, [2]int{top + 1, bottom})
	if m.focus == len(m.fields) {
		m.focusTop, m.focusBottom = top, bottom
	}
	return strings.Join(lines, "\n")
}

func (m FormModel) renderField(i int, f form.Field) string {
	focused := i == m.focus
	label := LabelStyle.Render(strings.ToUpper(m.session.Variant().Label(f)))
	if focused {
		label = FocusedLabelStyle.Render("› " + strings.ToUpper(m.session.Variant().Label(f)))
	}

	var input string
	switch {
	case f == form.FieldCountryCode:
		input = m.picker.TriggerView(focused)
	case f == form.FieldRole:
		role := lipgloss.NewStyle().Foreground(TextColor).Render(form.Roles[m.role])
		if m.role == 0 {
			role = SubtitleStyle.Render(form.Roles[m.role])
		}
		input = "◂ " + role + " ▸"
	case isAreaField(f):
		input = m.area.View()
	default:
		input = m.inputs[i].View()
	}

	block := label + "\n" + input
	if msg := m.session.VisibleError(f); msg != "" {
		block += "\n" + FieldErrorStyle.Render("✗ "+msg)
	}
	return block
}

func (m FormModel) renderSubmit() string {
	if m.session.Outcome() == form.Submitting {
		return m.spinner.View() + " Transmitting..."
	}
	return RenderButton(m.copy.SubmitLabel, m.focus == len(m.fields), m.session.CanSubmit())
}

func (m FormModel) renderSuccess() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		SuccessBoxStyle.Render("✓ "+m.copy.SuccessTitle),
		"",
		lipgloss.NewStyle().Width(m.body.Width-2).Render(m.copy.SuccessBody),
		"",
		RenderButton(m.copy.ResetLabel, true, true),
	)
}

// HandleMouse routes a mouse event at page coordinates (x, y). A left
// click on a field focuses it; on the dial-code trigger it also opens the
// picker, and on the submit button it submits.
func (m FormModel) HandleMouse(msg tea.MouseMsg, x, y int) (FormModel, tea.Cmd) {
	if m.picker.IsOpen() {
		px, py := m.formOrigin()
		if !m.compact() {
			py += m.panelTop - m.body.YOffset
		}
		m.picker = m.picker.HandleMouse(msg, x-px, y-py)
		m.sync()
		return m, nil
	}

	fx, _ := m.formOrigin()
	onInfo := x < fx || m.compact() && m.focus == noFocus

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if onInfo {
			m.info, _ = m.info.Update(msg)
		} else {
			m.body, _ = m.body.Update(msg)
		}
		return m, nil

	case msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || onInfo:
		return m, nil

	case m.alert != "" || m.session.Outcome() == form.Submitting:
		return m, nil

	case m.session.Outcome() == form.Submitted:
		m.reset()
		m.sync()
		return m, nil
	}

	row := y + m.body.YOffset
	for i, b := range m.blocks {
		if row < b[0] || row >= b[1] {
			continue
		}
		var cmds []tea.Cmd
		cmds = append(cmds, m.setFocus(i))
		switch {
		case i == len(m.fields):
			cmds = append(cmds, m.submit())
		case m.fields[i] == form.FieldCountryCode:
			cmds = append(cmds, m.picker.open())
		}
		m.sync()
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

// View renders the page.
func (m FormModel) View() string {
	if m.compact() {
		switch {
		case m.picker.IsOpen():
			return m.picker.PanelView()
		case m.focus == noFocus && m.session.Outcome() == form.NotSubmitted:
			return lipgloss.JoinVertical(lipgloss.Left,
				m.info.View(),
				SubtitleStyle.Render("enter fill in the form"),
			)
		default:
			return m.body.View()
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.info.View(), "  ", m.body.View())
}

// AlertView renders the blocking failure alert.
func (m FormModel) AlertView(width int) string {
	box := ErrorBoxStyle.Width(SafeModalWidth(56, width)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			"✗ "+m.alert,
			"",
			SubtitleStyle.Render("enter / esc to dismiss"),
		),
	)
	return box
}
