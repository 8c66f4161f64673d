// Package tui implements the interactive terminal rendition of the Orbytrixx
// site.
//
// The TUI is a Bubble Tea program following the Model-Update-View pattern.
// AppModel is the root; it owns one model per page and routes messages to
// the active one.
//
// # Pages
//
//   - Home, About, Why Us: glamour-rendered markdown in a scrolling viewport
//   - Services: carousel of service cards with a detail view and a
//     "start a project" action that opens Contact with the inquiry pre-filled
//   - Careers: open roles next to the application form
//   - Contact: channels next to the inquiry form
//
// An intro splash reveals the wordmark before the first page. It is skipped
// by any key, by configuration, or when the program starts on Contact.
//
// Every screen is wrapped by RenderApplicationContainer: header with the
// application name, version and site, content, and a footer with
// context-sensitive help.
//
// # Forms
//
// FormModel renders a form.Session. The session owns values, validation and
// the submission outcome; the model owns widgets and focus. Moving focus off
// a field marks it touched, so its error shows. Careers submissions run in a
// tea.Cmd with a spinner and finish with submitCompleteMsg; a failure shows
// one blocking alert dismissed with enter or esc.
//
// # Dial-code picker
//
// PickerModel renders a selector.Selector. At or above the compact
// breakpoint it opens as a dropdown under the trigger and focuses its search
// input after selector.FocusDelay; below it the panel is a full-screen sheet
// titled "Select Country" that closes with x or esc. Mouse motion and clicks
// map to Hover, Choose and ClickOutside.
//
// # Key Bindings
//
//   - 1-6, tab, shift+tab: switch pages while no form field has focus
//   - enter: open a form, a service, or the picker
//   - tab / shift+tab inside a form: next / previous field
//   - ctrl+s: submit the focused form
//   - esc: leave the form or close the picker
//   - q, ctrl+c: quit
//
// # Usage Example
//
//	app, err := tui.NewAppModel(tui.Options{Settings: settings, Submitter: client})
//	if err != nil {
//	    return err
//	}
//	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
package tui
