package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// registerFields are the keys of the form inputs, in display order. They are
// also the keys of the server's field-keyed error body.
var registerFields = []string{
	validators.FieldName,
	validators.FieldEmail,
	validators.FieldPassword,
	validators.FieldPassword2,
}

var registerLabels = map[string]string{
	validators.FieldName:      "Name",
	validators.FieldEmail:     "Email",
	validators.FieldPassword:  "Password",
	validators.FieldPassword2: "Confirm password",
}

// RegisterModel is the Bubble Tea model for the registration screen. It renders four
// text inputs (name, email, password and confirmation) and sends them to the API
// exactly as typed: the form does no validation of its own. When the server
// answers with a field-keyed error body, each message is shown under its field.
// On success the form is cleared and the menu shows a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	spinner    spinner.Model
	fieldErrs  validators.FieldErrors
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]. The name field receives focus
// immediately; both password fields use masked echo.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	fields := make([]textinput.Model, len(registerFields))
	for i, name := range registerFields {
		fields[i] = textinput.New()
		fields[i].Placeholder = strings.ToLower(registerLabels[name])
		fields[i].Width = 40
		if name == validators.FieldPassword || name == validators.FieldPassword2 {
			fields[i].EchoMode = textinput.EchoPassword
			fields[i].EchoCharacter = '*'
		}
	}
	fields[0].Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &RegisterModel{
		ctx:     ctx,
		auth:    auth,
		inputs:  fields,
		spinner: s,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] clears submitting state; on error, stores the field
//     errors or a generic message; on success, resets the form and
//     navigates to the menu.
//   - esc              cancels and navigates back to the menu.
//   - tab, down        move focus to the next input.
//   - shift+tab, up    move focus to the previous input.
//   - enter            moves to the next input, or submits on the last one.
//   - ctrl+s           submits from any input.
//
// All other key events are forwarded to the focused input widget.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RegisterResult:
		m.submitting = false
		if msg.Err != nil {
			m.fieldErrs, m.errMsg = splitFormError(msg.Err)
			return m, nil
		}

		m.fieldErrs, m.errMsg = nil, ""
		m.resetForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    pageMenu,
				Payload: RegisterSuccessNotice{Email: msg.User.Email},
			}
		}
	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu)
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				m.focusNext()
				return m, nil
			}
			return m, m.submit()
		case "ctrl+s":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Each field's server error is rendered under
// that field only.
func (m *RegisterModel) View() string {
	var b strings.Builder
	writeFormHeader(&b)
	for i, name := range registerFields {
		writeFormRow(&b, registerLabels[name], m.inputs[i], m.fieldErrs[name])
	}

	if m.submitting {
		b.WriteString("\n[Sign up " + m.spinner.View() + "]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: next/submit │ ctrl+s: submit")
}

func (m *RegisterModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.errMsg = ""
	m.submitting = true
	return tea.Batch(m.spinner.Tick, m.cmdRegister(m.request()))
}

// request collects the inputs untouched.
func (m *RegisterModel) request() models.RegisterRequest {
	return models.RegisterRequest{
		Name:      m.inputs[0].Value(),
		Email:     m.inputs[1].Value(),
		Password:  m.inputs[2].Value(),
		Password2: m.inputs[3].Value(),
	}
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Register(ctx, req)
		return RegisterResult{User: user, Err: err}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
