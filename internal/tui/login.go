// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/validators"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two text inputs
// (email and password) and dispatches an async login command on form submission.
// On success a [LoginResult] message is produced and handled by [RootModel], which
// opens the dashboard.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	spinner    spinner.Model
	fieldErrs  validators.FieldErrors
	errMsg     string
}

// NewLoginModel creates a [LoginModel] with pre-configured email and password inputs.
// The email field receives focus immediately; the password field uses masked echo.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &LoginModel{
		ctx:     ctx,
		auth:    auth,
		inputs:  []textinput.Model{emailInput, passwordInput},
		spinner: s,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; on error, stores the field
//     errors or a generic message.
//   - esc            cancels and navigates back to the menu.
//   - tab/shift+tab  move focus between the inputs.
//   - enter          dispatches the async login command.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		m.fieldErrs, m.errMsg = splitFormError(msg.Err)
		if msg.Err == nil {
			m.inputs[1].SetValue("")
		}
		return m, nil
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
			m.fieldErrs = nil
			return m, navigate(pageMenu)
		case "tab", "down":
			m.focusNext()
			return m, nil
		case "shift+tab", "up":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			m.errMsg = ""
			m.fieldErrs = nil
			m.submitting = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLogin(strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value()))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	writeFormHeader(&b)
	writeFormRow(&b, "Email", m.inputs[0], m.fieldErrs[validators.FieldEmail])
	writeFormRow(&b, "Password", m.inputs[1], m.fieldErrs[validators.FieldPassword])

	if m.submitting {
		b.WriteString("\n[Log in " + m.spinner.View() + "]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.Login(ctx, models.LoginRequest{
			Email:    email,
			Password: pass,
		})

		return LoginResult{Session: session, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

// splitFormError separates the per-field errors reported by the server from
// any other failure, which is returned as a single message.
func splitFormError(err error) (validators.FieldErrors, string) {
	if err == nil {
		return nil, ""
	}
	var fe validators.FieldErrors
	if errors.As(err, &fe) {
		return fe, ""
	}
	return nil, humanizeServerUnavailableError(err)
}

func writeFormHeader(b *strings.Builder) {
	b.WriteString(padLabel("Field"))
	b.WriteString("│ Value\n")
	b.WriteString(strings.Repeat("─", formLabelWidth))
	b.WriteString("┼────────────────────────────────────────────\n")
}

// writeFormRow renders one labelled input and, under it, the field's error.
func writeFormRow(b *strings.Builder, label string, input textinput.Model, fieldErr string) {
	b.WriteString(padLabel(label))
	b.WriteString("│ [")
	b.WriteString(input.View())
	b.WriteString("]\n")
	if fieldErr != "" {
		b.WriteString(padLabel(""))
		b.WriteString("│ ")
		b.WriteString(errorStyle.Render(fieldErr))
		b.WriteString("\n")
	}
}

const formLabelWidth = 18

func padLabel(label string) string {
	if len(label) >= formLabelWidth {
		return label + " "
	}
	return label + strings.Repeat(" ", formLabelWidth-len(label))
}
