package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// DashboardModel shows the logged-in user's profile: a header with the
// handle and status, then the experience and education sections. tab
// switches the section that receives up/down and d/delete.
type DashboardModel struct {
	ctx      context.Context
	profiles service.ClientProfileService
	session  *sessionState

	profile   *models.Profile
	noProfile bool
	loading   bool
	spinner   spinner.Model

	experience entryListModel
	education  entryListModel

	status string
	errMsg string
}

func NewDashboardModel(ctx context.Context, profiles service.ClientProfileService, session *sessionState) *DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &DashboardModel{
		ctx:        ctx,
		profiles:   profiles,
		session:    session,
		spinner:    s,
		experience: newExperienceList(ctx, profiles),
		education:  newEducationList(ctx, profiles),
	}
	m.experience.focused = true
	return m
}

func (m *DashboardModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoadProfile())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if sessionExpired(msg.err) {
				return m, expireSession
			}
			if errors.Is(msg.err, store.ErrProfileNotFound) {
				m.profile = nil
				m.noProfile = true
				m.supply(models.Profile{})
				return m, nil
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.noProfile = false
		m.errMsg = ""
		m.supply(msg.profile)
		return m, nil

	case entryDeletedMsg:
		if msg.err != nil {
			m.listFor(msg.kind).deleteFailed(msg.id)
			if sessionExpired(msg.err) {
				return m, expireSession
			}
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Deleted " + msg.kind.String() + " entry"
		m.supply(msg.profile)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		m.experience.focused = !m.experience.focused
		m.education.focused = !m.education.focused
		return m, nil
	case key.Matches(keyMsg, keys.posts):
		return m, navigate(pagePosts)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.Init()
	case key.Matches(keyMsg, keys.copy):
		if m.profile == nil {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := writeClipboard(m.profile.Handle); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Handle copied"
		return m, nil
	case key.Matches(keyMsg, keys.logout):
		return m, requestLogout
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.experience.focused {
		m.experience, cmd = m.experience.Update(msg)
	} else {
		m.education, cmd = m.education.Update(msg)
	}
	return m, cmd
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	user := m.session.get().User
	b.WriteString("Welcome ")
	b.WriteString(valueOrDash(user.Name))
	b.WriteString("\n\n")

	switch {
	case m.loading && m.profile == nil:
		b.WriteString(m.spinner.View() + " Loading profile...\n")
	case m.noProfile:
		b.WriteString("You have not yet set up a profile.\n")
	case m.profile != nil:
		writeProfileHeader(&b, *m.profile)
		b.WriteString("\n")
		b.WriteString(sectionTitle("Experience Credentials", m.experience.focused))
		b.WriteString(m.experience.View())
		b.WriteString("\n\n")
		b.WriteString(sectionTitle("Education Credentials", m.education.focused))
		b.WriteString(m.education.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorLine(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("DASHBOARD", strings.TrimRight(b.String(), "\n"),
		"tab: section │ ↑/↓: move │ d: delete │ p: posts │ y: copy handle │ r: refresh │ o: log out │ q: quit")
}

// supply re-renders both sections from profile.
func (m *DashboardModel) supply(profile models.Profile) {
	if profile.ID != "" || profile.Handle != "" {
		p := profile
		m.profile = &p
	}
	m.experience.setRows(experienceRows(profile.Experience))
	m.education.setRows(educationRows(profile.Education))
}

func (m *DashboardModel) listFor(kind entryKind) *entryListModel {
	if kind == entryEducation {
		return &m.education
	}
	return &m.experience
}

func (m *DashboardModel) cmdLoadProfile() tea.Cmd {
	ctx, profiles := m.ctx, m.profiles
	return func() tea.Msg {
		profile, err := profiles.CurrentProfile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func writeProfileHeader(b *strings.Builder, p models.Profile) {
	b.WriteString(titleStyle.Render("@" + p.Handle))
	b.WriteString("  ")
	b.WriteString(p.Status)
	if p.Company != "" {
		b.WriteString(" at ")
		b.WriteString(p.Company)
	}
	b.WriteString("\n")
	if p.Location != "" {
		b.WriteString(mutedStyle.Render(p.Location))
		b.WriteString("\n")
	}
	if len(p.Skills) > 0 {
		b.WriteString("Skills: ")
		b.WriteString(strings.Join(p.Skills, ", "))
		b.WriteString("\n")
	}
}

func sectionTitle(title string, focused bool) string {
	if focused {
		return selectedStyle.Render("▸ "+title) + "\n"
	}
	return "  " + title + "\n"
}

type logoutRequestMsg struct{}

type sessionExpiredMsg struct{}

func requestLogout() tea.Msg { return logoutRequestMsg{} }

func expireSession() tea.Msg { return sessionExpiredMsg{} }
