package tui

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) owns the session: login, logout and expiry
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	appInfo service.ClientAppInfoService
	session *sessionState

	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
	serverInfo    *models.AppBuildInfo
	serverInfoErr error
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, services *service.ClientServices, session *sessionState, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:         ctx,
		auth:        services.AuthService,
		appInfo:     services.AppInfoService,
		session:     session,
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.currentName == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				if r.showBuildInfo {
					return r, r.cmdServerVersion()
				}
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)

	case serverVersionMsg:
		r.serverInfoErr = msg.err
		if msg.err == nil {
			info := msg.info
			r.serverInfo = &info
		}
		return r, nil

	case LoginResult:
		// let the login form reset itself first
		r = r.delegate(msg)
		if msg.Err != nil {
			return r, nil
		}
		r.session.set(msg.Session)
		return r.navigate(NavigateTo{Page: pageDashboard})

	case logoutRequestMsg:
		auth, ctx := r.auth, r.ctx
		return r, func() tea.Msg { return LogoutResult{Err: auth.Logout(ctx)} }

	case LogoutResult:
		r.session.clear()
		return r.navigate(NavigateTo{Page: pageMenu, Payload: LoggedOutNotice{Err: msg.Err}})

	case sessionExpiredMsg:
		r.session.clear()
		auth, ctx := r.auth, r.ctx
		return r, tea.Sequence(
			func() tea.Msg {
				_ = auth.Logout(ctx)
				return nil
			},
			func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: SessionExpiredNotice{}} },
		)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverInfo, r.serverInfoErr)
	}
	if r.current == nil {
		return renderPage("DEVCONNECTOR", "", "")
	}
	return r.current.View()
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = nav.Page

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.current.Init()
}

func (r RootModel) delegate(msg tea.Msg) RootModel {
	if r.current != nil {
		r.current, _ = r.current.Update(msg)
	}
	return r
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	if r.appInfo == nil {
		return nil
	}
	appInfo, ctx := r.appInfo, r.ctx
	return func() tea.Msg {
		info, err := appInfo.ServerVersion(ctx)
		return serverVersionMsg{info: info, err: err}
	}
}
