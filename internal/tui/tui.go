package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/dev-connector/internal/logger"
	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil services")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run restores the saved session, if any, and runs the program until the
// user quits. A valid session opens the dashboard, otherwise the menu.
func (t *TUI) Run(ctx context.Context) error {
	session := &sessionState{}
	startPage, notice := t.startPage(ctx, session)
	root := t.newRoot(ctx, session, startPage)
	if notice != nil {
		root.pages[pageMenu].Update(notice)
	}

	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

// startPage picks the first page and an optional notice for the menu.
func (t *TUI) startPage(ctx context.Context, session *sessionState) (string, tea.Msg) {
	restored, err := t.services.AuthService.Restore(ctx)
	switch {
	case err == nil:
		session.set(restored)
		t.logger.Info().Str("user_id", restored.User.ID).Msg("restored saved session")
		return pageDashboard, nil
	case errors.Is(err, service.ErrNotLoggedIn):
		return pageMenu, nil
	case errors.Is(err, service.ErrSessionExpired):
		return pageMenu, SessionExpiredNotice{}
	default:
		t.logger.Warn().Err(err).Msg("saved session was not restored")
		return pageMenu, nil
	}
}

func (t *TUI) newRoot(ctx context.Context, session *sessionState, startPage string) RootModel {
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, t.services.AuthService),
		pageRegister:  NewRegisterModel(ctx, t.services.AuthService),
		pageDashboard: NewDashboardModel(ctx, t.services.ProfileService, session),
		pagePosts:     NewPostsModel(ctx, t.services.PostService, session),
	}
	return NewRootModel(ctx, t.services, session, pages, startPage, t.buildInfo)
}
