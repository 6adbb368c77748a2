// Package tui implements the interactive expense-tracker client: the
// sign-in and sign-up views and the expense dashboard.
package tui

import (
	"errors"
	"fmt"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/config"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/session"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// page identifies which of the three views is active. Using a closed enum
// instead of a string tag keeps invalid pages unrepresentable.
type page int

const (
	pageLogin page = iota
	pageSignup
	pageDashboard
)

// authResultMsg is sent when a sign-in or sign-up request completes.
type authResultMsg struct {
	user api.UserData
	err  error
}

// App is the root Bubble Tea model. It owns the navigation state and the
// current user; each view manages its own form and fetch state below it.
type App struct {
	client   *api.Client
	sessions session.Store
	logger   *zap.Logger
	currency string

	page page
	user *api.UserData

	width  int
	height int

	login  authView
	signup authView
	dash   dashState
}

const minTerminalWidth = 60

// NewApp creates the root model. The starting page is login unless session
// resumption is enabled and a persisted login exists.
func NewApp(client *api.Client, sessions session.Store, logger *zap.Logger, cfg config.Config) App {
	a := App{
		client:   client,
		sessions: sessions,
		logger:   logger,
		currency: cfg.General.DefaultCurrency,
		page:     pageLogin,
		login:    newLoginView(),
	}

	if cfg.General.ResumeSession && session.HasLogin(sessions) {
		uid, _ := session.UserID(sessions)
		tok, _ := sessions.Get(session.KeyAccessToken)
		a.user = &api.UserData{UserID: uid, AccessToken: tok}
		a.page = pageDashboard
		a.dash = newDashState(uid, a.currency)
		logger.Info("resuming persisted session", zap.String("user_id", uid))
	}

	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.page == pageDashboard {
		return a.dash.startFetch(a.client)
	}
	return a.login.form.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.login.setSize(msg.Width, msg.Height)
		a.signup.setSize(msg.Width, msg.Height)
		a.dash.setSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	switch a.page {
	case pageLogin:
		return a.updateLogin(msg)
	case pageSignup:
		return a.updateSignup(msg)
	default:
		return a.updateDashboard(msg)
	}
}

// handleAuthSuccess carries the returned user into session state and enters
// the dashboard.
func (a App) handleAuthSuccess(user api.UserData) (tea.Model, tea.Cmd) {
	if err := session.SaveLogin(a.sessions, user.AccessToken, user.UserID); err != nil {
		// Storage unavailable degrades silently: the session just won't
		// survive a restart.
		a.logger.Warn("persisting session failed", zap.Error(err))
	}

	a.logger.Info("auth successful", zap.String("user_id", user.UserID))

	u := user
	a.user = &u
	a.page = pageDashboard
	a.dash = newDashState(user.UserID, a.currency)
	a.dash.setSize(a.width, a.height)
	return a, a.dash.startFetch(a.client)
}

// handleLogout clears both session keys, discards the in-memory user, and
// returns to the login view.
func (a App) handleLogout() (tea.Model, tea.Cmd) {
	if err := a.sessions.Clear(); err != nil {
		a.logger.Warn("clearing session failed", zap.Error(err))
	}

	a.logger.Info("logged out")

	a.user = nil
	a.page = pageLogin
	a.login = newLoginView()
	a.login.setSize(a.width, a.height)
	return a, a.login.form.Init()
}

// authErrorText converts an auth failure into the line shown under the form.
func authErrorText(err error) string {
	if errors.Is(err, api.ErrUnauthorized) {
		return "Invalid email or password"
	}
	var he *api.HTTPError
	if errors.As(err, &he) && he.Message != "" {
		return he.Message
	}
	return "Something went wrong. Please try again."
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols, need %d)\n", a.width, minTerminalWidth)
	}

	switch a.page {
	case pageLogin:
		return a.login.view("Sign In", loginFooter)
	case pageSignup:
		return a.signup.view("Create Account", signupFooter)
	default:
		return a.dash.view()
	}
}

// centerCard places a bordered card in the middle of the screen.
func centerCard(content string, w, h int) string {
	t := theme.Active

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(content)

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}
