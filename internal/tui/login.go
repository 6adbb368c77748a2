package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	loginFooter  = "enter submit · ctrl+n create account · ctrl+c quit"
	signupFooter = "enter submit · ctrl+b back to sign in · ctrl+c quit"

	authFormWidth = 44
	authTimeout   = 30 * time.Second
)

// authValues backs the credential form inputs. The same struct survives a
// failed attempt so the user's entries are not lost.
type authValues struct {
	name     string
	email    string
	password string
}

// authView is the shared state of the sign-in and sign-up views.
type authView struct {
	form       *huh.Form
	vals       *authValues
	submitting bool
	busyText   string
	errMsg     string

	width  int
	height int
}

func (v *authView) setSize(w, h int) {
	v.width = w
	v.height = h
}

func newLoginView() authView {
	vals := &authValues{}
	return authView{
		form:     newLoginForm(vals),
		vals:     vals,
		busyText: "Signing in...",
	}
}

func newLoginForm(v *authValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Value(&v.email).
				Validate(notEmpty("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&v.password).
				Validate(notEmpty("password")),
		),
	).WithWidth(authFormWidth).WithShowHelp(false)
}

func notEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func (a App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		a.login.submitting = false
		if msg.err != nil {
			a.logger.Warn("sign in failed", zap.Error(msg.err))
			a.login.errMsg = authErrorText(msg.err)
			a.login.form = newLoginForm(a.login.vals)
			return a, a.login.form.Init()
		}
		return a.handleAuthSuccess(msg.user)

	case tea.KeyMsg:
		if msg.String() == "ctrl+n" && !a.login.submitting {
			a.logger.Info("navigating to signup")
			a.signup = newSignupView()
			a.signup.setSize(a.width, a.height)
			a.page = pageSignup
			return a, a.signup.form.Init()
		}
	}

	if a.login.submitting {
		return a, nil
	}

	form, cmd := a.login.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.login.form = f
	}

	switch a.login.form.State {
	case huh.StateCompleted:
		a.login.submitting = true
		a.login.errMsg = ""
		creds := api.Credentials{
			Email:    strings.TrimSpace(a.login.vals.email),
			Password: a.login.vals.password,
		}
		return a, signInCmd(a.client, creds)

	case huh.StateAborted:
		return a, tea.Quit
	}

	return a, cmd
}

// signInCmd calls the auth endpoint in the background.
func signInCmd(client *api.Client, creds api.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), authTimeout)
		defer cancel()
		user, err := client.SignIn(ctx, creds)
		return authResultMsg{user: user, err: err}
	}
}

func (v authView) view(title, footer string) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	busyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Expense Tracker · " + title))
	b.WriteString("\n\n")

	if v.submitting {
		b.WriteString(busyStyle.Render(v.busyText))
	} else {
		b.WriteString(v.form.View())
	}

	if v.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(v.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render(footer))

	return centerCard(b.String(), v.width, v.height)
}
