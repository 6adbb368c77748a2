package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/api"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/cli"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/expense"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/tui/components"
	"github.com/Pradnyasurya/Expense-Tracker-Frontend/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	fetchTimeout    = 30 * time.Second
	maxContentWidth = 100
	dashOverhead    = 12 // header + cards + table chrome + status bar
)

// expensesMsg is sent when a list fetch completes. reqID ties the response
// to the fetch that issued it so stale responses can be dropped.
type expensesMsg struct {
	reqID int
	list  []expense.Expense
	err   error
}

// expenseAddedMsg is sent when a create request completes.
type expenseAddedMsg struct {
	err error
}

// dashState holds everything the dashboard view owns: the fetched list,
// loading and error flags, and the add-expense modal.
type dashState struct {
	userID   string
	currency string

	width  int
	height int

	loading bool
	errMsg  string
	reqID   int

	list   []expense.Expense
	scroll int

	spin spinner.Model

	showAdd    bool
	addForm    *huh.Form
	draft      *expense.Draft
	addErr     string
	submitting bool
}

// newDashState builds a dashboard for the given user, already in its
// loading state for request #1.
func newDashState(userID, currency string) dashState {
	if currency == "" {
		currency = expense.DefaultCurrency
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	draft := expense.DefaultDraft(currency)

	return dashState{
		userID:   userID,
		currency: currency,
		loading:  true,
		reqID:    1,
		spin:     sp,
		draft:    &draft,
	}
}

func (d *dashState) setSize(w, h int) {
	d.width = w
	d.height = h
}

// startFetch returns the command for the fetch identified by the current
// reqID. Callers bump reqID (and set loading) before invoking it.
func (d dashState) startFetch(client *api.Client) tea.Cmd {
	return tea.Batch(fetchExpensesCmd(client, d.userID, d.reqID), d.spin.Tick)
}

// fetchExpensesCmd loads the user's expense list in the background.
func fetchExpensesCmd(client *api.Client, userID string, reqID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		list, err := client.GetExpenses(ctx, userID)
		return expensesMsg{reqID: reqID, list: list, err: err}
	}
}

// addExpenseCmd submits a new expense in the background.
func addExpenseCmd(client *api.Client, e expense.Expense) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		return expenseAddedMsg{err: client.AddExpense(ctx, e)}
	}
}

func (a App) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := &a.dash

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if d.loading || d.submitting {
			var cmd tea.Cmd
			d.spin, cmd = d.spin.Update(msg)
			return a, cmd
		}
		return a, nil

	case expensesMsg:
		if msg.reqID != d.reqID {
			// Result of a superseded fetch; only the newest request counts.
			return a, nil
		}
		d.loading = false
		if msg.err != nil {
			a.logger.Error("loading expenses failed", zap.Error(msg.err))
			d.errMsg = "Failed to load expenses"
			return a, nil
		}
		d.errMsg = ""
		d.list = msg.list
		d.scroll = 0
		return a, nil

	case expenseAddedMsg:
		d.submitting = false
		if msg.err != nil {
			// Leave the modal open with the entered values intact.
			a.logger.Error("adding expense failed", zap.Error(msg.err))
			d.addErr = addErrorText(msg.err)
			d.addForm = newAddForm(d.draft)
			return a, d.addForm.Init()
		}
		a.logger.Info("expense added", zap.String("user_id", d.userID))
		d.showAdd = false
		d.addForm = nil
		*d.draft = expense.DefaultDraft(d.currency)
		// Refetch: the server's list is the authoritative one.
		d.reqID++
		d.loading = true
		return a, d.startFetch(a.client)

	case tea.KeyMsg:
		if d.showAdd {
			if msg.String() == "esc" && !d.submitting {
				// Cancel: close the modal and reset the draft.
				d.showAdd = false
				d.addForm = nil
				*d.draft = expense.DefaultDraft(d.currency)
				return a, nil
			}
			return a.updateAddForm(msg)
		}

		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "ctrl+l":
			return a.handleLogout()
		case "a":
			if d.loading || d.errMsg != "" {
				return a, nil
			}
			d.showAdd = true
			d.addErr = ""
			d.addForm = newAddForm(d.draft)
			return a, d.addForm.Init()
		case "r":
			if !d.loading {
				d.reqID++
				d.loading = true
				d.errMsg = ""
				return a, d.startFetch(a.client)
			}
		case "j", "down":
			if d.scroll < len(d.list)-1 {
				d.scroll++
			}
		case "k", "up":
			if d.scroll > 0 {
				d.scroll--
			}
		case "g":
			d.scroll = 0
		}
		return a, nil
	}

	// Forward everything else (cursor blinks, form ticks) to the open modal.
	if d.showAdd && d.addForm != nil {
		return a.updateAddForm(msg)
	}
	return a, nil
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	d := &a.dash

	if d.submitting {
		return a, nil
	}

	form, cmd := d.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.addForm = f
	}

	switch d.addForm.State {
	case huh.StateCompleted:
		e, err := d.draft.Build(d.userID)
		if err != nil {
			d.addErr = err.Error()
			d.addForm = newAddForm(d.draft)
			return a, d.addForm.Init()
		}
		d.submitting = true
		d.addErr = ""
		return a, tea.Batch(addExpenseCmd(a.client, e), d.spin.Tick)

	case huh.StateAborted:
		// Cancelled: close the modal and reset the draft.
		d.showAdd = false
		d.addForm = nil
		*d.draft = expense.DefaultDraft(d.currency)
		return a, nil
	}

	return a, cmd
}

// newAddForm builds the add-expense modal form. Values point into the
// draft, so a failed submission keeps whatever the user typed.
func newAddForm(d *expense.Draft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Merchant").
				Value(&d.Merchant).
				Validate(notEmpty("merchant")),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&d.Amount).
				Validate(expense.ValidateAmount),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&d.CreatedAt).
				Validate(validDraftDate),
			huh.NewInput().
				Title("Currency").
				Placeholder(expense.DefaultCurrency).
				Value(&d.Currency),
		),
	).WithWidth(authFormWidth).WithShowHelp(false)
}

func validDraftDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}

// addErrorText converts a create failure into the line shown in the modal.
func addErrorText(err error) string {
	var he *api.HTTPError
	if errors.As(err, &he) && he.Message != "" {
		return "Could not add expense: " + he.Message
	}
	return "Could not add expense. Please try again."
}

// ─── Rendering ──────────────────────────────────────────────────

func (d dashState) view() string {
	t := theme.Active
	w, h := d.width, d.height

	cw := w
	if cw > maxContentWidth {
		cw = maxContentWidth
	}

	header := d.renderHeader(w)
	statusBar := components.RenderStatusBar(w,
		"[a]dd  [r]efresh  [j/k]scroll  [ctrl+l]ogout  [q]uit",
		"user: "+d.userID)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 3 {
		contentH = 3
	}

	// Transient states (loading, error, modal) are centered; the summary
	// and table pin to the top.
	var content string
	vpos := lipgloss.Center
	switch {
	case d.showAdd:
		content = d.renderAddModal()
	case d.loading:
		content = lipgloss.NewStyle().Foreground(t.TextMuted).
			Render(d.spin.View() + " Loading expenses...")
	case d.errMsg != "":
		content = lipgloss.NewStyle().Foreground(t.Red).Render(d.errMsg)
	default:
		content = d.renderSummary(cw) + "\n" + d.renderList(cw, contentH)
		vpos = lipgloss.Top
	}

	content = lipgloss.Place(w, contentH, lipgloss.Center, vpos, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (d dashState) renderHeader(w int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	rowStyle := lipgloss.NewStyle().Width(w)

	return rowStyle.Render(titleStyle.Render(" ◈ Expense Tracker")) + "\n"
}

// renderSummary shows the aggregate cards. Figures are recomputed from the
// current list on every render.
func (d dashState) renderSummary(cw int) string {
	s := expense.Summarize(d.list)

	cards := []struct{ Label, Value string }{
		{"Total Expenses", expense.FormatMoney(s.Total, d.currency)},
		{"Transactions", cli.FormatNumber(int64(s.Count))},
		{"Average Expense", expense.FormatMoney(s.Average, d.currency)},
	}
	return components.MetricCardRow(cards, cw)
}

func (d dashState) renderList(cw, contentH int) string {
	t := theme.Active

	if len(d.list) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No expenses yet. Press 'a' to add your first one.")
		return components.ContentCard("Recent Expenses", empty, cw)
	}

	inner := components.CardInnerWidth(cw)

	// Fixed-width columns for amount/date/badge, merchant takes the rest.
	amountW := 18
	dateW := 14
	badgeW := 7
	merchantW := inner - amountW - dateW - badgeW
	if merchantW < 10 {
		merchantW = 10
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextDim).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(headerStyle.Render(
		cli.PadRight("MERCHANT", merchantW) +
			cli.PadRight("AMOUNT", amountW) +
			cli.PadRight("DATE", dateW) +
			"CURRENCY"))
	b.WriteString("\n")

	visible := contentH - dashOverhead
	if visible < 1 {
		visible = 1
	}

	start := d.scroll
	if start > len(d.list)-1 {
		start = len(d.list) - 1
	}
	end := start + visible
	if end > len(d.list) {
		end = len(d.list)
	}

	for _, e := range d.list[start:end] {
		code := expense.CurrencyOrDefault(e.Currency)
		b.WriteString(rowStyle.Render(cli.PadRight(expense.MerchantOrNA(e.Merchant), merchantW)))
		b.WriteString(rowStyle.Render(cli.PadRight(expense.FormatMoney(e.Amount, code), amountW)))
		b.WriteString(dateStyle.Render(cli.PadRight(expense.FormatDate(e.CreatedAt), dateW)))
		b.WriteString(components.Badge(code))
		b.WriteString("\n")
	}

	if end < len(d.list) {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
			Render(cli.FormatNumber(int64(len(d.list)-end)) + " more..."))
	}

	return components.ContentCard("Recent Expenses", strings.TrimRight(b.String(), "\n"), cw)
}

func (d dashState) renderAddModal() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)
	busyStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Add Expense"))
	b.WriteString("\n\n")

	if d.submitting {
		b.WriteString(busyStyle.Render(d.spin.View() + " Saving..."))
	} else if d.addForm != nil {
		b.WriteString(d.addForm.View())
	}

	if d.addErr != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(d.addErr))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(b.String())
}
