package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/flightly/internal/state"
)

// Home screen focus slots. The three inputs come first, then the buttons.
const (
	focusFrom = iota
	focusTo
	focusDate
	focusSearch
	focusRoulette
	focusCount
)

var formFields = [3]struct {
	label       string
	field       string
	placeholder string
	limit       int
}{
	{"From", state.FieldFrom, "Departure airport (e.g. LGW)", 8},
	{"To", state.FieldTo, "Arrival airport (e.g. MAD)", 8},
	{"Date", state.FieldDate, "YYYY-MM-DD", 10},
}

// searchForm owns the home screen inputs. Only committed criteria leave it.
type searchForm struct {
	inputs [3]textinput.Model
	err    *state.ValidationError
}

func newSearchForm() searchForm {
	var f searchForm
	for i, fd := range formFields {
		in := textinput.New()
		in.Placeholder = fd.placeholder
		in.CharLimit = fd.limit
		in.Prompt = ""
		in.Width = 30
		f.inputs[i] = in
	}
	return f
}

// focus moves the cursor to slot. Slots past the inputs blur every input.
func (f *searchForm) focus(slot int) tea.Cmd {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == slot {
			cmd = f.inputs[i].Focus()
			continue
		}
		f.inputs[i].Blur()
	}
	return cmd
}

// update forwards key messages to the focused input and everything else
// (cursor blinks) to all inputs.
func (f searchForm) update(msg tea.Msg) (searchForm, tea.Cmd) {
	var cmds []tea.Cmd
	_, isKey := msg.(tea.KeyMsg)
	for i := range f.inputs {
		if isKey && !f.inputs[i].Focused() {
			continue
		}
		var cmd tea.Cmd
		f.inputs[i], cmd = f.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return f, tea.Batch(cmds...)
}

// submit validates the inputs. On failure the error is kept for display and
// the first missing slot is returned so the caller can focus it.
func (f *searchForm) submit() (state.SearchCriteria, int, error) {
	criteria, err := state.NewSearchCriteria(
		f.inputs[focusFrom].Value(),
		f.inputs[focusTo].Value(),
		f.inputs[focusDate].Value(),
	)
	if err != nil {
		var verr *state.ValidationError
		if errors.As(err, &verr) {
			f.err = verr
			return state.SearchCriteria{}, f.firstMissing(), err
		}
		return state.SearchCriteria{}, focusFrom, err
	}
	f.err = nil
	return criteria, -1, nil
}

func (f *searchForm) firstMissing() int {
	if f.err == nil {
		return -1
	}
	for i, fd := range formFields {
		if f.err.Has(fd.field) {
			return i
		}
	}
	return -1
}

// reset clears values and errors.
func (f *searchForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.err = nil
}

func (f searchForm) view(styles Styles, focused int) string {
	var b strings.Builder
	for i, fd := range formFields {
		label := styles.MutedText
		if i == focused {
			label = styles.HighlightText
		}
		marker := "  "
		if f.err != nil && f.err.Has(fd.field) {
			marker = styles.DangerText.Render("* ")
		}
		b.WriteString(marker)
		b.WriteString(label.Width(6).Render(fd.label))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(capitalize(f.err.Error())))
		b.WriteString("\n")
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
