package repl

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/acdc/foundation/acdc"
	mdwerror "github.com/msto63/acdc/foundation/core/error"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

func newTestEngine(t *testing.T) *acdc.Engine {
	t.Helper()
	eng, err := acdc.New(acdc.Options{Logger: mdwlog.Nop()})
	if err != nil {
		t.Fatalf("acdc.New() error = %v", err)
	}
	return eng
}

func TestSessionPersistsDeclarations(t *testing.T) {
	s := NewSession(newTestEngine(t), mdwlog.Nop())

	steps := []struct {
		input   string
		ok      bool
		code    string
		printed []int64
	}{
		{"ia", true, "0\nsa\n", nil},
		{"a = 3 + 4 * 2", true, "3\n4\n2\n*\n+\nsa\n", nil},
		{"pa", true, "la\np\n", []int64{11}},
		{"ia", false, "", nil},
		{"b = 1", false, "", nil},
		{"a = a / 0", false, "", nil},
		{"pa", true, "la\np\n", []int64{11}},
	}

	for i, step := range steps {
		e := s.Submit(step.input)
		if e.Line != i+1 {
			t.Errorf("step %d: Line = %d, want %d", i, e.Line, i+1)
		}
		if e.OK() != step.ok {
			t.Fatalf("step %d (%q): OK() = %v, want %v (err %v)", i, step.input, e.OK(), step.ok, e.Err)
		}
		if !step.ok {
			if e.Diagnostic == "" {
				t.Errorf("step %d: Diagnostic is empty", i)
			}
			continue
		}
		if e.Code != step.code {
			t.Errorf("step %d: Code = %q, want %q", i, e.Code, step.code)
		}
		if len(e.Printed) != len(step.printed) || (len(e.Printed) > 0 && e.Printed[0] != step.printed[0]) {
			t.Errorf("step %d: Printed = %v, want %v", i, e.Printed, step.printed)
		}
	}

	if got := s.Symbols(); len(got) != 1 || got[0] != "a" {
		t.Errorf("Symbols() = %v, want [a]", got)
	}
	if v, ok := s.Value("a"); !ok || v != 11 {
		t.Errorf("Value(a) = %d, %v, want 11, true", v, ok)
	}
}

func TestSessionErrors(t *testing.T) {
	s := NewSession(newTestEngine(t), mdwlog.Nop())

	e := s.Submit("a=01")
	if !mdwerror.HasCode(e.Err, mdwerror.CodeACDCLexical) {
		t.Errorf("Err = %v, want code %s", e.Err, mdwerror.CodeACDCLexical)
	}
	if !strings.HasSuffix(e.Diagnostic, "\n  a=01\n    ^") {
		t.Errorf("Diagnostic = %q", e.Diagnostic)
	}

	e = s.Submit("pz")
	if !mdwerror.HasCode(e.Err, mdwerror.CodeACDCUndeclared) {
		t.Errorf("Err = %v, want code %s", e.Err, mdwerror.CodeACDCUndeclared)
	}
	if !strings.HasSuffix(e.Diagnostic, "\n  pz\n  ^") {
		t.Errorf("Diagnostic = %q", e.Diagnostic)
	}
}

func typeLine(m Model, line string) Model {
	m.input.SetValue(line)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model)
}

func press(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func TestModelSubmit(t *testing.T) {
	m := NewModel(newTestEngine(t), mdwlog.Nop())

	m = typeLine(m, "ia")
	m = typeLine(m, "   ")
	m = typeLine(m, "pa")

	entries := m.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[1].AST != "pa" || len(entries[1].Printed) != 1 || entries[1].Printed[0] != 0 {
		t.Errorf("entry = %+v", entries[1])
	}
	if m.input.Value() != "" {
		t.Errorf("input = %q, want empty after enter", m.input.Value())
	}

	view := m.View()
	for _, want := range []string{"ACDC REPL", "[1] ia", "[2] pa", "=> 0"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelHistory(t *testing.T) {
	m := NewModel(newTestEngine(t), mdwlog.Nop())
	m = typeLine(m, "ia")
	m = typeLine(m, "a = 1")
	m.input.SetValue("pa")

	steps := []struct {
		key  tea.KeyType
		want string
	}{
		{tea.KeyUp, "a = 1"},
		{tea.KeyUp, "ia"},
		{tea.KeyUp, "ia"},
		{tea.KeyDown, "a = 1"},
		{tea.KeyDown, "pa"},
		{tea.KeyDown, "pa"},
	}

	for i, step := range steps {
		m = press(m, step.key)
		if got := m.input.Value(); got != step.want {
			t.Errorf("step %d: input = %q, want %q", i, got, step.want)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newTestEngine(t), mdwlog.Nop())

	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("Update(%v) cmd = nil, want quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("Update(%v) did not quit", k)
		}
	}
}
