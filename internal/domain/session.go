package domain

import (
	"fmt"

	"github.com/mouse-blink/equate/internal/adapter"
	"github.com/mouse-blink/equate/internal/domain/factors"
	"github.com/mouse-blink/equate/internal/expr"
	m "github.com/mouse-blink/equate/internal/model"
	"github.com/mouse-blink/equate/internal/syntax"
)

const equationFilePerm = 0o644

// Session is one open equation set together with the editing cursor: the
// current line and, inside every line, its selection.
//
// All edits parse their input first; a failed parse leaves the line and its
// selection untouched.
type Session struct {
	set      m.EquationSet
	cur      int
	readOnly bool
	dirty    bool

	fsAdapter adapter.EquationFSAdapter
	history   adapter.HistoryStore
}

// NewSession wraps set. history may be nil to disable revision tracking.
func NewSession(set m.EquationSet, fsAdapter adapter.EquationFSAdapter, history adapter.HistoryStore, readOnly bool) *Session {
	return &Session{
		set:       set,
		readOnly:  readOnly,
		fsAdapter: fsAdapter,
		history:   history,
	}
}

// Path returns the file the session saves to.
func (s *Session) Path() m.Path {
	return s.set.Path
}

// ReadOnly reports whether Save is refused.
func (s *Session) ReadOnly() bool {
	return s.readOnly
}

// Dirty reports whether the set changed since it was loaded or saved.
func (s *Session) Dirty() bool {
	return s.dirty
}

// Lines returns the number of lines in the set.
func (s *Session) Lines() int {
	return len(s.set.Lines)
}

// CurrentLine returns the index of the current line.
func (s *Session) CurrentLine() int {
	return s.cur
}

// SelectLine makes line i current. It fails when i is out of range.
func (s *Session) SelectLine(i int) bool {
	if i < 0 || i >= len(s.set.Lines) {
		return false
	}

	s.cur = i

	return true
}

// Line returns a copy of line i.
func (s *Session) Line(i int) m.Line {
	return s.set.Lines[i]
}

// Selection returns the selection of the current line.
func (s *Session) Selection() expr.Selection {
	if len(s.set.Lines) == 0 {
		return expr.Selection{}
	}

	return s.set.Lines[s.cur].Sel.Clone()
}

// Navigate applies a selection motion to the current line.
func (s *Session) Navigate(motion m.Motion) bool {
	if len(s.set.Lines) == 0 {
		return false
	}

	line := &s.set.Lines[s.cur]

	switch motion {
	case m.MotionOut:
		return line.Sel.MoveOut(line.Expr)
	case m.MotionIn:
		return line.Sel.MoveIn(line.Expr)
	case m.MotionLeft:
		return line.Sel.ShiftLeft(line.Expr)
	case m.MotionRight:
		return line.Sel.ShiftRight(line.Expr)
	case m.MotionExpandLeft:
		return line.Sel.ExpandLeft(line.Expr)
	case m.MotionExpandRight:
		return line.Sel.ExpandRight(line.Expr)
	case m.MotionShrinkLeft:
		return line.Sel.ShrinkLeft(line.Expr)
	case m.MotionShrinkRight:
		return line.Sel.ShrinkRight(line.Expr)
	default:
		return false
	}
}

// Render returns line i in its canonical text form.
func (s *Session) Render(i int) string {
	return expr.Render(s.set.Lines[i].Expr)
}

// Comment returns the comment of line i.
func (s *Session) Comment(i int) string {
	return s.set.Lines[i].Comment
}

// Split renders line i in three parts around its selection.
func (s *Session) Split(i int) (before, highlighted, after string) {
	line := s.set.Lines[i]
	return expr.Split(line.Expr, line.Sel)
}

// Selected returns a copy of the selected operands of the current line.
func (s *Session) Selected() (expr.Expression, error) {
	if len(s.set.Lines) == 0 {
		return nil, ErrNoLine
	}

	line := s.set.Lines[s.cur]

	return expr.Extract(line.Expr, line.Sel), nil
}

// ReplaceSelection parses text and puts it in place of the selection of
// the current line. When the line is a single leaf the whole line is
// replaced.
func (s *Session) ReplaceSelection(text string) error {
	if len(s.set.Lines) == 0 {
		return ErrNoLine
	}

	repl, err := syntax.Parse(text)
	if err != nil {
		return fmt.Errorf("parse replacement: %w", err)
	}

	return s.replace(repl)
}

func (s *Session) replace(repl expr.Expression) error {
	line := &s.set.Lines[s.cur]

	if expr.IsLeaf(line.Expr) {
		line.Expr = repl
		line.Sel = expr.Selection{}

		return s.edited()
	}

	if containsEquality(repl) && !extendsRootEquality(*line, repl) {
		return ErrEqualityBelowRoot
	}

	sel := line.Sel.Clone()
	line.Expr = expr.Replace(line.Expr, &sel, repl)
	line.Sel = sel

	return s.edited()
}

// ReplaceLine parses text as a whole equation and replaces the current line.
// A trailing '#' comment replaces the line's comment.
func (s *Session) ReplaceLine(text string) error {
	if len(s.set.Lines) == 0 {
		return ErrNoLine
	}

	e, comment, err := syntax.ParseWithComment(text)
	if err != nil {
		return fmt.Errorf("parse line: %w", err)
	}

	line := &s.set.Lines[s.cur]
	line.Expr = e
	line.Sel = expr.Selection{}

	if comment != "" {
		line.Comment = comment
	}

	return s.edited()
}

// InsertLine parses text and inserts it after the current line, which then
// becomes the new line.
func (s *Session) InsertLine(text string) error {
	e, comment, err := syntax.ParseWithComment(text)
	if err != nil {
		return fmt.Errorf("parse line: %w", err)
	}

	at := 0
	if len(s.set.Lines) > 0 {
		at = s.cur + 1
	}

	lines := make([]m.Line, 0, len(s.set.Lines)+1)
	lines = append(lines, s.set.Lines[:at]...)
	lines = append(lines, m.NewLine(e, comment))
	lines = append(lines, s.set.Lines[at:]...)

	s.set.Lines = lines
	s.cur = at

	return s.edited()
}

// DeleteLine removes the current line.
func (s *Session) DeleteLine() error {
	if len(s.set.Lines) == 0 {
		return ErrNoLine
	}

	s.set.Lines = append(s.set.Lines[:s.cur], s.set.Lines[s.cur+1:]...)
	if s.cur >= len(s.set.Lines) && s.cur > 0 {
		s.cur--
	}

	s.dirty = true

	return nil
}

// SetComment replaces the comment of the current line.
func (s *Session) SetComment(text string) error {
	if len(s.set.Lines) == 0 {
		return ErrNoLine
	}

	s.set.Lines[s.cur].Comment = text

	return s.edited()
}

// ApplyFactor factors the selection of the current line and replaces it
// with the result.
func (s *Session) ApplyFactor(kind m.FactorKind) error {
	selected, err := s.Selected()
	if err != nil {
		return err
	}

	var rewrite func(expr.Expression) (expr.Expression, bool)

	switch kind {
	case m.FactorLeading:
		rewrite = factors.Leading
	case m.FactorTrailing:
		rewrite = factors.Trailing
	case m.FactorAll:
		rewrite = factors.All
	default:
		return fmt.Errorf("unknown factor kind %q", kind)
	}

	if s.set.Lines[s.cur].Sel.IsRange() {
		relativeToFirst(selected)
	}

	out, ok := rewrite(selected)
	if !ok {
		return fmt.Errorf("%s: %w", kind, ErrNoFactor)
	}

	return s.replace(factors.Normalise(out))
}

// relativeToFirst rewrites an extracted range so its operands are related to
// the first one instead of to the level. Replace gives the result the first
// slot's relation back, so c-a*x-b*x factors to c-(a+b)*x.
func relativeToFirst(e expr.Expression) {
	n, ok := e.(*expr.Node)
	if !ok || !n.Values[0].Inverse {
		return
	}

	for i := range n.Values {
		n.Values[i].Inverse = !n.Values[i].Inverse
	}
}

// extendsRootEquality reports whether repl is a chain of '=' replacing a
// range of the line's top-level equality, where it is spliced in place.
func extendsRootEquality(line m.Line, repl expr.Expression) bool {
	n, ok := repl.(*expr.Node)
	if !ok || n.Operation != expr.Equality {
		return false
	}

	if len(line.Sel.Path) != 0 || !line.Sel.IsRange() || !expr.IsNode(line.Expr, expr.Equality) {
		return false
	}

	for _, se := range n.Values {
		if containsEquality(se.Val) {
			return false
		}
	}

	return true
}

// Save writes the set back to its file.
func (s *Session) Save() error {
	if s.readOnly {
		return ErrReadOnly
	}

	if s.set.Path == "" {
		return ErrNoPath
	}

	if err := s.fsAdapter.WriteFile(s.set.Path, FormatEquations(s.set), equationFilePerm); err != nil {
		return fmt.Errorf("save %s: %w", s.set.Path, err)
	}

	s.dirty = false

	return nil
}

// Revisions returns the stored revisions of the session's file, newest first.
func (s *Session) Revisions(limit int) ([]m.Revision, error) {
	if s.history == nil || s.set.Path == "" {
		return nil, nil
	}

	return s.history.LoadRevisions(s.set.Path, limit)
}

// edited marks the set dirty and records the current line as a revision.
func (s *Session) edited() error {
	s.dirty = true

	if s.history == nil || s.set.Path == "" {
		return nil
	}

	_, err := s.history.SaveRevision(m.Revision{
		Path: s.set.Path,
		Line: s.cur,
		Text: s.set.Lines[s.cur].Text(),
	})
	if err != nil {
		return fmt.Errorf("record revision: %w", err)
	}

	return nil
}
