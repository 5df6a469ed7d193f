package board

import (
	"sync"

	"whiteboard-server/models"
	"whiteboard-server/utils"
)

type Tool int

const (
	ToolSelect Tool = iota
	ToolRectangle
	ToolText
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeDrawing
	ModeEditing
)

// Defaults applied to shapes committed by the board itself.
const (
	PlaceholderText = "Text"
	defaultRectFill = "blue"
	defaultTextFill = "black"
	defaultFontSize = 20.0
)

// DraftRect is an in-progress rectangle anchored at the first pointer-down.
// DX/DY are signed deltas and may be negative until normalized at commit.
type DraftRect struct {
	AnchorX, AnchorY float64
	DX, DY           float64
}

// Normalized folds negative deltas into an adjusted origin with positive
// extents.
func (d DraftRect) Normalized() (x, y, w, h float64) {
	x, y, w, h = d.AnchorX, d.AnchorY, d.DX, d.DY
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return x, y, w, h
}

// Session is the client-side interaction state machine for one canvas.
// Pointer and keyboard events mutate it synchronously and may emit mutation
// intents; network outcomes come back through Complete. Creates become
// visible only when the server confirms them (the server id is
// authoritative); updates and deletes apply optimistically and roll back on
// failure.
type Session struct {
	mu       sync.Mutex
	canvasID string

	tool Tool
	mode Mode

	elements  []models.Element
	selection string

	draft *DraftRect

	editTarget string // element being edited; empty while its create is in flight
	editIntent string // correlation id of that in-flight create
	editDraft  string

	pending map[string]*pendingIntent
}

func NewSession(canvasID string, elements []models.Element) *Session {
	return &Session{
		canvasID: canvasID,
		tool:     ToolSelect,
		elements: append([]models.Element{}, elements...),
		pending:  make(map[string]*pendingIntent),
	}
}

// SetTool switches the active tool. Moving to the rectangle tool drops any
// selection and discards an open text edit.
func (s *Session) SetTool(t Tool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tool = t
	if t == ToolRectangle {
		s.selection = ""
		s.discardEdit()
	}
}

// PointerDown drives the per-tool transitions. It may emit up to two
// intents: a commit of an interrupted text edit, then the new action.
func (s *Session) PointerDown(x, y float64) []Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	var intents []Intent

	switch s.tool {
	case ToolRectangle:
		s.selection = ""
		s.discardEdit()
		s.mode = ModeDrawing
		s.draft = &DraftRect{AnchorX: x, AnchorY: y}

	case ToolText:
		s.selection = ""
		if in := s.commitEditLocked(); in != nil {
			intents = append(intents, *in)
		}
		intents = append(intents, s.beginTextElement(x, y))

	case ToolSelect:
		hit := hitTest(s.elements, x, y)
		if hit == nil {
			s.selection = ""
			if in := s.commitEditLocked(); in != nil {
				intents = append(intents, *in)
			}
			return intents
		}
		if s.mode == ModeEditing && s.editTarget != hit.ElementID {
			if in := s.commitEditLocked(); in != nil {
				intents = append(intents, *in)
			}
		}
		s.selection = hit.ElementID
	}
	return intents
}

// PointerMove resizes the draft rectangle while drawing.
func (s *Session) PointerMove(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeDrawing || s.draft == nil {
		return
	}
	s.draft.DX = x - s.draft.AnchorX
	s.draft.DY = y - s.draft.AnchorY
}

// PointerUp commits the draft rectangle when it has area, discards it
// otherwise, and always returns to idle.
func (s *Session) PointerUp(x, y float64) []Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeDrawing || s.draft == nil {
		return nil
	}
	s.draft.DX = x - s.draft.AnchorX
	s.draft.DY = y - s.draft.AnchorY

	nx, ny, nw, nh := s.draft.Normalized()
	s.draft = nil
	s.mode = ModeIdle

	if nw == 0 || nh == 0 {
		return nil
	}

	fill := defaultRectFill
	intent := Intent{
		ID:       utils.NextIntentID(),
		Kind:     IntentCreate,
		CanvasID: s.canvasID,
		Create: models.ElementInput{
			Type:   models.ElementRectangle,
			X:      &nx,
			Y:      &ny,
			Width:  &nw,
			Height: &nh,
			Fill:   fill,
		},
	}
	s.pending[intent.ID] = &pendingIntent{kind: IntentCreate}
	return []Intent{intent}
}

// DoubleClick opens inline editing on a text element under the pointer. An
// edit already open on another element commits first, like pointer-down blur.
func (s *Session) DoubleClick(x, y float64) []Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tool != ToolSelect && s.tool != ToolText {
		return nil
	}
	hit := hitTest(s.elements, x, y)
	if hit == nil || hit.Type != models.ElementText {
		return nil
	}
	if s.mode == ModeEditing && s.editTarget == hit.ElementID {
		return nil
	}
	var intents []Intent
	if in := s.commitEditLocked(); in != nil {
		intents = append(intents, *in)
	}
	s.selection = hit.ElementID
	s.mode = ModeEditing
	s.editTarget = hit.ElementID
	s.editIntent = ""
	s.editDraft = ""
	if hit.Text != nil {
		s.editDraft = *hit.Text
	}
	return intents
}

// SetEditDraft replaces the local edit buffer. Nothing is sent until the
// edit commits.
func (s *Session) SetEditDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeEditing {
		s.editDraft = text
	}
}

// CommitEdit ends the edit (blur, or Enter without Shift) and issues the
// text update.
func (s *Session) CommitEdit() []Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in := s.commitEditLocked(); in != nil {
		return []Intent{*in}
	}
	return nil
}

// CancelEdit ends the edit without committing (Escape).
func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discardEdit()
}

// DeleteSelected optimistically removes the selected element and issues its
// delete. The element is restored and re-selected if the backend refuses.
func (s *Session) DeleteSelected() []Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selection == "" {
		return nil
	}
	id := s.selection
	idx := s.indexOf(id)
	if idx < 0 {
		s.selection = ""
		return nil
	}

	snapshot := s.elements[idx]
	s.elements = append(s.elements[:idx], s.elements[idx+1:]...)
	s.selection = ""
	if s.editTarget == id {
		s.discardEdit()
	}

	intent := Intent{
		ID:        utils.NextIntentID(),
		Kind:      IntentDelete,
		CanvasID:  s.canvasID,
		ElementID: id,
	}
	s.pending[intent.ID] = &pendingIntent{
		kind:      IntentDelete,
		elementID: id,
		snapshot:  snapshot,
		index:     idx,
	}
	return []Intent{intent}
}

// Complete resolves an in-flight intent with the backend's outcome. It may
// emit follow-up intents (a text edit committed while its create was still
// in flight). Unknown ids are ignored; with no dedup upstream, the last
// response to land wins.
func (s *Session) Complete(intentID string, element *models.Element, opErr error) []Intent {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[intentID]
	if !ok {
		return nil
	}
	delete(s.pending, intentID)

	switch p.kind {
	case IntentCreate:
		return s.completeCreate(intentID, p, element, opErr)
	case IntentUpdate:
		s.completeUpdate(p, element, opErr)
	case IntentDelete:
		s.completeDelete(p, opErr)
	}
	return nil
}

func (s *Session) completeCreate(intentID string, p *pendingIntent, element *models.Element, opErr error) []Intent {
	if opErr != nil || element == nil {
		if s.editIntent == intentID {
			s.discardEdit()
		}
		return nil
	}
	s.elements = append(s.elements, *element)

	if p.editOnConfirm && s.mode == ModeEditing && s.editIntent == intentID {
		s.editTarget = element.ElementID
		s.editIntent = ""
		s.selection = element.ElementID
	}
	if p.commitText != nil && (element.Text == nil || *element.Text != *p.commitText) {
		return []Intent{s.textUpdateIntent(element.ElementID, *p.commitText)}
	}
	return nil
}

func (s *Session) completeUpdate(p *pendingIntent, element *models.Element, opErr error) {
	idx := s.indexOf(p.elementID)
	if idx < 0 {
		return
	}
	if opErr != nil || element == nil {
		s.elements[idx] = p.snapshot
		return
	}
	s.elements[idx] = *element
}

func (s *Session) completeDelete(p *pendingIntent, opErr error) {
	if opErr == nil {
		return
	}
	idx := p.index
	if idx > len(s.elements) {
		idx = len(s.elements)
	}
	s.elements = append(s.elements[:idx], append([]models.Element{p.snapshot}, s.elements[idx:]...)...)
	s.selection = p.elementID
}

// beginTextElement commits a placeholder text element at the pointer and
// enters editing targeting it. The edit target stays bound to the intent
// until the server id arrives.
func (s *Session) beginTextElement(x, y float64) Intent {
	text := PlaceholderText
	fontSize := defaultFontSize
	intent := Intent{
		ID:       utils.NextIntentID(),
		Kind:     IntentCreate,
		CanvasID: s.canvasID,
		Create: models.ElementInput{
			Type:     models.ElementText,
			X:        &x,
			Y:        &y,
			Text:     &text,
			Fill:     defaultTextFill,
			FontSize: &fontSize,
		},
	}
	s.pending[intent.ID] = &pendingIntent{kind: IntentCreate, editOnConfirm: true}
	s.mode = ModeEditing
	s.editTarget = ""
	s.editIntent = intent.ID
	s.editDraft = text
	return intent
}

func (s *Session) textUpdateIntent(elementID, text string) Intent {
	idx := s.indexOf(elementID)
	intent := Intent{
		ID:        utils.NextIntentID(),
		Kind:      IntentUpdate,
		CanvasID:  s.canvasID,
		ElementID: elementID,
		Patch:     models.ElementPatch{Text: &text},
	}
	p := &pendingIntent{kind: IntentUpdate, elementID: elementID}
	if idx >= 0 {
		p.snapshot = s.elements[idx]
		updated := s.elements[idx]
		updated.Text = &text
		s.elements[idx] = updated
	}
	s.pending[intent.ID] = p
	return intent
}

// commitEditLocked ends an active edit and produces the update intent, or
// defers the committed text onto the pending create when the element id is
// not known yet.
func (s *Session) commitEditLocked() *Intent {
	if s.mode != ModeEditing {
		return nil
	}
	draft := s.editDraft

	if s.editTarget == "" {
		if p, ok := s.pending[s.editIntent]; ok {
			text := draft
			p.commitText = &text
		}
		s.discardEdit()
		return nil
	}

	target := s.editTarget
	s.discardEdit()
	intent := s.textUpdateIntent(target, draft)
	return &intent
}

func (s *Session) discardEdit() {
	if s.mode == ModeEditing {
		s.mode = ModeIdle
	}
	s.editTarget = ""
	s.editIntent = ""
	s.editDraft = ""
}

func (s *Session) indexOf(elementID string) int {
	for i := range s.elements {
		if s.elements[i].ElementID == elementID {
			return i
		}
	}
	return -1
}

// Accessors below return copies; the session stays the single writer.

func (s *Session) Tool() Tool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Selection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

func (s *Session) Elements() []models.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Element{}, s.elements...)
}

func (s *Session) Draft() (DraftRect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return DraftRect{}, false
	}
	return *s.draft, true
}

// EditState reports the inline-edit target and buffer. The target is empty
// while the edited element's create is still in flight.
func (s *Session) EditState() (target, draft string, editing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editTarget, s.editDraft, s.mode == ModeEditing
}
