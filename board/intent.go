package board

import "whiteboard-server/models"

type IntentKind int

const (
	IntentCreate IntentKind = iota
	IntentUpdate
	IntentDelete
)

// Intent is a mutation the session wants executed against the backend. Each
// intent carries a correlation id; the session keeps enough state under that
// id to commit or roll back when Complete is called with the outcome.
type Intent struct {
	ID        string
	Kind      IntentKind
	CanvasID  string
	ElementID string              // update/delete target
	Create    models.ElementInput // create payload
	Patch     models.ElementPatch // update payload
}

// pendingIntent is the session-side bookkeeping for an in-flight intent.
type pendingIntent struct {
	kind      IntentKind
	elementID string

	// update/delete: the element as it looked before the optimistic apply,
	// and for deletes the list index to restore it at.
	snapshot models.Element
	index    int

	// create from the text tool: bind the edit target once the server id
	// arrives, and carry an edit committed before confirmation.
	editOnConfirm bool
	commitText    *string
}
