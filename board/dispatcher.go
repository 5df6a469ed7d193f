package board

import (
	"context"
	"log"
	"sync"

	"whiteboard-server/models"
)

// Backend is the element mutation surface the board drives. The HTTP client
// in the client package implements it; tests substitute fakes.
type Backend interface {
	CreateElement(ctx context.Context, canvasID string, input models.ElementInput) (models.Element, error)
	UpdateElement(ctx context.Context, canvasID, elementID string, patch models.ElementPatch) (models.Element, error)
	DeleteElement(ctx context.Context, canvasID, elementID string) (models.Element, error)
}

// Dispatcher executes intents against a Backend and feeds outcomes back into
// the session. Calls are asynchronous, non-cancelable once started, and not
// de-duplicated; follow-up intents emitted by Complete are dispatched the
// same way.
type Dispatcher struct {
	backend Backend
	session *Session
	wg      sync.WaitGroup
}

func NewDispatcher(backend Backend, session *Session) *Dispatcher {
	return &Dispatcher{backend: backend, session: session}
}

func (d *Dispatcher) Dispatch(ctx context.Context, intents []Intent) {
	for _, intent := range intents {
		d.wg.Add(1)
		go d.run(ctx, intent)
	}
}

func (d *Dispatcher) run(ctx context.Context, intent Intent) {
	defer d.wg.Done()

	var element models.Element
	var err error
	switch intent.Kind {
	case IntentCreate:
		element, err = d.backend.CreateElement(ctx, intent.CanvasID, intent.Create)
	case IntentUpdate:
		element, err = d.backend.UpdateElement(ctx, intent.CanvasID, intent.ElementID, intent.Patch)
	case IntentDelete:
		element, err = d.backend.DeleteElement(ctx, intent.CanvasID, intent.ElementID)
	}
	if err != nil {
		log.Printf("[Dispatcher] intent %s failed: %v", intent.ID, err)
		d.Dispatch(ctx, d.session.Complete(intent.ID, nil, err))
		return
	}
	d.Dispatch(ctx, d.session.Complete(intent.ID, &element, nil))
}

// Wait blocks until every dispatched intent, including follow-ups, has
// resolved.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
