// ABOUTME: Dispatcher owns the Model and runs the root reducer, draining immediate follow-up events.
// ABOUTME: Orders is the sink reducers use to emit follow-up events and Commands.
package core

import (
	"log"

	"github.com/2389-research/gifbox/wire"
)

// maxFollowUps bounds the number of events one Dispatch call will process.
const maxFollowUps = 64

// Location is the location bar the router writes to.
type Location interface {
	Push(segments []string)
	Current() []string
}

type discardLocation struct{}

func (discardLocation) Push([]string)     {}
func (discardLocation) Current() []string { return nil }

// Orders collects what a reducer asks for: follow-up events processed in the
// same dispatch, Commands for the Executor, and whether to skip rendering.
type Orders struct {
	events   []Event
	commands []Command
	skip     bool
}

// Send queues an event to be reduced right after the current one.
func (o *Orders) Send(ev Event) {
	o.events = append(o.events, ev)
}

// Perform queues a Command for asynchronous execution.
func (o *Orders) Perform(cmd Command) {
	o.commands = append(o.commands, cmd)
}

// Skip marks the current event as not needing a render.
func (o *Orders) Skip() {
	o.skip = true
}

// Update is the outcome of one Dispatch call.
type Update struct {
	// Processed lists every event reduced, starting with the dispatched one.
	Processed []Event
	// Commands lists every Command emitted, in emission order.
	Commands []Command
	// Render is true if any processed event changed what the view shows.
	Render bool
}

// Dispatcher is the single owner of the Model. It is not safe for
// concurrent use; callers run it on one goroutine.
type Dispatcher struct {
	model    *Model
	location Location
}

// NewDispatcher creates a Dispatcher over m. A nil location discards pushes.
func NewDispatcher(m *Model, location Location) *Dispatcher {
	if location == nil {
		location = discardLocation{}
	}
	return &Dispatcher{model: m, location: location}
}

// Model returns the owned model for rendering. Callers must not mutate it.
func (d *Dispatcher) Model() *Model {
	return d.model
}

// Dispatch reduces ev and every follow-up event it emits, in FIFO order,
// before returning. Commands are returned for the caller to execute.
func (d *Dispatcher) Dispatch(ev Event) Update {
	var up Update
	queue := []Event{ev}
	for len(queue) > 0 {
		if len(up.Processed) >= maxFollowUps {
			log.Printf("dispatch follow-up limit reached dropped=%d first=%s", len(queue), EventName(queue[0]))
			break
		}
		next := queue[0]
		queue = queue[1:]

		var o Orders
		d.reduce(next, &o)

		up.Processed = append(up.Processed, next)
		up.Commands = append(up.Commands, o.commands...)
		if !o.skip {
			up.Render = true
		}
		queue = append(queue, o.events...)
	}
	return up
}

// reduce is the root reducer.
func (d *Dispatcher) reduce(ev Event, o *Orders) {
	m := d.model
	switch e := ev.(type) {
	case Noop:
		o.Skip()

	case Logout:
		m.Pristine()
		o.Perform(ClearSessionCommand{})
		o.Send(RouteTo{Route: RouteLogin})

	case RouteTo:
		if m.IsInitializing {
			o.Skip()
			return
		}
		m.UI.NavOpen = false
		d.location.Push(e.Route.Segments())
		m.Route = e.Route
		PostRouting(e.Route, o)

	case Initialized:
		m.IsInitializing = false
		m.User = e.User
		if e.User != nil {
			o.Send(RouteTo{Route: RouteSearch})
		} else {
			o.Send(RouteTo{Route: RouteLogin})
		}

	case FavoriteSaved:
		mergeGifs(m.Search.Results, e.Gif)
		mergeGifs(m.Favorites.Favorites, e.Gif)

	case Login:
		reduceLogin(e.Event, m, o)

	case Search:
		reduceSearch(e.Event, m, o)

	case Favorites:
		reduceFavorites(e.Event, m, o)

	case UI:
		reduceUI(e.Event, m, o)

	default:
		log.Printf("dispatch unknown event type=%T", ev)
		o.Skip()
	}
}

func reduceUI(ev UIEvent, m *Model, o *Orders) {
	switch ev.(type) {
	case ToggleNav:
		m.UI.NavOpen = !m.UI.NavOpen
	default:
		o.Skip()
	}
}

// mergeGifs upserts each GIF by id. Existing ids keep their position.
func mergeGifs(dst *GifMap, gifs ...wire.Gif) {
	for _, g := range gifs {
		dst.Set(g.ID, g)
	}
}
