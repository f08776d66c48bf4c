// Package scenetest provides fakes shared by the screen tests.
package scenetest

import (
	"time"

	"github.com/younwookim/paragon/internal/application/view"
)

// Clock is a manually advanced time source
type Clock struct{ T time.Time }

// NewClock creates a clock at the Unix epoch
func NewClock() *Clock { return &Clock{T: time.Unix(0, 0)} }

func (c *Clock) Now() time.Time          { return c.T }
func (c *Clock) Advance(d time.Duration) { c.T = c.T.Add(d) }

// Navigator records navigation requests
type Navigator struct {
	Requested     []view.ID
	Payloads      []view.Payload
	Resumed       int
	ReturnToPause []bool
}

func (n *Navigator) RequestView(id view.ID, p view.Payload) {
	n.Requested = append(n.Requested, id)
	n.Payloads = append(n.Payloads, p)
}

func (n *Navigator) ResumeFromSave() { n.Resumed++ }

func (n *Navigator) SetReturnToPause(v bool) {
	n.ReturnToPause = append(n.ReturnToPause, v)
}

// Last returns the most recent request, or NoView
func (n *Navigator) Last() view.ID {
	if len(n.Requested) == 0 {
		return view.NoView
	}
	return n.Requested[len(n.Requested)-1]
}
