package observer

import (
	"fmt"
	"io"
)

// Subscriber receives a message after every diagram state change.
type Subscriber interface {
	Notify(message string)
}

// Regular is the default subscriber attached to every diagram.
type Regular struct {
	Out io.Writer
}

func (s *Regular) Notify(message string) {
	fmt.Fprintf(s.Out, "[Regular Subscriber] %s\n", message)
}

// Contrast listens on behalf of the high-contrast image pipeline.
type Contrast struct {
	Out io.Writer
}

func (s *Contrast) Notify(message string) {
	fmt.Fprintf(s.Out, "[Contrast Image Subscriber] %s\n", message)
}

// List is an ordered, attach-only collection of subscribers. There is
// no detach; a subscriber stays attached for the owner's lifetime.
type List struct {
	subs []Subscriber
}

// Attach appends sub. Attaching the same subscriber twice means it is
// notified twice per broadcast.
func (l *List) Attach(sub Subscriber) {
	l.subs = append(l.subs, sub)
}

// Broadcast notifies every subscriber in attachment order,
// synchronously, before returning to the caller.
func (l *List) Broadcast(message string) {
	for _, s := range l.subs {
		s.Notify(message)
	}
}

// Len returns the number of attached subscribers.
func (l *List) Len() int {
	return len(l.subs)
}
