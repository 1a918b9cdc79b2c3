package observer

import (
	"bytes"
	"testing"
)

// recorder appends its name to a shared log on every notification.
type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Notify(message string) {
	*r.log = append(*r.log, r.name+":"+message)
}

func TestListBroadcastOrder(t *testing.T) {
	var log []string
	s1 := &recorder{name: "S1", log: &log}
	s2 := &recorder{name: "S2", log: &log}

	var l List
	l.Attach(s1)
	l.Attach(s2)

	// Every trigger must notify S1 before S2.
	for i := 0; i < 3; i++ {
		log = log[:0]
		l.Broadcast("drawn")
		want := []string{"S1:drawn", "S2:drawn"}
		if len(log) != len(want) {
			t.Fatalf("broadcast %d: got %d notifications, want %d", i, len(log), len(want))
		}
		for j := range want {
			if log[j] != want[j] {
				t.Errorf("broadcast %d: notification %d = %q, want %q", i, j, log[j], want[j])
			}
		}
	}
}

func TestListAttachTwice(t *testing.T) {
	var log []string
	s := &recorder{name: "S", log: &log}

	var l List
	l.Attach(s)
	l.Attach(s)

	l.Broadcast("calculated")
	if len(log) != 2 {
		t.Errorf("subscriber attached twice should be notified twice, got %d", len(log))
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestEmptyListBroadcast(t *testing.T) {
	var l List
	l.Broadcast("no one listens") // must not panic
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestSubscriberOutput(t *testing.T) {
	tests := []struct {
		name string
		sub  func(*bytes.Buffer) Subscriber
		want string
	}{
		{
			name: "regular",
			sub:  func(b *bytes.Buffer) Subscriber { return &Regular{Out: b} },
			want: "[Regular Subscriber] Graph drawn\n",
		},
		{
			name: "contrast",
			sub:  func(b *bytes.Buffer) Subscriber { return &Contrast{Out: b} },
			want: "[Contrast Image Subscriber] Graph drawn\n",
		},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		tt.sub(&buf).Notify("Graph drawn")
		if buf.String() != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, buf.String(), tt.want)
		}
	}
}
