package app

// Notifier receives short, fire-and-forget user notices, the kind a screen
// shows for a moment and then forgets.
type Notifier interface {
	Notify(text string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(text string)

// Notify calls f.
func (f NotifierFunc) Notify(text string) { f(text) }

// NoticeBuffer queues notices for a screen that polls between events instead
// of being called into. No locking; producer and consumer share the UI event
// loop.
type NoticeBuffer struct {
	texts []string
}

// Notify queues text.
func (b *NoticeBuffer) Notify(text string) {
	b.texts = append(b.texts, text)
}

// Drain returns everything queued since the last drain and empties the
// buffer.
func (b *NoticeBuffer) Drain() []string {
	texts := b.texts
	b.texts = nil
	return texts
}
