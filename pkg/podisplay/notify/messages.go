package notify

// Severity classifies entries in the persistent message list.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityInformation
	SeveritySuccess
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInformation:
		return "Information"
	case SeveritySuccess:
		return "Success"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return "None"
	}
}

// Message is one entry of the message list shown by the message popover.
type Message struct {
	Type        Severity
	Title       string
	Description string
	Subtitle    string
	Counter     int
}

// MessageList is the persistent, ordered list of messages owned by a view.
type MessageList struct {
	messages []Message
}

// NewMessageList creates a list seeded with messages.
func NewMessageList(messages ...Message) *MessageList {
	l := &MessageList{}
	for _, m := range messages {
		l.Add(m)
	}
	return l
}

// Add appends a message. A zero counter is stored as 1.
func (l *MessageList) Add(m Message) {
	if m.Counter == 0 {
		m.Counter = 1
	}
	l.messages = append(l.messages, m)
}

// Messages returns a copy of the list.
func (l *MessageList) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len returns the number of messages.
func (l *MessageList) Len() int {
	return len(l.messages)
}

// CountBySeverity returns how many messages have severity s.
func (l *MessageList) CountBySeverity(s Severity) int {
	n := 0
	for _, m := range l.messages {
		if m.Type == s {
			n++
		}
	}
	return n
}

// Highest returns the most severe type in the list, SeverityNone if empty.
func (l *MessageList) Highest() Severity {
	highest := SeverityNone
	for _, m := range l.messages {
		if m.Type > highest {
			highest = m.Type
		}
	}
	return highest
}

// Clear removes all messages.
func (l *MessageList) Clear() {
	l.messages = l.messages[:0]
}
