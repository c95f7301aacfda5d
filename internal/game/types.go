package game

// Phase is the run-level state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// MessageLog keeps the most recent status lines in a fixed ring.
type MessageLog struct {
	lines []string
	start int
	count int
}

// NewMessageLog creates a log holding up to capacity lines.
func NewMessageLog(capacity int) *MessageLog {
	return &MessageLog{lines: make([]string, max(capacity, 1))}
}

// Add appends a line, evicting the oldest when full.
func (l *MessageLog) Add(text string) {
	if text == "" {
		return
	}
	if l.count < len(l.lines) {
		l.lines[(l.start+l.count)%len(l.lines)] = text
		l.count++
		return
	}
	l.lines[l.start] = text
	l.start = (l.start + 1) % len(l.lines)
}

// Lines returns the kept lines, oldest first.
func (l *MessageLog) Lines() []string {
	out := make([]string, l.count)
	for i := range out {
		out[i] = l.lines[(l.start+i)%len(l.lines)]
	}
	return out
}

// Len is the number of kept lines.
func (l *MessageLog) Len() int {
	return l.count
}

// Cap is the maximum number of kept lines.
func (l *MessageLog) Cap() int {
	return len(l.lines)
}

// Last returns the newest line, or "".
func (l *MessageLog) Last() string {
	if l.count == 0 {
		return ""
	}
	return l.lines[(l.start+l.count-1)%len(l.lines)]
}
