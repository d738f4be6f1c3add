package command

// ConsoleHost stands in for the chat UI settings the picture session flips
// while a picture is pending.
type ConsoleHost struct {
	noStream bool
	status   string
}

func NewConsoleHost(noStream bool) *ConsoleHost {
	return &ConsoleHost{noStream: noStream, status: "*Is typing...*"}
}

func (h *ConsoleHost) NoStream() bool {
	return h.noStream
}

func (h *ConsoleHost) SetNoStream(noStream bool) {
	h.noStream = noStream
}

func (h *ConsoleHost) SetProcessingMessage(message string) {
	h.status = message
}

// Status is the line shown while the bot is busy.
func (h *ConsoleHost) Status() string {
	return h.status
}
