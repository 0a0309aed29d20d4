package clicks

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Click represents a click event fed by swaybar back into stdin. Text is not
// part of the bar protocol; scripts set it to commit a normalized value.
type Click struct {
	Name      string   `json:"name"`
	Instance  string   `json:"instance,omitempty"`
	Button    int      `json:"button"`
	X         int      `json:"x"`
	Y         int      `json:"y"`
	Modifiers []string `json:"modifiers"`
	Text      string   `json:"text,omitempty"`
}

// Mouse buttons as numbered by the bar protocol.
const (
	ButtonLeft       = 1
	ButtonMiddle     = 2
	ButtonRight      = 3
	ButtonScrollUp   = 4
	ButtonScrollDown = 5
)

// Read consumes newline-delimited JSON click events, emitting them onto out.
// It drops events if the channel is full to avoid blocking the main loop.
// The click stream opens with "[" and later events are comma-prefixed; both
// are stripped. out is closed when r is exhausted.
func Read(r io.Reader, out chan<- Click, log *logrus.Entry) {
	defer close(out)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		line = strings.TrimPrefix(line, ",")
		if line == "" || line == "[" {
			continue
		}
		var c Click
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			log.WithError(err).Warn("click parse")
			continue
		}
		select {
		case out <- c:
		default:
			log.WithField("name", c.Name).Debug("click queue full; dropped")
		}
	}
	if err := sc.Err(); err != nil {
		log.WithError(err).Warn("click scanner")
	}
}
