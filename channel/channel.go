package channel

import "fmt"

// Channel identifies one of the three color components.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Count is the number of channels.
const Count = 3

// MaxValue is the largest intensity a channel can hold.
const MaxValue = 255

// All lists the channels in R, G, B order.
var All = [Count]Channel{Red, Green, Blue}

var names = [Count]string{"red", "green", "blue"}

func (c Channel) String() string {
	if !c.Valid() {
		return fmt.Sprintf("channel(%d)", int(c))
	}
	return names[c]
}

// Key returns the persisted settings key, e.g. "red_value".
func (c Channel) Key() string { return c.String() + "_value" }

// Valid reports whether c is one of Red, Green, Blue.
func (c Channel) Valid() bool { return c >= Red && c <= Blue }

// Parse maps a lower-case channel name back to its Channel.
func Parse(name string) (Channel, bool) {
	for i, n := range names {
		if n == name {
			return Channel(i), true
		}
	}
	return 0, false
}

// Values maps channels to intensities. A missing channel means 0.
type Values map[Channel]int

// Get returns the value for c, or 0 when absent.
func (v Values) Get(c Channel) int { return v[c] }

// Clamp limits v to [0, MaxValue].
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
