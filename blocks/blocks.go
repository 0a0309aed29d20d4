package blocks

// Block represents an i3bar protocol block.
type Block struct {
	Name                string `json:"name,omitempty"`
	Instance            string `json:"instance,omitempty"`
	FullText            string `json:"full_text"`
	ShortText           string `json:"short_text,omitempty"`
	Color               string `json:"color,omitempty"`
	Background          string `json:"background,omitempty"`
	Separator           bool   `json:"separator"`
	SeparatorBlockWidth int    `json:"separator_block_width,omitempty"`
	Urgent              bool   `json:"urgent,omitempty"`
	Markup              string `json:"markup,omitempty"`
}

const SeparatorWidth = 12

// Provider supplies an up-to-date Block. State changes are pushed into the
// provider; Refresh rebuilds the Block and reports whether it changed.
type Provider interface {
	Name() string
	Refresh() (changed bool)
	Current() Block
}
