package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// WriteHeader emits the i3bar protocol header, the opening of the infinite
// array and an empty first row.
func WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, "{\"version\":1,\"click_events\":true}\n[\n[]\n")
	return err
}

// WriteRow emits one comma-prefixed row. buf is reused between calls.
func WriteRow(w io.Writer, buf *bytes.Buffer, row []Block) error {
	buf.Reset()
	if err := json.NewEncoder(buf).Encode(row); err != nil {
		return fmt.Errorf("encode blocks: %w", err)
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	if _, err := fmt.Fprintf(w, ",%s\n", out); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}
