package domain

import (
	"fmt"
	"io"
)

const (
	// FlashTool is the command prefix for every rendered line.
	FlashTool = "sudo ./fastboot"

	// DefaultBasePath is the directory holding the unpacked firmware images.
	DefaultBasePath = "/media/kali/Local Disk/All Phones Files/Tecno Camon 18P/CH7n-H812DE-R-OP-220527V1418"
)

// FormatCommand renders the fastboot command that flashes e from basePath.
// Example: sudo ./fastboot flash boot '/images/boot.img'
func FormatCommand(e PartitionEntry, basePath string) string {
	return fmt.Sprintf("%s flash %s '%s/%s'", FlashTool, e.PartitionName, basePath, e.FileName)
}

// Renderer turns an accepted flash plan into shell command lines.
type Renderer struct {
	BasePath string
}

// NewRenderer creates a Renderer rooted at DefaultBasePath.
func NewRenderer() Renderer {
	return Renderer{BasePath: DefaultBasePath}
}

// Render returns one command per entry, in order, leaving out SkippedPartition.
func (r Renderer) Render(entries []PartitionEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.PartitionName == SkippedPartition {
			continue
		}
		lines = append(lines, FormatCommand(e, r.BasePath))
	}
	return lines
}

// Print writes the rendered lines to w, newline terminated.
func (r Renderer) Print(w io.Writer, entries []PartitionEntry) error {
	for _, line := range r.Render(entries) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing command: %w", err)
		}
	}
	return nil
}
