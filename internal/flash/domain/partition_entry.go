package domain

const (
	// SentinelNone marks a partition without an image file.
	SentinelNone = "NONE"

	// SkippedPartition is accepted during extraction but never rendered.
	SkippedPartition = "userdata"
)

// PartitionEntry pairs a device partition with the image file that fills it.
type PartitionEntry struct {
	PartitionName string
	FileName      string
}

// PartitionNames returns the partition names of entries in order.
func PartitionNames(entries []PartitionEntry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.PartitionName)
	}
	return names
}
