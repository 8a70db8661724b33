package domain

// Status represents the outcome of comparing two flash plans.
type Status int

const (
	StatusUnchanged Status = iota // Plans are identical
	StatusChanged                 // At least one partition differs
	StatusError                   // Error occurred while building a plan
)

// ChangeKind classifies a single partition difference.
type ChangeKind int

const (
	ChangeAdded   ChangeKind = iota // Partition only in head
	ChangeRemoved                   // Partition only in base
	ChangeFile                      // Partition in both, different image
)

// EntryChange describes how one partition differs between two plans.
type EntryChange struct {
	Kind          ChangeKind
	PartitionName string
	OldFile       string // Empty for ChangeAdded
	NewFile       string // Empty for ChangeRemoved
}

// PlanDiff is the comparison of a base and a head flash plan.
type PlanDiff struct {
	BaseLabel    string
	HeadLabel    string
	Status       Status
	Changes      []EntryChange
	UnifiedDiff  string // Line diff of the rendered commands (go-difflib)
	SemanticDiff string // Per-partition diff of the accepted entries
	Summary      string // Human-readable summary (or error message if Status == StatusError)
}

// PreferredDiff returns the semantic diff if available, otherwise the unified diff.
func (d PlanDiff) PreferredDiff() string {
	if d.SemanticDiff != "" {
		return d.SemanticDiff
	}
	return d.UnifiedDiff
}

// CompareEntries lists partitions added or changed in head, in head order,
// followed by partitions removed from base, in base order.
func CompareEntries(base, head []PartitionEntry) []EntryChange {
	baseFiles := make(map[string]string, len(base))
	for _, e := range base {
		baseFiles[e.PartitionName] = e.FileName
	}
	headNames := make(map[string]struct{}, len(head))

	var changes []EntryChange
	for _, e := range head {
		headNames[e.PartitionName] = struct{}{}
		old, ok := baseFiles[e.PartitionName]
		switch {
		case !ok:
			changes = append(changes, EntryChange{
				Kind:          ChangeAdded,
				PartitionName: e.PartitionName,
				NewFile:       e.FileName,
			})
		case old != e.FileName:
			changes = append(changes, EntryChange{
				Kind:          ChangeFile,
				PartitionName: e.PartitionName,
				OldFile:       old,
				NewFile:       e.FileName,
			})
		}
	}
	for _, e := range base {
		if _, ok := headNames[e.PartitionName]; !ok {
			changes = append(changes, EntryChange{
				Kind:          ChangeRemoved,
				PartitionName: e.PartitionName,
				OldFile:       e.FileName,
			})
		}
	}
	return changes
}

// CountByKind returns counts of changes grouped by kind.
func CountByKind(changes []EntryChange) (added, removed, changed int) {
	for _, c := range changes {
		switch c.Kind {
		case ChangeAdded:
			added++
		case ChangeRemoved:
			removed++
		case ChangeFile:
			changed++
		}
	}
	return
}

// FormatPlanLabel creates a display name for one side of a comparison.
// Example: "firmware/MT6781_Android_scatter.xml (v1418)"
func FormatPlanLabel(source, ref string) string {
	if ref == "" {
		return source
	}
	return source + " (" + ref + ")"
}
