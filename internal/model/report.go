package model

// Summary describes the outcome of a generation run for the operator.
type Summary struct {
	Descriptor Path
	Total      int
	Preview    []ManifestItem
	Omitted    int  // entries not shown in Preview
	DryRun     bool // true when the descriptor was not written
}

// Drift lists the differences between persisted and freshly generated exports.
type Drift struct {
	Descriptor Path
	Added      []string
	Removed    []string
	Changed    []string
	// Reordered is true when the key sets and values match but the
	// persisted bytes still differ (ordering or formatting).
	Reordered bool
}

// Empty reports whether the persisted exports are up to date.
func (d Drift) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0 && !d.Reordered
}
