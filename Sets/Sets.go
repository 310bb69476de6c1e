package Sets

// Partition of the elements 0..Len()-1 into disjoint groups that only ever merge.
type Partition[S any] interface {
	// Find the representative of i's group.
	Find(i S) S
	// Unite the groups of a and b; false if they were already one group.
	Unite(a, b S) bool
	Joint(a, b S) bool
	// Count the elements in i's group.
	Count(i S) S
	Len() int
}
