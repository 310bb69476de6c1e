package Trees

// Ranger is a structure over a fixed number of indexed elements that answers folds over
// half-open index ranges [from, to). Methods that take a single index panic with
// *Go_Segments.IndexError when the index is invalid; Range never panics and folds only
// the part of [from, to) that overlaps the structure.
type Ranger[T any] interface {
	//Range folds elements in [from, to) from left to right. The empty range gives the identity.
	Range(from, to int) T
	//Get element i.
	Get(i int) T
	//Update element i to v.
	Update(i int, v T)
	//Len is the number of elements the structure was built with.
	Len() int
}
