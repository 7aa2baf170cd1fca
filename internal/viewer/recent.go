package viewer

// RecentCapacity is the number of paths a RecentList keeps.
const RecentCapacity = 10

// RecentList is a bounded most-recently-used list of paths, most recent last.
type RecentList struct {
	paths    []string
	capacity int
}

// NewRecentList returns an empty list holding at most capacity paths.
func NewRecentList(capacity int) *RecentList {
	if capacity <= 0 {
		capacity = RecentCapacity
	}
	return &RecentList{capacity: capacity}
}

// Touch moves path to the end, inserting it if absent and evicting the oldest
// entries beyond capacity. It returns the new order as a fresh slice.
func (r *RecentList) Touch(path string) []string {
	next := make([]string, 0, len(r.paths)+1)
	for _, p := range r.paths {
		if p != path {
			next = append(next, p)
		}
	}
	next = append(next, path)
	if over := len(next) - r.capacity; over > 0 {
		next = next[over:]
	}
	r.paths = next
	return r.Paths()
}

// Paths returns the list oldest first.
func (r *RecentList) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// MostRecentFirst returns the list in menu order.
func (r *RecentList) MostRecentFirst() []string {
	out := make([]string, len(r.paths))
	for i, p := range r.paths {
		out[len(r.paths)-1-i] = p
	}
	return out
}

// Len returns the number of stored paths.
func (r *RecentList) Len() int { return len(r.paths) }

// Clear empties the list.
func (r *RecentList) Clear() { r.paths = nil }
