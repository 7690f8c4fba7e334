package ecs

// Access is the set of component kinds a system declares up front. Fetching a
// storage outside of it while the system runs is a programming error.
type Access struct {
	Reads  []Kind
	Writes []Kind
}

func (a Access) canRead(k Kind) bool {
	return contains(a.Reads, k) || contains(a.Writes, k)
}

func (a Access) canWrite(k Kind) bool {
	return contains(a.Writes, k)
}

func contains(kinds []Kind, k Kind) bool {
	for _, c := range kinds {
		if c == k {
			return true
		}
	}
	return false
}
