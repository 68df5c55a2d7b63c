package listing

// DiffNew returns the listings in current whose ID is absent from previousIDs,
// in the order they appear in current. Neither input is mutated.
func DiffNew(current []Listing, previousIDs map[string]bool) []Listing {
	var out []Listing
	for _, l := range current {
		if !previousIDs[l.ID] {
			out = append(out, l)
		}
	}
	return out
}

// IDSet collects the IDs of a listing slice into a membership set.
func IDSet(ls []Listing) map[string]bool {
	s := make(map[string]bool, len(ls))
	for _, l := range ls {
		s[l.ID] = true
	}
	return s
}
