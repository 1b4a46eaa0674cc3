package model

// Roster is an ordered set of participant emails. Membership is unique;
// insertion order is preserved for display.
type Roster struct {
	order []string
	index map[string]struct{}
}

// NewRoster creates a roster from the given emails, dropping duplicates.
func NewRoster(emails ...string) Roster {
	r := Roster{index: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		r.Add(e)
	}
	return r
}

// Add appends email to the roster.
// Returns false if the email is already present.
func (r *Roster) Add(email string) bool {
	if r.index == nil {
		r.index = make(map[string]struct{})
	}
	if _, ok := r.index[email]; ok {
		return false
	}
	r.index[email] = struct{}{}
	r.order = append(r.order, email)
	return true
}

// Remove deletes email from the roster.
// Returns false if the email is not present.
func (r *Roster) Remove(email string) bool {
	if _, ok := r.index[email]; !ok {
		return false
	}
	delete(r.index, email)
	for i, e := range r.order {
		if e == email {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether email is on the roster.
func (r *Roster) Contains(email string) bool {
	_, ok := r.index[email]
	return ok
}

// Len returns the number of participants.
func (r *Roster) Len() int {
	return len(r.order)
}

// Emails returns the participant emails in insertion order.
// The returned slice is a copy and safe to hold after the roster mutates.
func (r *Roster) Emails() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
