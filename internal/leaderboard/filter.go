package leaderboard

// FilterScope returns the participants visible under scope, preserving
// their original order. The friends scope keeps only flagged participants;
// anything unrecognized falls back to global rather than failing.
func FilterScope(participants []Participant, scope Scope) []Participant {
	if scope != ScopeFriends {
		return participants
	}

	out := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if p.Friend {
			out = append(out, p)
		}
	}
	return out
}
