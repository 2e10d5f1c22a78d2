package storage

import (
	"github.com/KenW28/Push-Up-Analyzer/internal/leaderboard"
)

func ListParticipants() ([]leaderboard.Participant, error) {
	rows, err := DB.Query(
		`SELECT username, base_reps, is_friend FROM participants ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []leaderboard.Participant
	for rows.Next() {
		var p leaderboard.Participant
		if err := rows.Scan(&p.Username, &p.BaseReps, &p.Friend); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

func AddParticipant(username string, baseReps int, friend bool) error {
	_, err := DB.Exec(
		`INSERT INTO participants (username, base_reps, is_friend) VALUES (?, ?, ?)`,
		username, baseReps, friend,
	)
	return err
}

func AddReps(username string, reps int) error {
	_, err := DB.Exec(
		`UPDATE participants SET base_reps = base_reps + ? WHERE username = ?`,
		reps, username,
	)
	return err
}

func SetFriend(username string, friend bool) error {
	_, err := DB.Exec(
		`UPDATE participants SET is_friend = ? WHERE username = ?`,
		friend, username,
	)
	return err
}

// SeedIfEmpty bootstraps a demo participant set on first run so a fresh
// local deployment has something on the board.
func SeedIfEmpty(participants []leaderboard.Participant) error {
	var count int
	if err := DB.QueryRow(`SELECT COUNT(*) FROM participants`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range participants {
		if err := AddParticipant(p.Username, p.BaseReps, p.Friend); err != nil {
			return err
		}
	}
	return nil
}
