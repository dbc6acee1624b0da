package game

import "sort"

// LeaderboardEntry is one ranked row in the broadcast leaderboard.
type LeaderboardEntry struct {
	Name  string `json:"name" msgpack:"name"`
	Score int    `json:"score" msgpack:"score"`
}

// TopScores derives the ranked top-n view of the given players: score
// descending, stable for ties so equal scores keep join order. Pure; safe to
// call with an empty or nil slice.
func TopScores(players []*Player, n int) []LeaderboardEntry {
	ranked := make([]*Player, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	entries := make([]LeaderboardEntry, 0, n)
	for _, p := range ranked[:n] {
		entries = append(entries, LeaderboardEntry{Name: p.Name, Score: p.Score})
	}
	return entries
}
