package game

// NoWinnerName is reported when a round ends with no players connected.
const NoWinnerName = "no one"

// ComputeWinner picks the player with the strictly highest score. Ties go to
// the earliest joiner; players must be passed in join order. An empty slice
// yields the no-winner sentinel with score 0.
func ComputeWinner(players []*Player) (name string, score int) {
	name = NoWinnerName
	score = 0
	best := -1
	for _, p := range players {
		if p.Score > best {
			best = p.Score
			name = p.Name
			score = p.Score
		}
	}
	return name, score
}
