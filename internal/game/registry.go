package game

// Registry owns all player records. Iteration follows join order, which is
// the tie-break everywhere players compete: the earliest joiner wins a
// contested item and a tied winner selection.
//
// Registry is not safe for concurrent use on its own; the world serializes
// access under its lock.
type Registry struct {
	players     map[string]*Player
	order       []string // join order of live IDs
	spawnExtent float64
}

// NewRegistry creates an empty registry. spawnExtent bounds the central
// square new players spawn into.
func NewRegistry(spawnExtent float64) *Registry {
	return &Registry{
		players:     make(map[string]*Player),
		spawnExtent: spawnExtent,
	}
}

// Join registers a player for the given identity. Re-joining with an identity
// that is already present overwrites the old record and keeps its original
// position in join order; identities are connection-scoped so this only
// happens when a transport reuses an id.
func (r *Registry) Join(id, requestedName string) *Player {
	p := NewPlayer(id, requestedName, r.spawnExtent)
	if _, exists := r.players[id]; !exists {
		r.order = append(r.order, id)
	}
	r.players[id] = p
	return p
}

// ApplyMove updates a player's position. Unknown identities are a silent
// no-op so intents that arrive after a disconnect are simply dropped.
func (r *Registry) ApplyMove(id string, x, y, z float64) {
	if p, ok := r.players[id]; ok {
		p.SetPosition(x, y, z)
	}
}

// Remove deletes a player record and reports whether the registry is now
// empty. Unknown identities are a no-op.
func (r *Registry) Remove(id string) bool {
	if _, ok := r.players[id]; ok {
		delete(r.players, id)
		for i, oid := range r.order {
			if oid == id {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	return len(r.players) == 0
}

// ResetScores zeroes every player's score. Called at round start.
func (r *Registry) ResetScores() {
	for _, p := range r.players {
		p.Score = 0
	}
}

// Get returns the player for an identity, or nil.
func (r *Registry) Get(id string) *Player {
	return r.players[id]
}

// Players returns all players in join order. Callers must not retain the
// returned pointers past the world lock.
func (r *Registry) Players() []*Player {
	players := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		players = append(players, r.players[id])
	}
	return players
}

// Len returns the number of registered players.
func (r *Registry) Len() int {
	return len(r.players)
}

// Snapshot returns a value copy of every player keyed by identity, safe to
// hand to the broadcast path after the lock is released.
func (r *Registry) Snapshot() map[string]Player {
	out := make(map[string]Player, len(r.players))
	for id, p := range r.players {
		out[id] = *p
	}
	return out
}
