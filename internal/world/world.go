package world

import (
	"log/slog"
	"sync"
	"time"

	"github.com/zacharysnewman/web-mp-test/internal/game"
	"github.com/zacharysnewman/web-mp-test/internal/ws"
)

// Broadcaster delivers a frame to every connected session. Implemented by
// ws.Hub. Sends must not block; the world calls this on the tick path.
type Broadcaster interface {
	BroadcastMessage(msg ws.Outbound)
}

// Snapshot is the complete broadcastable view of game state at one instant.
// All fields are value copies taken under the world lock, so a snapshot never
// tears even if the world mutates while it is being encoded.
type Snapshot struct {
	Players       map[string]game.Player  `json:"players" msgpack:"players"`
	Items         []game.Item             `json:"items" msgpack:"items"`
	RemainingTime int                     `json:"remainingTime" msgpack:"remainingTime"`
	Leaderboard   []game.LeaderboardEntry `json:"leaderboard" msgpack:"leaderboard"`
}

// RoundOverPayload announces the winner when the countdown expires.
type RoundOverPayload struct {
	WinnerName  string `json:"winnerName" msgpack:"winnerName"`
	WinnerScore int    `json:"winnerScore" msgpack:"winnerScore"`
}

// World is the single authoritative game state: player registry, live item
// set, and the round lifecycle machine (idle, active, ending). One mutex
// serializes every mutation, whether it comes from a session intent or from
// one of the round's timers. State is small and the tick rate is low, so the
// global lock is deliberate.
type World struct {
	tuning game.Tuning
	bc     Broadcaster

	// secondInterval drives the countdown; only tests shorten it.
	secondInterval time.Duration

	mu         sync.Mutex
	phase      game.Phase
	generation uint64
	remaining  int // whole seconds, meaningful while active
	registry   *game.Registry
	items      []game.Item
	spawner    *game.Spawner
	stopCh     chan struct{} // open while a round goroutine is live
	graceTimer *time.Timer
}

// New creates an idle world broadcasting through bc.
func New(t game.Tuning, bc Broadcaster) *World {
	return &World{
		tuning:         t,
		bc:             bc,
		secondInterval: time.Second,
		phase:          game.PhaseIdle,
		registry:       game.NewRegistry(t.SpawnAreaExtent),
		spawner:        game.NewSpawner(t),
	}
}

// Join registers a player for the given connection identity and returns the
// new record along with a snapshot of the current state. The first join while
// idle starts a round.
func (w *World) Join(id, requestedName string) (game.Player, Snapshot) {
	w.mu.Lock()
	p := *w.registry.Join(id, requestedName)
	if w.phase == game.PhaseIdle {
		w.startRoundLocked()
	}
	snap := w.snapshotLocked()
	w.mu.Unlock()

	slog.Info("player joined", "player", id, "name", p.Name)
	return p, snap
}

// ApplyMove updates a player's position. Unknown identities are dropped
// silently; a move can legitimately arrive after its sender disconnected.
func (w *World) ApplyMove(id string, x, y, z float64) {
	w.mu.Lock()
	w.registry.ApplyMove(id, x, y, z)
	w.mu.Unlock()
}

// Disconnect removes a player. If the registry becomes empty the round is
// cancelled immediately: items cleared, timers dead, back to idle.
func (w *World) Disconnect(id string) {
	w.mu.Lock()
	if w.registry.Get(id) == nil {
		w.mu.Unlock()
		return
	}
	empty := w.registry.Remove(id)
	if empty && w.phase != game.PhaseIdle {
		w.forceIdleLocked()
	}
	w.mu.Unlock()

	slog.Info("player left", "player", id)
}

// Phase returns the current round phase.
func (w *World) Phase() game.Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// RemainingTime returns the countdown in whole seconds.
func (w *World) RemainingTime() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.remaining
}

// ItemCount returns the number of live items.
func (w *World) ItemCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// startRoundLocked begins a new round: bumps the generation so anything still
// scheduled for the previous round becomes a no-op, resets the countdown,
// clears items, zeroes scores, places the first item, and launches the round
// goroutine. Caller must hold w.mu.
func (w *World) startRoundLocked() {
	w.closeStopLocked()
	w.cancelGraceLocked()

	w.generation++
	w.phase = game.PhaseActive
	w.remaining = w.tuning.RoundSeconds()
	w.items = w.items[:0]
	w.registry.ResetScores()

	if it, ok := w.spawner.TrySpawn(len(w.items)); ok {
		w.items = append(w.items, it)
	}

	w.stopCh = make(chan struct{})
	go w.runRound(w.generation, w.stopCh)

	slog.Info("round started", "generation", w.generation, "players", w.registry.Len())
}

// runRound owns the three round timers. Every firing re-checks the captured
// generation under the lock before touching state, so a timer that outlives
// its round cannot affect the next one.
func (w *World) runRound(gen uint64, stop <-chan struct{}) {
	tick := time.NewTicker(w.tuning.TickInterval())
	defer tick.Stop()
	spawn := time.NewTicker(w.tuning.SpawnInterval)
	defer spawn.Stop()
	countdown := time.NewTicker(w.secondInterval)
	defer countdown.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			w.step(gen)
		case <-spawn.C:
			w.spawnItem(gen)
		case <-countdown.C:
			w.countdown(gen)
		}
	}
}

// step runs one simulation tick: collision detection in join order, then a
// consistent snapshot broadcast. Players are processed in join order, so when
// two players are both in range of an item the earliest joiner collects it.
func (w *World) step(gen uint64) {
	w.mu.Lock()
	if gen != w.generation || w.phase != game.PhaseActive {
		w.mu.Unlock()
		return
	}

	for _, p := range w.registry.Players() {
		for i := 0; i < len(w.items); {
			if game.InCollectRange(p, w.items[i], w.tuning.CollisionRadius) {
				p.Score++
				w.items = append(w.items[:i], w.items[i+1:]...)
				continue
			}
			i++
		}
	}

	snap := w.snapshotLocked()
	w.mu.Unlock()

	w.bc.BroadcastMessage(ws.Outbound{Type: ws.TypeState, Data: snap})
}

// spawnItem attempts one item spawn, declining silently at the cap.
func (w *World) spawnItem(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation || w.phase != game.PhaseActive {
		return
	}
	if it, ok := w.spawner.TrySpawn(len(w.items)); ok {
		w.items = append(w.items, it)
	}
}

// countdown decrements the remaining time and ends the round when it reaches
// zero: winner computed under the lock, phase moves to ending, the round
// goroutine is stopped, and the grace timer is armed.
func (w *World) countdown(gen uint64) {
	w.mu.Lock()
	if gen != w.generation || w.phase != game.PhaseActive {
		w.mu.Unlock()
		return
	}

	w.remaining--
	if w.remaining > 0 {
		w.mu.Unlock()
		return
	}
	w.remaining = 0

	name, score := game.ComputeWinner(w.registry.Players())
	w.phase = game.PhaseEnding
	w.closeStopLocked()
	w.graceTimer = time.AfterFunc(w.tuning.GraceDelay, func() { w.afterGrace(gen) })
	w.mu.Unlock()

	slog.Info("round over", "generation", gen, "winner", name, "score", score)
	w.bc.BroadcastMessage(ws.Outbound{
		Type: ws.TypeRoundOver,
		Data: RoundOverPayload{WinnerName: name, WinnerScore: score},
	})
}

// afterGrace fires once the post-round grace delay elapses: a new round
// starts if anyone is still connected, otherwise the world goes idle.
func (w *World) afterGrace(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.generation || w.phase != game.PhaseEnding {
		return
	}
	if w.registry.Len() > 0 {
		w.startRoundLocked()
		return
	}
	w.phase = game.PhaseIdle
	w.items = w.items[:0]
	slog.Info("no players remain, world idle")
}

// forceIdleLocked cancels the round unconditionally: all three round timers
// and the grace timer die together. Caller must hold w.mu.
func (w *World) forceIdleLocked() {
	w.phase = game.PhaseIdle
	w.remaining = 0
	w.items = w.items[:0]
	w.closeStopLocked()
	w.cancelGraceLocked()
	slog.Info("last player left, round cancelled", "generation", w.generation)
}

// closeStopLocked signals the round goroutine to exit. Safe to call twice.
func (w *World) closeStopLocked() {
	if w.stopCh == nil {
		return
	}
	select {
	case <-w.stopCh:
		// already closed
	default:
		close(w.stopCh)
	}
}

func (w *World) cancelGraceLocked() {
	if w.graceTimer != nil {
		w.graceTimer.Stop()
		w.graceTimer = nil
	}
}

// snapshotLocked assembles the broadcast view. Caller must hold w.mu.
func (w *World) snapshotLocked() Snapshot {
	items := make([]game.Item, len(w.items))
	copy(items, w.items)
	return Snapshot{
		Players:       w.registry.Snapshot(),
		Items:         items,
		RemainingTime: w.remaining,
		Leaderboard:   game.TopScores(w.registry.Players(), w.tuning.LeaderboardSize),
	}
}
