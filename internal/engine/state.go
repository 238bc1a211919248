package engine

import (
	"fmt"
	"math"
	"time"
)

// EntityID is a stable opaque identifier assigned to every spawned entity.
type EntityID uint64

// Vec2 is a position or velocity in world units. Y grows upward, 0 is the ground.
type Vec2 struct {
	X, Y float64
}

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Player is the single player-controlled entity.
type Player struct {
	Pos       Vec2
	VelY      float64
	OnGround  bool
	Health    int
	Alive     bool
	InDefense bool // Immune to damage while set
}

// Enemy advances toward the player and fires enemy bullets.
type Enemy struct {
	ID  EntityID
	Pos Vec2
	HP  int
}

// Bullet is a projectile owned by either the player or an enemy.
type Bullet struct {
	ID       EntityID
	Pos      Vec2
	Lifetime int // Remaining ticks
}

// Explosion is a cosmetic effect with no collision.
type Explosion struct {
	ID       EntityID
	Pos      Vec2
	Lifetime int
}

// Achievement tracks one threshold trigger for the current session.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Unlocked    bool
	UnlockedAt  *time.Time
}

// State is the authoritative game state for one session.
// The host owns it and passes it to every Engine call; the engine keeps no
// references between calls.
type State struct {
	Player         Player
	Enemies        []Enemy
	Bullets        []Bullet
	EnemyBullets   []Bullet
	Explosions     []Explosion
	Score          int
	BestScore      int
	DeadEnemyCount int
	Timer          int // Elapsed ticks this session
	Wave           int // Waves spawned this session, starting at 1
	Phase          Phase
	GameOverReason string
	Achievements   []Achievement

	nextID EntityID
}

// Alive reports whether the session is still being played.
func (s *State) Alive() bool {
	return s.Phase == PhasePlaying
}

func (s *State) newID() EntityID {
	s.nextID++
	return s.nextID
}

// Snapshot is an immutable deep copy of a State used for rendering and tests.
type Snapshot struct {
	Player         Player
	Enemies        []Enemy
	Bullets        []Bullet
	EnemyBullets   []Bullet
	Explosions     []Explosion
	Score          int
	BestScore      int
	DeadEnemyCount int
	Timer          int
	Wave           int
	Phase          Phase
	GameOverReason string
	Achievements   []Achievement
}

// Snapshot returns a deep copy of the state.
func (s *State) Snapshot() Snapshot {
	achievements := make([]Achievement, len(s.Achievements))
	for i, a := range s.Achievements {
		achievements[i] = a
		if a.UnlockedAt != nil {
			at := *a.UnlockedAt
			achievements[i].UnlockedAt = &at
		}
	}

	return Snapshot{
		Player:         s.Player,
		Enemies:        append([]Enemy(nil), s.Enemies...),
		Bullets:        append([]Bullet(nil), s.Bullets...),
		EnemyBullets:   append([]Bullet(nil), s.EnemyBullets...),
		Explosions:     append([]Explosion(nil), s.Explosions...),
		Score:          s.Score,
		BestScore:      s.BestScore,
		DeadEnemyCount: s.DeadEnemyCount,
		Timer:          s.Timer,
		Wave:           s.Wave,
		Phase:          s.Phase,
		GameOverReason: s.GameOverReason,
		Achievements:   achievements,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Achievement timestamps are excluded since they come from the wall clock.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Timer) //#nosec G115 -- hash computation
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixB := func(b bool) {
		if b {
			mix(1)
		} else {
			mix(0)
		}
	}

	mixF(snap.Player.Pos.X)
	mixF(snap.Player.Pos.Y)
	mixF(snap.Player.VelY)
	mixB(snap.Player.OnGround)
	mixB(snap.Player.Alive)
	mixB(snap.Player.InDefense)
	mix(uint64(snap.Player.Health))   //#nosec G115 -- hash computation
	mix(uint64(snap.Score))           //#nosec G115 -- hash computation
	mix(uint64(snap.BestScore))       //#nosec G115 -- hash computation
	mix(uint64(snap.DeadEnemyCount))  //#nosec G115 -- hash computation
	mix(uint64(snap.Wave))            //#nosec G115 -- hash computation
	mix(uint64(snap.Phase))           //#nosec G115 -- hash computation

	mix(uint64(len(snap.Enemies)))
	for _, e := range snap.Enemies {
		mix(uint64(e.ID))
		mixF(e.Pos.X)
		mixF(e.Pos.Y)
		mix(uint64(e.HP)) //#nosec G115 -- hash computation
	}
	for _, list := range [][]Bullet{snap.Bullets, snap.EnemyBullets} {
		mix(uint64(len(list)))
		for _, b := range list {
			mix(uint64(b.ID))
			mixF(b.Pos.X)
			mixF(b.Pos.Y)
			mix(uint64(b.Lifetime)) //#nosec G115 -- hash computation
		}
	}
	mix(uint64(len(snap.Explosions)))
	for _, x := range snap.Explosions {
		mix(uint64(x.ID))
		mixF(x.Pos.X)
		mixF(x.Pos.Y)
		mix(uint64(x.Lifetime)) //#nosec G115 -- hash computation
	}
	for _, a := range snap.Achievements {
		mixB(a.Unlocked)
	}
	return h
}

// Validate checks the state invariants and returns the first violation
// wrapped in ErrInvariant.
func (s *State) Validate(maxHealth int) error {
	p := s.Player
	if p.Health < 0 || p.Health > maxHealth {
		return fmt.Errorf("%w: player health %d outside [0, %d]", ErrInvariant, p.Health, maxHealth)
	}
	if (p.Health == 0) == p.Alive {
		return fmt.Errorf("%w: health %d with alive=%v", ErrInvariant, p.Health, p.Alive)
	}
	if p.Alive != (s.Phase == PhasePlaying) {
		return fmt.Errorf("%w: alive=%v in phase %s", ErrInvariant, p.Alive, s.Phase)
	}
	for _, e := range s.Enemies {
		if e.HP <= 0 {
			return fmt.Errorf("%w: enemy %d in live set with hp %d", ErrInvariant, e.ID, e.HP)
		}
	}
	for _, b := range s.Bullets {
		if b.Lifetime <= 0 {
			return fmt.Errorf("%w: bullet %d persisted with lifetime %d", ErrInvariant, b.ID, b.Lifetime)
		}
	}
	for _, b := range s.EnemyBullets {
		if b.Lifetime <= 0 {
			return fmt.Errorf("%w: enemy bullet %d persisted with lifetime %d", ErrInvariant, b.ID, b.Lifetime)
		}
	}
	for _, x := range s.Explosions {
		if x.Lifetime <= 0 {
			return fmt.Errorf("%w: explosion %d persisted with lifetime %d", ErrInvariant, x.ID, x.Lifetime)
		}
	}
	if s.Score < 0 || s.BestScore < 0 || s.DeadEnemyCount < 0 || s.Timer < 0 {
		return fmt.Errorf("%w: negative counter", ErrInvariant)
	}
	return nil
}
