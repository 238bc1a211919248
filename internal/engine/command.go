package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// CommandKind identifies a player command.
type CommandKind int

const (
	CmdMoveLeft CommandKind = iota + 1
	CmdMoveRight
	CmdJump
	CmdShoot
	CmdToggleDefense
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdJump:
		return "jump"
	case CmdShoot:
		return "shoot"
	case CmdToggleDefense:
		return "toggle-defense"
	default:
		return fmt.Sprintf("command(%d)", int(k))
	}
}

// Command is a discrete player intent applied between ticks.
type Command struct {
	Kind   CommandKind
	Amount float64 // Speed for moves, impulse for jumps; 0 selects the configured default
	On     bool    // Target value for ToggleDefense
}

// MoveLeft moves the player left by speed world units.
func MoveLeft(speed float64) Command { return Command{Kind: CmdMoveLeft, Amount: speed} }

// MoveRight moves the player right by speed world units.
func MoveRight(speed float64) Command { return Command{Kind: CmdMoveRight, Amount: speed} }

// Jump starts a jump with the given upward velocity.
func Jump(impulse float64) Command { return Command{Kind: CmdJump, Amount: impulse} }

// Shoot fires one player bullet.
func Shoot() Command { return Command{Kind: CmdShoot} }

// ToggleDefense turns defense mode on or off.
func ToggleDefense(on bool) Command { return Command{Kind: CmdToggleDefense, On: on} }

// Apply executes a command against the state.
// Movement, jumping and shooting are rejected with ErrGameOver once the player
// is dead; a rejected command leaves the state untouched.
func (e *Engine) Apply(s *State, cmd Command) error {
	switch cmd.Kind {
	case CmdToggleDefense:
		s.Player.InDefense = cmd.On
		return nil
	case CmdMoveLeft, CmdMoveRight, CmdJump, CmdShoot:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd.Kind)
	}

	if !s.Alive() {
		return fmt.Errorf("%w: %s rejected", ErrGameOver, cmd.Kind)
	}

	switch cmd.Kind {
	case CmdMoveLeft:
		e.move(s, -e.amountOr(cmd.Amount, e.cfg.Player.MoveSpeed))
	case CmdMoveRight:
		e.move(s, e.amountOr(cmd.Amount, e.cfg.Player.MoveSpeed))
	case CmdJump:
		if s.Player.OnGround {
			s.Player.VelY = e.amountOr(cmd.Amount, e.cfg.Player.JumpImpulse)
			s.Player.OnGround = false
		}
	case CmdShoot:
		s.Bullets = append(s.Bullets, Bullet{
			ID: s.newID(),
			Pos: Vec2{
				X: s.Player.Pos.X + e.cfg.Bullets.OffsetX,
				Y: s.Player.Pos.Y + e.cfg.Bullets.OffsetY,
			},
			Lifetime: e.cfg.Bullets.Lifetime,
		})
	}

	e.enforce(s)
	return nil
}

func (e *Engine) move(s *State, dx float64) {
	s.Player.Pos.X = e.clampX(s.Player.Pos.X + dx)
	e.resolvePlayer(s)
}

// clampX keeps the player's left edge inside [0, WorldWidth - PlayerWidth].
func (e *Engine) clampX(x float64) float64 {
	return core.ClampF(x, 0, e.cfg.World.Width-e.cfg.Player.Width)
}

func (e *Engine) amountOr(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
