package engine

import "github.com/vovakirdan/tui-shooter/internal/core"

func (e *Engine) playerBox(p Player) core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, e.cfg.Player.Width, e.cfg.Player.Height)
}

func (e *Engine) enemyBox(en Enemy) core.Box {
	return core.NewBox(en.Pos.X, en.Pos.Y, e.cfg.Enemies.Width, e.cfg.Enemies.Height)
}

func (e *Engine) bulletBox(b Bullet) core.Box {
	return core.NewBox(b.Pos.X, b.Pos.Y, e.cfg.Bullets.Width, e.cfg.Bullets.Height)
}

func (e *Engine) enemyBulletBox(b Bullet) core.Box {
	return core.NewBox(b.Pos.X, b.Pos.Y, e.cfg.EnemyBullets.Width, e.cfg.EnemyBullets.Height)
}

// resolveCollisions runs one full pass in fixed order: player vs enemies,
// player vs enemy bullets, player bullets vs enemies. Removed entities are
// marked during the pass and compacted at the end of each stage.
// Scoring stops as soon as the player dies.
func (e *Engine) resolveCollisions(s *State) {
	e.resolvePlayer(s)
	if !s.Alive() {
		return
	}
	e.resolveBullets(s)
}

// resolvePlayer applies damage to the player from overlapping enemies and
// enemy bullets. It is also run on its own right after the player moves.
func (e *Engine) resolvePlayer(s *State) {
	if !s.Alive() {
		return
	}

	pb := e.playerBox(s.Player)

	if !s.Player.InDefense {
		for _, en := range s.Enemies {
			if pb.Intersects(e.enemyBox(en)) {
				e.damagePlayer(s, "enemy contact")
			}
		}
	}

	// Defense blocks enemy bullets without consuming them.
	if s.Player.InDefense || len(s.EnemyBullets) == 0 {
		return
	}
	hit := make(map[EntityID]bool)
	for _, b := range s.EnemyBullets {
		if !s.Alive() {
			break
		}
		if pb.Intersects(e.enemyBulletBox(b)) {
			hit[b.ID] = true
			e.damagePlayer(s, "shot down")
		}
	}
	if len(hit) > 0 {
		s.EnemyBullets = filter(s.EnemyBullets, func(b Bullet) bool { return !hit[b.ID] })
	}
}

// resolveBullets matches each player bullet against the first overlapping live
// enemy in list order. The bullet is consumed on any hit.
func (e *Engine) resolveBullets(s *State) {
	if len(s.Bullets) == 0 || len(s.Enemies) == 0 {
		return
	}

	spent := make(map[EntityID]bool)
	for _, b := range s.Bullets {
		bb := e.bulletBox(b)
		for i := range s.Enemies {
			en := &s.Enemies[i]
			if en.HP <= 0 || !bb.Intersects(e.enemyBox(*en)) {
				continue
			}
			spent[b.ID] = true
			en.HP--
			if en.HP == 0 {
				e.killEnemy(s, *en)
			}
			break
		}
	}

	if len(spent) == 0 {
		return
	}
	s.Bullets = filter(s.Bullets, func(b Bullet) bool { return !spent[b.ID] })
	s.Enemies = filter(s.Enemies, func(en Enemy) bool { return en.HP > 0 })
}

func (e *Engine) killEnemy(s *State, en Enemy) {
	s.DeadEnemyCount++
	s.Score += e.cfg.Scoring.KillAward
	e.spawnExplosion(s, en.Pos, e.cfg.Explosions.KillLifetime)
}

// damagePlayer removes one health point and ends the game at zero.
func (e *Engine) damagePlayer(s *State, reason string) {
	if s.Player.Health <= 0 {
		return
	}
	s.Player.Health--
	if s.Player.Health == 0 {
		e.spawnExplosion(s, s.Player.Pos, e.cfg.Explosions.ContactLifetime)
		e.endGame(s, reason)
	}
}

func (e *Engine) spawnExplosion(s *State, pos Vec2, lifetime int) {
	if lifetime <= 0 {
		return
	}
	s.Explosions = append(s.Explosions, Explosion{ID: s.newID(), Pos: pos, Lifetime: lifetime})
}
