package engine

// Advance runs one simulation tick: gravity, movement, expiry, collisions,
// the left-boundary check, wave respawn, the timer and achievements.
// After game over only explosions keep aging.
func (e *Engine) Advance(s *State) {
	if !s.Alive() {
		e.ageExplosions(s)
		e.enforce(s)
		return
	}

	e.applyGravity(s)
	e.advanceEntities(s)
	e.expire(s)
	e.resolveCollisions(s)

	if s.Alive() {
		e.checkBoundary(s)
	}
	if s.Alive() && len(s.Enemies) == 0 {
		e.spawnWave(s)
	}

	s.Timer++
	e.evaluateAchievements(s)
	e.enforce(s)
}

// EnemyShoot fires one enemy bullet from every live enemy's position.
func (e *Engine) EnemyShoot(s *State) {
	if !s.Alive() {
		return
	}
	for _, en := range s.Enemies {
		s.EnemyBullets = append(s.EnemyBullets, Bullet{
			ID:       s.newID(),
			Pos:      en.Pos,
			Lifetime: e.cfg.EnemyBullets.Lifetime,
		})
	}
	e.enforce(s)
}

// WaveCheck spawns the respawn wave when no enemies remain.
func (e *Engine) WaveCheck(s *State) {
	if !s.Alive() || len(s.Enemies) > 0 {
		return
	}
	e.spawnWave(s)
	e.enforce(s)
}

func (e *Engine) applyGravity(s *State) {
	p := &s.Player
	if p.OnGround {
		return
	}
	p.Pos.Y += p.VelY
	p.VelY -= e.cfg.Physics.Gravity
	if p.Pos.Y <= 0 {
		p.Pos.Y = 0
		p.VelY = 0
		p.OnGround = true
	}
}

func (e *Engine) advanceEntities(s *State) {
	speed := e.cfg.Physics.BulletSpeed
	for i := range s.Bullets {
		s.Bullets[i].Pos.X += speed
		s.Bullets[i].Lifetime--
	}
	for i := range s.EnemyBullets {
		s.EnemyBullets[i].Pos.X -= speed
		s.EnemyBullets[i].Lifetime--
	}

	enemySpeed := e.difficulty.Speed(e.cfg.Physics.EnemySpeed, s.Score, s.Timer)
	for i := range s.Enemies {
		s.Enemies[i].Pos.X -= enemySpeed
	}
	for i := range s.Explosions {
		s.Explosions[i].Lifetime--
	}
}

func (e *Engine) expire(s *State) {
	s.Bullets = filter(s.Bullets, func(b Bullet) bool { return b.Lifetime > 0 })
	s.EnemyBullets = filter(s.EnemyBullets, func(b Bullet) bool { return b.Lifetime > 0 })
	s.Explosions = filter(s.Explosions, func(x Explosion) bool { return x.Lifetime > 0 })
}

func (e *Engine) ageExplosions(s *State) {
	for i := range s.Explosions {
		s.Explosions[i].Lifetime--
	}
	s.Explosions = filter(s.Explosions, func(x Explosion) bool { return x.Lifetime > 0 })
}

// checkBoundary ends the game when an enemy passes the left edge.
func (e *Engine) checkBoundary(s *State) {
	for _, en := range s.Enemies {
		if en.Pos.X < 0 {
			s.Player.Health = 0
			e.endGame(s, "enemy breached the line")
			return
		}
	}
}

// spawnWave places the respawn template just past the right edge of the world.
func (e *Engine) spawnWave(s *State) {
	for _, spawn := range e.cfg.Waves.Respawn {
		s.Enemies = append(s.Enemies, Enemy{
			ID:  s.newID(),
			Pos: Vec2{X: e.cfg.World.Width + spawn.X, Y: spawn.Y},
			HP:  spawn.HP,
		})
	}
	s.Wave++
	e.logger.Debug("wave spawned",
		"wave", s.Wave,
		"enemies", len(e.cfg.Waves.Respawn),
		"level", e.difficulty.Level(s.Score, s.Timer),
	)
}

// endGame moves the session to PhaseGameOver and commits the best score.
// It runs at most once per session.
func (e *Engine) endGame(s *State, reason string) {
	if s.Phase == PhaseGameOver {
		return
	}
	s.Player.Alive = false
	s.Phase = PhaseGameOver
	s.GameOverReason = reason

	e.logger.Info("game over",
		"reason", reason,
		"score", s.Score,
		"kills", s.DeadEnemyCount,
		"ticks", s.Timer,
	)
	e.commitBestScore(s)
}

// commitBestScore re-reads the stored best before writing, since other
// sessions may share the store and raise it after NewState.
func (e *Engine) commitBestScore(s *State) {
	key := e.cfg.Scoring.BestScoreKey
	if stored, ok, err := e.store.GetInt(key); err != nil {
		e.logger.Warn("could not read best score", "error", err)
	} else if ok && stored > s.BestScore {
		s.BestScore = stored
	}
	if s.Score <= s.BestScore {
		return
	}
	s.BestScore = s.Score

	if ms, ok := e.store.(MaxStore); ok {
		best, err := ms.MaxInt(key, s.Score)
		if err != nil {
			e.logger.Warn("could not persist best score", "error", err)
			return
		}
		s.BestScore = max(s.BestScore, best)
		return
	}
	if err := e.store.SetInt(key, s.BestScore); err != nil {
		e.logger.Warn("could not persist best score", "error", err)
	}
}
