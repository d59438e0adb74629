package entity

// AttackHook is an optional per-kind capability invoked once per swing
// when the attack clip reaches the kind's trigger frame. Ranged kinds
// use it to spawn their projectile.
type AttackHook interface {
	OnAttackFrame(e *Enemy, ctx *Context)
}

// UpdateHook is an optional per-kind capability invoked after the core
// AI logic each tick, for auxiliary behavior that does not fit the
// shared state machine.
type UpdateHook interface {
	OnUpdate(e *Enemy, ctx *Context)
}

// Enemy is an AI-driven combat entity built from a kind definition.
type Enemy struct {
	Core

	Kind KindID

	stopDistance float64
	aggroRange   float64
	attackHook   AttackHook
	hookFrame    int
	updateHook   UpdateHook

	// asleep holds the enemy in Idle with all AI suspended until an
	// external trigger wakes it.
	asleep bool

	// hookFired guards the attack hook to one firing per swing.
	hookFired bool
}

// Asleep reports whether the enemy's AI is suspended.
func (e *Enemy) Asleep() bool {
	return e.asleep
}

// Wake resumes the enemy's AI. Waking an awake enemy is a no-op.
func (e *Enemy) Wake() {
	e.asleep = false
}

// Update runs one tick of enemy AI: locked-state resolution, then either
// the in-progress swing or the distance evaluation choosing between
// attack, walk-toward-player, and idle.
func (e *Enemy) Update(ctx *Context) {
	if e.BeginTick(ctx) {
		return
	}

	if e.asleep {
		e.ensureState(StateIdle)
		return
	}

	if e.State() == StateAttack {
		e.runSwing(ctx)
		return
	}

	player := ctx.Player
	if player == nil || player.State() == StateDie {
		e.ensureState(StateIdle)
		e.runUpdateHook(ctx)
		return
	}

	dist := e.Pos.DistanceTo(player.Pos)
	switch {
	case dist <= e.cfg.AttackRange && e.CooldownRemaining() == 0:
		e.SetFacing(player.Pos.Sub(e.Pos))
		e.hookFired = false
		e.EnterAttack()
	case dist > e.stopDistance && dist <= e.aggroRange:
		dir := player.Pos.Sub(e.Pos).Normalized()
		e.SetFacing(dir)
		e.ensureState(StateWalk)
		step := e.Speed() * ctx.DT
		e.TryMove(ctx.Grid, dir.X*step, dir.Y*step)
	default:
		e.ensureState(StateIdle)
	}

	e.runUpdateHook(ctx)
}

// runSwing handles one tick of an in-progress attack: the per-kind hook
// at its trigger frame, the melee hit window, and the exit back to Idle.
func (e *Enemy) runSwing(ctx *Context) {
	if e.attackHook != nil && !e.hookFired && e.AttackFrame() >= e.hookFrame {
		e.hookFired = true
		e.attackHook.OnAttackFrame(e, ctx)
	}

	if e.TryHitWindow() && ctx.Player != nil {
		if e.MeleeHits(&ctx.Player.Core) {
			ctx.Player.TakeDamage(e.AttackDamage(), &e.Pos)
		}
	}

	e.FinishAttackIfDone()
}

func (e *Enemy) runUpdateHook(ctx *Context) {
	if e.updateHook != nil {
		e.updateHook.OnUpdate(e, ctx)
	}
}
