package entity

// ProjectileSpawnHook is the attack hook for ranged kinds: when the
// attack clip reaches its trigger frame, spawn one projectile aimed at
// the player's position at that moment. The direction locks at spawn.
type ProjectileSpawnHook struct {
	Speed  float64 // Pixels per tick
	Damage int
	Life   float64 // Seconds
	Radius float64
	Sprite string
}

// OnAttackFrame spawns the projectile through the tick context so the
// scheduler registers it between ticks.
func (h ProjectileSpawnHook) OnAttackFrame(e *Enemy, ctx *Context) {
	dir := e.Facing
	if ctx.Player != nil {
		dir = ctx.Player.Pos.Sub(e.Pos)
	}
	ctx.SpawnProjectile(NewProjectile(e.Pos, dir, h.Speed, h.Damage, h.Life, h.Radius, h.Sprite))
}
