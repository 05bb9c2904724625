package systems

import (
	"dungeon-arena/internal/domain"
	"dungeon-arena/internal/input"
)

// UpdatePlayer - один тик игрока: таймеры статусов, отбрасывание, рывок,
// удар, движение и подбор лута.
func UpdatePlayer(w *domain.World, in *input.State, prog domain.Progress) {
	p := w.Player
	if !p.Alive {
		return
	}

	tickStatus(w, p)

	switch {
	case StepPushback(w.Grid, w.Tile, &p.Body, &p.Push):
		// отбрасывание заменяет весь тик
	case p.Dash.Active:
		stepDash(w, p)
	default:
		normalTick(w, p, in, prog)
	}

	CheckLootPickup(w)
}

// tickStatus старит окна неуязвимости и зелья дальности. Они идут каждый тик,
// даже во время отбрасывания или рывка.
func tickStatus(w *domain.World, p *domain.Player) {
	if p.Invincible > 0 {
		p.Invincible--
	}

	if p.RangeTimer > 0 {
		p.RangeTimer--
		if p.RangeTimer == 0 {
			p.Range = p.BaseRange
			w.AddText(p.X, p.Y, "Range Normal", domain.ColorWhite)
		}
	}
}

func stepDash(w *domain.World, p *domain.Player) {
	dx, dy := p.Facing.Delta()
	TryMove(w.Grid, w.Tile, &p.Body, p.X+dx*domain.DashSpeed, p.Y+dy*domain.DashSpeed)

	p.Dash.Counter++
	if p.Dash.Counter > domain.DashDuration {
		p.Dash.Active = false
		p.Dash.Counter = 0
	}
}

func normalTick(w *domain.World, p *domain.Player, in *input.State, prog domain.Progress) {
	if p.Dash.Cooldown > 0 {
		p.Dash.Cooldown--
	}

	held := in.Held()

	if held.Has(input.Dash) && p.Dash.Cooldown == 0 {
		p.Dash.Active = true
		p.Dash.Counter = 0
		p.Dash.Cooldown = domain.DashCooldown
		p.SetInvincible(domain.DashDuration)
	}

	if in.JustPressed(input.Attack) && !p.Attack.Active {
		p.Attack.Active = true
		p.Attack.Counter = 0
		PlayerAttack(w, prog)
	}

	if p.Attack.Active {
		p.Attack.Counter++
		if p.Attack.Counter > p.Attack.Duration {
			p.Attack.Active = false
			p.Attack.Counter = 0
		}
	}

	nx, ny := p.X, p.Y
	moving := false
	if held.Has(input.Up) {
		p.Facing = domain.FacingUp
		ny -= p.Speed
		moving = true
	}
	if held.Has(input.Down) {
		p.Facing = domain.FacingDown
		ny += p.Speed
		moving = true
	}
	if held.Has(input.Left) {
		p.Facing = domain.FacingLeft
		nx -= p.Speed
		moving = true
	}
	if held.Has(input.Right) {
		p.Facing = domain.FacingRight
		nx += p.Speed
		moving = true
	}

	if moving {
		TryMove(w.Grid, w.Tile, &p.Body, nx, ny)
	}
}
