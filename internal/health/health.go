// Package health implements the per-turn health tick algorithm applied to
// the player and every NPC: apply queued effects in order, report each
// change, and stop the instant an entity's hit points reach zero.
package health

import "github.com/pygmy-twylyte/amble-go/internal/worldmodel"

// ChangeKind discriminates TickChange.
type ChangeKind int

const (
	ChangeHarm ChangeKind = iota
	ChangeHeal
)

// TickChange describes one effect's outcome during a tick, for the turn
// loop to translate into a view item.
type TickChange struct {
	Kind   ChangeKind
	Amount int
	Cause  string
}

// TickResult is the outcome of ticking a single entity's HealthState once.
type TickResult struct {
	Changes    []TickChange
	DeathCause string // non-empty if this tick killed the entity
}

// Tick applies every queued effect on hs in order, saturating damage at
// zero and capping heals at MaxHP. Over-time effects with more than one
// use left are decremented and re-queued; the rest are dropped. The
// instant CurrentHP reaches zero, remaining effects are discarded
// unapplied and the death cause is recorded — a later tick call on an
// already-dead entity is a no-op returning no changes.
func Tick(hs *worldmodel.HealthState) TickResult {
	if hs.IsDead() {
		return TickResult{}
	}

	pending := hs.Effects
	hs.Effects = nil

	var result TickResult
	for _, effect := range pending {
		amount, kind, requeue := applyOne(hs, effect)
		result.Changes = append(result.Changes, TickChange{Kind: kind, Amount: amount, Cause: effect.Cause})

		if hs.CurrentHP == 0 {
			hs.DeathCause = effect.Cause
			result.DeathCause = effect.Cause
			return result
		}

		if requeue != nil {
			hs.Effects = append(hs.Effects, *requeue)
		}
	}
	return result
}

// applyOne applies a single effect to hs and returns the effect's declared
// magnitude (not the saturated delta actually applied to CurrentHP — a
// dot that finishes off a nearly-dead entity still reports its full
// declared amount), whether it was harm or heal, and the decremented copy
// of the effect to re-queue (nil if it should be dropped).
func applyOne(hs *worldmodel.HealthState, effect worldmodel.HealthEffect) (int, ChangeKind, *worldmodel.HealthEffect) {
	switch effect.Kind {
	case worldmodel.EffectInstantDamage:
		applyDamage(hs, effect.Amount)
		return effect.Amount, ChangeHarm, nil

	case worldmodel.EffectInstantHeal:
		applyHeal(hs, effect.Amount)
		return effect.Amount, ChangeHeal, nil

	case worldmodel.EffectDamageOverTime:
		applyDamage(hs, effect.Amount)
		return effect.Amount, ChangeHarm, requeue(effect)

	case worldmodel.EffectHealOverTime:
		applyHeal(hs, effect.Amount)
		return effect.Amount, ChangeHeal, requeue(effect)

	default:
		return 0, ChangeHarm, nil
	}
}

func applyDamage(hs *worldmodel.HealthState, amount int) {
	hs.CurrentHP -= amount
	if hs.CurrentHP < 0 {
		hs.CurrentHP = 0
	}
}

func applyHeal(hs *worldmodel.HealthState, amount int) {
	hs.CurrentHP += amount
	if hs.CurrentHP > hs.MaxHP {
		hs.CurrentHP = hs.MaxHP
	}
}

// requeue returns a decremented copy of effect if it has further uses
// left, or nil if this was its last application.
func requeue(effect worldmodel.HealthEffect) *worldmodel.HealthEffect {
	if effect.TimesLeft <= 1 {
		return nil
	}
	next := effect
	next.TimesLeft--
	return &next
}
