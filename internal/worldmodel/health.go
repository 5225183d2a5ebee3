package worldmodel

// HealthEffectKind discriminates HealthEffect.
type HealthEffectKind int

const (
	EffectInstantDamage HealthEffectKind = iota
	EffectInstantHeal
	EffectDamageOverTime
	EffectHealOverTime
)

// HealthEffect is a single queued health modifier. Over-time effects carry
// a TimesLeft counter that Tick decrements each turn it is applied.
type HealthEffect struct {
	Kind      HealthEffectKind
	Cause     string
	Amount    int
	TimesLeft int // meaningful only for the two *OverTime kinds
}

// InstantDamage returns a one-shot damage effect attributed to cause.
func InstantDamage(amount int, cause string) HealthEffect {
	return HealthEffect{Kind: EffectInstantDamage, Amount: amount, Cause: cause}
}

// InstantHeal returns a one-shot heal effect attributed to cause.
func InstantHeal(amount int, cause string) HealthEffect {
	return HealthEffect{Kind: EffectInstantHeal, Amount: amount, Cause: cause}
}

// DamageOverTime returns a repeating damage effect that fires timesLeft
// more ticks, attributed to cause.
func DamageOverTime(amount, timesLeft int, cause string) HealthEffect {
	return HealthEffect{Kind: EffectDamageOverTime, Amount: amount, TimesLeft: timesLeft, Cause: cause}
}

// HealOverTime returns a repeating heal effect that fires timesLeft more
// ticks, attributed to cause.
func HealOverTime(amount, timesLeft int, cause string) HealthEffect {
	return HealthEffect{Kind: EffectHealOverTime, Amount: amount, TimesLeft: timesLeft, Cause: cause}
}

// HealthState tracks a living entity's hit points and queued effects.
type HealthState struct {
	MaxHP      int
	CurrentHP  int
	Effects    []HealthEffect
	DeathCause string // non-empty once CurrentHP has reached 0
}

// NewHealthState returns a full-health state with no queued effects.
func NewHealthState(maxHP int) HealthState {
	return HealthState{MaxHP: maxHP, CurrentHP: maxHP}
}

// IsDead reports whether this entity has died (current_hp reached 0 on a
// past tick).
func (h *HealthState) IsDead() bool { return h.DeathCause != "" }

// Queue appends an effect to the entity's pending effect list.
func (h *HealthState) Queue(effect HealthEffect) {
	h.Effects = append(h.Effects, effect)
}

// RemoveByCause drops every queued effect whose Cause matches, used by
// the RemoveHealthEffect action.
func (h *HealthState) RemoveByCause(cause string) {
	kept := h.Effects[:0]
	for _, e := range h.Effects {
		if e.Cause != cause {
			kept = append(kept, e)
		}
	}
	h.Effects = kept
}
