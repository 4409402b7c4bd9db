package snipe

// lastSnipe is the repeat record: everything needed to re-execute the
// most recent non-repeat search. Overwritten wholesale per invocation;
// replays never write it back, so a repeat cannot overwrite the record
// with itself.
type lastSnipe struct {
	// count is the signed count as executed (sign = direction).
	count int

	// keys is the collected key sequence.
	keys []rune

	// consume is the inclusive/exclusive policy of the recorded motion.
	consume bool

	// keyCount is the motion's required key count.
	keyCount int

	// repeatKeys records whether the transient ;/, bindings were active.
	repeatKeys bool
}

// record stores the repeat state for a completed non-repeat invocation.
func (e *Engine) record(count int, keys []rune, consume bool, keyCount int) {
	stored := make([]rune, len(keys))
	copy(stored, keys)
	e.last = &lastSnipe{
		count:      count,
		keys:       stored,
		consume:    consume,
		keyCount:   keyCount,
		repeatKeys: e.cfg.RepeatKeys,
	}
}

// CanRepeat returns true if a prior search is recorded.
func (e *Engine) CanRepeat() bool {
	return e.last != nil
}

// RepeatKeysActive returns true if the last snipe was recorded with the
// transient repeat bindings enabled.
func (e *Engine) RepeatKeysActive() bool {
	return e.last != nil && e.last.repeatKeys
}

// RepeatLast re-executes the recorded search in its original direction,
// scaled by multiplier (0 and 1 both mean once).
func (e *Engine) RepeatLast(multiplier int) error {
	return e.replay(multiplier, false)
}

// RepeatLastReverse re-executes the recorded search in the opposite
// direction.
func (e *Engine) RepeatLastReverse(multiplier int) error {
	return e.replay(multiplier, true)
}

func (e *Engine) replay(multiplier int, reversed bool) error {
	if e.last == nil {
		e.say("nothing to repeat")
		return ErrNothingToRepeat
	}
	if multiplier == 0 {
		multiplier = 1
	}

	count := e.last.count * multiplier
	if reversed {
		count = -count
	}

	pats := e.resolveKeys(e.last.keys)
	_, err := e.seek(count, pats, e.last.consume, true)
	if err != nil {
		e.say(err.Error())
	}
	return err
}
