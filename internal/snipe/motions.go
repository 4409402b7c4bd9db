package snipe

// Do executes one snipe motion: collect keys, search, move the cursor.
// An aborted collection is not an error; the user cancelled and no
// motion happens. A confirm before any key re-runs the last recorded
// sequence in this motion's direction, using the repeat scope.
func (e *Engine) Do(req Request) error {
	forward, magnitude := req.normalize()

	keys, status := e.collect(req.KeyCount, forward, magnitude)
	if status == collectAbort {
		return nil
	}

	count := magnitude
	if !forward {
		count = -count
	}

	if status == collectRepeat {
		if e.last == nil {
			e.say("nothing to repeat")
			return ErrNothingToRepeat
		}
		_, err := e.seek(count, e.resolveKeys(e.last.keys), req.Consume, true)
		if err != nil {
			e.say(err.Error())
		}
		return err
	}

	// Every fresh invocation overwrites the repeat record, found or not,
	// so a failed snipe can still be retried with ; after the scope
	// situation changes.
	e.record(count, keys, req.Consume, req.KeyCount)

	_, err := e.seek(count, e.resolveKeys(keys), req.Consume, false)
	if err != nil {
		e.say(err.Error())
	}
	return err
}

// Snipe is the two-character inclusive forward motion (s).
func (e *Engine) Snipe(count int) error {
	return e.Do(Request{KeyCount: 2, Forward: true, Count: count, Consume: true})
}

// SnipeReverse is the two-character inclusive backward motion (S).
func (e *Engine) SnipeReverse(count int) error {
	return e.Do(Request{KeyCount: 2, Forward: false, Count: count, Consume: true})
}

// SnipeTill is the two-character exclusive forward motion (x).
func (e *Engine) SnipeTill(count int) error {
	return e.Do(Request{KeyCount: 2, Forward: true, Count: count, Consume: false})
}

// SnipeTillReverse is the two-character exclusive backward motion (X).
func (e *Engine) SnipeTillReverse(count int) error {
	return e.Do(Request{KeyCount: 2, Forward: false, Count: count, Consume: false})
}

// Find is the one-character inclusive forward motion (f).
func (e *Engine) Find(count int) error {
	return e.Do(Request{KeyCount: 1, Forward: true, Count: count, Consume: true})
}

// FindReverse is the one-character inclusive backward motion (F).
func (e *Engine) FindReverse(count int) error {
	return e.Do(Request{KeyCount: 1, Forward: false, Count: count, Consume: true})
}

// Till is the one-character exclusive forward motion (t).
func (e *Engine) Till(count int) error {
	return e.Do(Request{KeyCount: 1, Forward: true, Count: count, Consume: false})
}

// TillReverse is the one-character exclusive backward motion (T).
func (e *Engine) TillReverse(count int) error {
	return e.Do(Request{KeyCount: 1, Forward: false, Count: count, Consume: false})
}
