// Package term is the tcell-backed terminal frontend for the keysnipe
// demo viewer. It renders a read-only document with snipe highlights and
// adapts terminal key events to the engine's key model.
package term
