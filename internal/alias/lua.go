package alias

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// aliasFn is the global function an alias script must define.
// It receives the typed character as a one-character string and returns a
// pattern fragment, or nil for no alias.
const aliasFn = "alias"

// Script resolves aliases by calling a user-provided Lua function.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes lookups.
// Only the base, table, string, and math libraries are opened, so scripts
// cannot touch the file system or spawn processes.
type Script struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// LoadScript creates a resolver from a Lua file defining alias(char).
func LoadScript(path string) (*Script, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("alias: loading script: %w", err)
	}

	fn := L.GetGlobal(aliasFn)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("alias: script must define function %q", aliasFn)
	}

	return &Script{state: L}, nil
}

// LoadScriptString creates a resolver from Lua source text.
func LoadScriptString(src string) (*Script, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("alias: loading script: %w", err)
	}

	fn := L.GetGlobal(aliasFn)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, fmt.Errorf("alias: script must define function %q", aliasFn)
	}

	return &Script{state: L}, nil
}

// openSafeLibraries opens only side-effect-free Lua standard libraries.
// io, os, debug, and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// Lookup implements Resolver. Script errors and non-string returns are
// treated as "no alias" so a broken script degrades to literal matching.
func (s *Script) Lookup(r rune) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", false
	}

	err := s.state.CallByParam(lua.P{
		Fn:      s.state.GetGlobal(aliasFn),
		NRet:    1,
		Protect: true,
	}, lua.LString(string(r)))
	if err != nil {
		return "", false
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)

	str, ok := ret.(lua.LString)
	if !ok || str == "" {
		return "", false
	}
	return string(str), true
}

// Close releases the Lua state. Lookup returns no aliases afterwards.
func (s *Script) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.state.Close()
	s.closed = true
	return nil
}
