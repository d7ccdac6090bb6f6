package lua

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/jdlouhy/termclip/internal/sanitize"
)

// scriptRule adapts a compiled Lua function to sanitize.Rule. Calls are
// serialized: an LState is not goroutine-safe.
type scriptRule struct {
	name string

	mu sync.Mutex
	L  *lua.LState
	fn *lua.LFunction
}

func (r *scriptRule) Name() string { return r.name }

// Apply calls the Lua function with the input text. Any Lua error or
// non-string result leaves the input unchanged; scripted rules cannot fail
// the pipeline.
func (r *scriptRule) Apply(input string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.L.CallByParam(lua.P{
		Fn:      r.fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(input))
	if err != nil {
		return input, false
	}

	ret := r.L.Get(-1)
	r.L.Pop(1)

	out, ok := ret.(lua.LString)
	if !ok {
		return input, false
	}
	s := string(out)
	return s, s != input
}

// newRestrictedState creates an LState with only the safe standard
// libraries opened and the code-loading functions removed.
func newRestrictedState() (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("open lua lib %s: %w", lib.name, err)
		}
	}

	// Remove functions that could load code from disk or strings.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	return L, nil
}

// CompileRule compiles source in a fresh restricted state and returns it as
// a pipeline rule. The script must evaluate to a function(text) -> text.
func CompileRule(name, source string) (sanitize.Rule, error) {
	L, err := newRestrictedState()
	if err != nil {
		return nil, err
	}

	fn, err := L.LoadString(source)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("compile lua rule %s: %w", name, err)
	}

	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		L.Close()
		return nil, fmt.Errorf("evaluate lua rule %s: %w", name, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	ruleFn, ok := ret.(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("lua rule %s: %w (got %s)", name, ErrNotAFunction, ret.Type())
	}

	return &scriptRule{name: name, L: L, fn: ruleFn}, nil
}

// LoadRuleFile compiles the script at path. The rule is named after the
// file with the .lua extension removed.
func LoadRuleFile(path string) (sanitize.Rule, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lua rule: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), ".lua")
	return CompileRule(name, string(src))
}

// LoadRuleDir compiles every *.lua file in dir, in lexical order so rule
// ordering is predictable from file naming.
func LoadRuleDir(dir string) ([]sanitize.Rule, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.lua"))
	if err != nil {
		return nil, fmt.Errorf("scan lua rules: %w", err)
	}
	sort.Strings(matches)

	rules := make([]sanitize.Rule, 0, len(matches))
	for _, path := range matches {
		rule, err := LoadRuleFile(path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
