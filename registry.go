package framing

import (
	"fmt"
	"sort"
	"sync"
)

var registry = struct {
	sync.RWMutex
	strategies map[string]Strategy
}{
	strategies: make(map[string]Strategy),
}

func init() {
	for _, s := range []Strategy{
		Newline{},
		Netstring{},
		Netstring{Strict: true},
		NoFraming{},
		JSONSeq{},
		SLIP{},
		JSONArray{},
	} {
		Register(s)
	}
}

// Register makes s available to Lookup under s.Name(). A later strategy with
// the same name replaces the earlier one.
func Register(s Strategy) {
	if s == nil {
		panic("can't register nil strategy")
	}
	registry.Lock()
	defer registry.Unlock()
	registry.strategies[s.Name()] = s
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, error) {
	registry.RLock()
	defer registry.RUnlock()
	s, ok := registry.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Names returns the names of all registered strategies, sorted.
func Names() []string {
	registry.RLock()
	defer registry.RUnlock()
	ret := make([]string, 0, len(registry.strategies))
	for name := range registry.strategies {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

func nameOf(v interface{}) string {
	if s, ok := v.(Strategy); ok {
		return s.Name()
	}
	return fmt.Sprintf("%T", v)
}
