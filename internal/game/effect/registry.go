package effect

import (
	"fmt"
	"sort"
)

// kindRegistry maps kind name → kind.
// Populated by init() functions in individual effect files.
var kindRegistry = map[string]Kind{}

// RegisterKind registers an effect kind by name.
// Called from init() in each kind implementation file.
func RegisterKind(k Kind) {
	kindRegistry[k.Name()] = k
}

// KindByName returns the registered kind with the given name.
// Returns error if name is not registered.
func KindByName(name string) (Kind, error) {
	k, ok := kindRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown effect kind: %s", name)
	}
	return k, nil
}

// KindNames returns every registered kind name, sorted.
func KindNames() []string {
	names := make([]string, 0, len(kindRegistry))
	for name := range kindRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
