package inproc

import (
	"sort"
	"strings"

	"github.com/cape-open/cobia"
	"github.com/cape-open/cobia/capi"
)

// node is one key of the in-memory registry tree. The tree is built once
// from a snapshot and read only afterwards, so key objects can serve it
// without locking. Lookups are case insensitive; listings report the
// names as registered, sorted.
type node struct {
	allUsers   bool
	values     *cobia.CapeOpenMap[value]
	keys       *cobia.CapeOpenMap[*node]
	valueNames []string
	keyNames   []string
}

type value struct {
	kind    capi.CapeEnumeration
	str     string
	integer int32
	uuid    capi.CapeUUID
}

func buildNode(cfg KeyConfig) *node {
	n := &node{
		allUsers: cfg.AllUsers,
		values:   cobia.NewCapeOpenMap[value](),
		keys:     cobia.NewCapeOpenMap[*node](),
	}
	for name, vc := range cfg.Values {
		n.values.Set(name, buildValue(vc))
		n.valueNames = append(n.valueNames, name)
	}
	for name, kc := range cfg.Keys {
		n.keys.Set(name, buildNode(kc))
		n.keyNames = append(n.keyNames, name)
	}
	sort.Strings(n.valueNames)
	sort.Strings(n.keyNames)
	return n
}

func buildValue(vc ValueConfig) value {
	switch {
	case vc.String != nil:
		return value{kind: capi.RegistryValueString, str: *vc.String}
	case vc.Integer != nil:
		return value{kind: capi.RegistryValueInteger, integer: *vc.Integer}
	case vc.UUID != nil:
		// Validated during snapshot parsing.
		u, _ := capi.ParseUUID(*vc.UUID)
		return value{kind: capi.RegistryValueUUID, uuid: u}
	}
	return value{kind: capi.RegistryValueEmpty}
}

// lookup resolves a '/' separated path relative to n. An empty path
// resolves to n itself.
func (n *node) lookup(path string) (*node, bool) {
	cur := n
	for len(path) > 0 {
		elem := path
		if i := strings.IndexByte(path, '/'); i >= 0 {
			elem, path = path[:i], path[i+1:]
		} else {
			path = ""
		}
		if elem == "" {
			continue
		}
		next, ok := cur.keys.Get(elem)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
