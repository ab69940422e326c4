package layout

import (
	"strconv"
	"strings"

	"github.com/sblinch/kdl-go/document"
)

// Thin accessors over kdl-go's document tree. All node access in this
// package goes through these so the parsing code reads in terms of
// names, arguments and properties.

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.ValueString()
}

func valueString(v *document.Value) string {
	if v == nil {
		return ""
	}
	return v.ValueString()
}

func nodeArgs(n *document.Node) []string {
	if n == nil || len(n.Arguments) == 0 {
		return nil
	}
	args := make([]string, 0, len(n.Arguments))
	for _, arg := range n.Arguments {
		args = append(args, valueString(arg))
	}
	return args
}

func nodeProp(n *document.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.Properties.Get(key)
	if !ok {
		return "", false
	}
	return valueString(v), true
}

func nodePropBool(n *document.Node, key string) (value bool, ok bool, err error) {
	raw, ok := nodeProp(n, key)
	if !ok {
		return false, false, nil
	}
	parsed, parseErr := strconv.ParseBool(strings.TrimSpace(raw))
	if parseErr != nil {
		return false, true, parseErr
	}
	return parsed, true, nil
}

func nodePropInt(n *document.Node, key string) (value int, ok bool, err error) {
	raw, ok := nodeProp(n, key)
	if !ok {
		return 0, false, nil
	}
	parsed, parseErr := strconv.Atoi(strings.TrimSpace(raw))
	if parseErr != nil {
		return 0, true, parseErr
	}
	return parsed, true, nil
}

func childNodes(n *document.Node, name string) []*document.Node {
	if n == nil {
		return nil
	}
	var out []*document.Node
	for _, child := range n.Children {
		if nodeName(child) == name {
			out = append(out, child)
		}
	}
	return out
}

func firstChild(n *document.Node, name string) *document.Node {
	for _, child := range n.Children {
		if nodeName(child) == name {
			return child
		}
	}
	return nil
}
