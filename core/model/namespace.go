package model

import (
	"fmt"
	"sort"
	"strings"
)

// Namespace is a node in the hierarchical namespace tree. The root has no
// parent and an empty name. The tree is built once from the root entity
// types' declared namespace paths and lives as long as the owning model.
type Namespace struct {
	name         string
	parent       *Namespace
	children     map[string]*Namespace
	rootEntities []*RootEntityType
}

func newNamespace(name string, parent *Namespace) *Namespace {
	return &Namespace{
		name:     name,
		parent:   parent,
		children: make(map[string]*Namespace),
	}
}

// Name returns the namespace's own path segment, empty for the root.
func (n *Namespace) Name() string { return n.name }

// IsRoot reports whether this is the root namespace.
func (n *Namespace) IsRoot() bool { return n.parent == nil }

// Parent returns the parent namespace, nil for the root.
func (n *Namespace) Parent() *Namespace { return n.parent }

// Path returns the path segments from the root to this namespace.
func (n *Namespace) Path() []string {
	if n.parent == nil {
		return nil
	}
	return append(n.parent.Path(), n.name)
}

// DottedPath returns the path joined with dots, empty for the root.
func (n *Namespace) DottedPath() string { return strings.Join(n.Path(), ".") }

// RootEntityTypes returns the root entity types declared directly in this
// namespace, in declaration order.
func (n *Namespace) RootEntityTypes() []*RootEntityType { return n.rootEntities }

// Child returns the child namespace for a single path segment.
func (n *Namespace) Child(segment string) (*Namespace, bool) {
	c, ok := n.children[segment]
	return c, ok
}

// Children returns the child namespaces sorted by name.
func (n *Namespace) Children() []*Namespace {
	children := make([]*Namespace, 0, len(n.children))
	for _, c := range n.children {
		children = append(children, c)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].name < children[j].name })
	return children
}

func (n *Namespace) ensureChild(segment string) *Namespace {
	if c, ok := n.children[segment]; ok {
		return c
	}
	c := newNamespace(segment, n)
	n.children[segment] = c
	return c
}

// buildNamespaceTree builds the tree top-down from the root entity types,
// so parent nodes always exist before entities are attached, regardless of
// declaration order.
func buildNamespaceTree(roots []*RootEntityType) *Namespace {
	root := newNamespace("", nil)
	for _, rt := range roots {
		node := root
		for _, segment := range rt.NamespacePath() {
			node = node.ensureChild(segment)
		}
		node.rootEntities = append(node.rootEntities, rt)
	}
	return root
}

// RootNamespace returns the root of the namespace tree.
func (m *Model) RootNamespace() *Namespace { return m.rootNamespace }

// NamespaceByPath walks the tree one child lookup per segment. This is the
// tolerant variant: any missing segment returns false.
func (m *Model) NamespaceByPath(path []string) (*Namespace, bool) {
	node := m.rootNamespace
	for _, segment := range path {
		c, ok := node.Child(segment)
		if !ok {
			return nil, false
		}
		node = c
	}
	return node, true
}

// RequireNamespace returns the namespace at the given path or fails with an
// error naming the dotted path.
func (m *Model) RequireNamespace(path []string) (*Namespace, error) {
	ns, ok := m.NamespaceByPath(path)
	if !ok {
		return nil, fmt.Errorf("namespace %q does not exist", strings.Join(path, "."))
	}
	return ns, nil
}
