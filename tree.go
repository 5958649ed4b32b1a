package radix

import "strings"

// Tree is a radix tree (compressed trie) mapping URL-style patterns to
// opaque payloads of type T. It supports literal segments, named
// parameters (":name") and a trailing catch-all ("*name").
//
// A Tree is built once, via repeated Add calls, then read by any
// number of concurrent Find calls. Add and Find must never run
// concurrently with each other, nor Add with Add — the tree performs
// no internal synchronization.
type Tree[T any] struct {
	root *node[T]
}

// New returns an empty Tree, ready for Add.
func New[T any]() *Tree[T] {
	return &Tree[T]{root: newPlaceholderNode[T]()}
}

// Add inserts pattern as an endpoint carrying payload. It fails with
// *DuplicateError if pattern is already registered, or
// *SharedKeyError if pattern would place a second named parameter
// with a different name at a branching position an existing
// parameter already occupies. On error the tree is left unchanged.
func (t *Tree[T]) Add(pattern string, payload T) error {
	if t.root.placeholder {
		t.root = newNode(pattern, payload)
		return nil
	}
	return t.root.add(pattern, pattern, payload)
}

// Find matches path against the tree and returns the accumulated
// Result. Find never fails; a non-match is represented by
// Result.Found returning false.
func (t *Tree[T]) Find(path string) *Result[T] {
	result := newResult[T]()
	if t.root.placeholder {
		return result
	}
	t.root.find(path, true, result)
	return result
}

// Walk performs a preorder traversal of every node in the tree,
// reporting the reconstructed key and payload at each one. Internal
// branching nodes (created by splits, never inserted directly) are
// reported with ok=false. This is a read-only introspection helper,
// useful for debugging or dumping the registered patterns; it is not
// part of the lookup hot path.
func (t *Tree[T]) Walk(fn func(key string, payload T, ok bool)) {
	if t.root.placeholder {
		return
	}
	t.root.walk("", fn)
}

// Map applies transform to every payload currently stored in the
// tree, in place. Branching nodes with no payload are left alone.
func (t *Tree[T]) Map(transform func(T) T) {
	if t.root.placeholder {
		return
	}
	t.root.mapPayloads(transform)
}

// add inserts pattern (the text still to be matched from this node
// downward) into the subtree rooted at n. original is the full
// pattern as passed to Tree.Add, kept around only to annotate errors.
func (n *node[T]) add(pattern, original string, payload T) error {
	p, conflict, existing, want := commonPrefix(n.key, pattern)
	if conflict {
		return &SharedKeyError{Pattern: original, Existing: existing, New: want}
	}

	if p < len(n.key) {
		n.split(p, pattern, payload)
		return nil
	}

	// n.key is fully consumed.
	if p == len(pattern) {
		if n.hasPayload {
			return &DuplicateError{Pattern: original}
		}
		n.payload = payload
		n.hasPayload = true
		return nil
	}

	remainder := pattern[p:]
	for _, child := range n.children {
		if child.key[0] != remainder[0] {
			continue
		}
		if child.key[0] == ':' {
			existingName, _ := namedParamToken(child.key)
			newName, _ := namedParamToken(remainder)
			if existingName != newName {
				return &SharedKeyError{Pattern: original, Existing: existingName, New: newName}
			}
		}
		return child.add(remainder, original, payload)
	}

	n.addChild(newNode(remainder, payload))
	return nil
}

// split divides n at byte offset p of its key, preserving n's payload
// and children on a new child carrying the old suffix, then installs
// pattern's remainder according to whether it ends exactly at the
// split point.
func (n *node[T]) split(p int, pattern string, payload T) {
	suffixChild := newBranchNode[T](n.key[p:])
	suffixChild.hasPayload = n.hasPayload
	suffixChild.payload = n.payload
	suffixChild.children = n.children

	n.clearPayload()
	n.children = nil
	n.setKey(n.key[:p])
	n.addChild(suffixChild)

	if p == len(pattern) {
		n.payload = payload
		n.hasPayload = true
		return
	}

	n.addChild(newNode(pattern[p:], payload))
}

// commonPrefix returns the length of the shared prefix of a and b. A
// ':' encountered simultaneously in both strings is compared as an
// atomic parameter-name unit rather than byte by byte — matching
// names advance both cursors past the whole token, differing names
// stop the comparison and report conflict with both names so the
// caller can raise SharedKeyError. The interior of a parameter name
// is never split.
func commonPrefix(a, b string) (p int, conflict bool, existingName, newName string) {
	i := 0
	for i < len(a) && i < len(b) {
		if a[i] == ':' && b[i] == ':' {
			aName, aLen := namedParamToken(a[i:])
			bName, _ := namedParamToken(b[i:])
			if aName != bName {
				return i, true, aName, bName
			}
			i += aLen
			continue
		}
		if a[i] != b[i] {
			break
		}
		i++
	}
	return i, false, "", ""
}

// namedParamToken reads the parameter name starting at s[0] == ':',
// returning the name and the length of the whole ":name" token up to
// the next '/' or the end of s.
func namedParamToken(s string) (name string, tokenLen int) {
	rest := s[1:]
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		return rest[:idx], 1 + idx
	}
	return rest, len(s)
}

// find matches path against the subtree rooted at n, recording
// matched nodes and captured parameters into result. first is true
// only for the initial call from Tree.Find.
func (n *node[T]) find(path string, first bool, result *Result[T]) {
	if first && path == n.key && n.hasPayload {
		result.use(n, true)
		return
	}

	k, j := 0, 0

walk:
	for k < len(n.key) && j < len(path) {
		switch n.key[k] {
		case '*':
			name := n.key[k+1:]
			value := path[j:]
			result.setParam(name, value)
			result.use(n, true)
			return
		case ':':
			keyRest := n.key[k+1:]
			keySegLen := len(keyRest)
			if idx := strings.IndexByte(keyRest, '/'); idx >= 0 {
				keySegLen = idx
			}

			pathRest := path[j:]
			pathSegLen := len(pathRest)
			if idx := strings.IndexByte(pathRest, '/'); idx >= 0 {
				pathSegLen = idx
			}

			result.setParam(keyRest[:keySegLen], pathRest[:pathSegLen])
			k += 1 + keySegLen
			j += pathSegLen
			continue walk
		default:
			if path[j] == n.key[k] {
				k++
				j++
				continue walk
			}
		}
		break walk
	}

	switch {
	case k == len(n.key) && j == len(path):
		result.use(n, true)
	case k == len(n.key):
		n.findInChildren(path[j:], result)
	case j == len(path):
		n.findInKeyRemainder(n.key[k:], result)
	}
	// Otherwise k < len(n.key) && j < len(path): the walk stopped on a
	// genuine byte mismatch. No match; result is left as-is.
}

// findInChildren handles outcome 3b: n.key is exhausted but path has
// a remainder.
func (n *node[T]) findInChildren(remainder string, result *Result[T]) {
	if remainder == "/" && len(n.key) > 0 {
		result.use(n, true)
		return
	}

	// A child whose key starts with the remainder's first byte is more
	// specific than a placeholder child, so it is tried first even when
	// both share a priority (e.g. "posts/:id" beside ":title").
	for _, child := range n.children {
		if child.key[0] == remainder[0] {
			result.use(n, false)
			child.find(remainder, false, result)
			return
		}
	}

	for _, child := range n.children {
		c := child.key[0]
		if c == ':' || c == '*' {
			result.use(n, false)
			child.find(remainder, false, result)
			return
		}
	}
}

// findInKeyRemainder handles outcome 3c: path is exhausted but n.key
// has a remainder.
func (n *node[T]) findInKeyRemainder(remainder string, result *Result[T]) {
	if remainder == "/" {
		result.use(n, true)
		return
	}

	if len(remainder) >= 2 && remainder[0] == '/' && remainder[1] == '*' {
		result.setParam(remainder[2:], "")
		result.use(n, true)
	}
}

// walk reports n and recurses into every child, in order, building up
// the reconstructed key as it descends.
func (n *node[T]) walk(prefix string, fn func(key string, payload T, ok bool)) {
	key := prefix + n.key
	fn(key, n.payload, n.hasPayload)
	for _, child := range n.children {
		child.walk(key, fn)
	}
}

// mapPayloads applies transform to every payload-bearing node in the
// subtree rooted at n.
func (n *node[T]) mapPayloads(transform func(T) T) {
	if n.hasPayload {
		n.payload = transform(n.payload)
	}
	for _, child := range n.children {
		child.mapPayloads(transform)
	}
}
