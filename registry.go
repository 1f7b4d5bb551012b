package utest

// Registry is an ordered collection of contexts keyed by name. Contexts
// appear in first-registration order. A registry is populated before a
// runner starts, normally from package-level initializer expressions;
// registration is not synchronized and must not race with a run.
type Registry struct {
	contexts []*Context

	// lastFound caches the most recently resolved context. Registrations
	// arrive grouped by context, so the cache makes the common repeated
	// lookup O(1). It holds the last resolved context, not a miss marker:
	// a lookup that found nothing always rescans next time.
	lastFound *Context
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// find returns the context with the given name, or nil. The cache is
// checked first; on a scan the cache is updated with the result, nil
// included.
func (r *Registry) find(name string) *Context {
	if r.lastFound == nil || r.lastFound.name != name {
		var found *Context
		for _, c := range r.contexts {
			if c.name == name {
				found = c
				break
			}
		}
		r.lastFound = found
	}
	return r.lastFound
}

// findOrAdd returns the context with the given name, creating and
// appending an empty one if it does not exist yet.
func (r *Registry) findOrAdd(name string) *Context {
	if c := r.find(name); c != nil {
		return c
	}
	c := newContext(name)
	r.contexts = append(r.contexts, c)
	r.lastFound = c
	return c
}

// Add registers one test case under the named context, creating the
// context on first use and appending to it afterwards. It always returns
// true so that it can be used as a package-level initializer expression:
//
//	var _ = utest.Add(body, "name", "context", false)
func (r *Registry) Add(fn Func, name, context string, mustPass bool) bool {
	r.findOrAdd(context).add(TestCase{name: name, fn: fn, mustPass: mustPass})
	return true
}

// AddInit sets the named context's init hook, run once before its tests.
// It creates the context if needed and always returns true, like Add.
func (r *Registry) AddInit(context string, h Hook) bool {
	r.findOrAdd(context).init = h
	return true
}

// AddCleanup sets the named context's cleanup hook, run once after its
// tests on every path. It creates the context if needed and always
// returns true, like Add.
func (r *Registry) AddCleanup(context string, h Hook) bool {
	r.findOrAdd(context).cleanup = h
	return true
}

// Len returns the number of registered contexts.
func (r *Registry) Len() int { return len(r.contexts) }

// Contexts returns the registered contexts in first-registration order.
func (r *Registry) Contexts() []*Context {
	return append([]*Context(nil), r.contexts...)
}

// defaultRegistry backs the package-level registration calls. It exists
// for the whole process; runners receive it (or any other registry)
// explicitly.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// registration functions.
func Default() *Registry { return defaultRegistry }

// Add registers a test case in the default registry. See Registry.Add.
func Add(fn Func, name, context string, mustPass bool) bool {
	return defaultRegistry.Add(fn, name, context, mustPass)
}

// AddInit sets a context's init hook in the default registry.
func AddInit(context string, h Hook) bool {
	return defaultRegistry.AddInit(context, h)
}

// AddCleanup sets a context's cleanup hook in the default registry.
func AddCleanup(context string, h Hook) bool {
	return defaultRegistry.AddCleanup(context, h)
}
