package access

// Request carries the request attributes the engine evaluates. It is built by
// the HTTP layer once per request; the engine never touches the framework
// context directly.
type Request struct {
	Method    string
	Path      string
	Params    map[string]string
	Principal *Principal
}

// Param returns a route parameter value, empty when absent.
func (r Request) Param(name string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[name]
}
