// env.go — the single run-duration variable store.
//
// Brio has one flat namespace: there is no frame chain and no shadowing.
// Declaring a variable always (re)binds it in this one map regardless of
// nesting depth, and a name declared inside a block stays visible and
// mutable after the block exits.
package brio

// Env maps variable names to their current values for one interpreter run.
type Env struct {
	table map[string]Value
}

// NewEnv creates an empty store.
func NewEnv() *Env { return &Env{table: make(map[string]Value)} }

// Define binds name to v, replacing any previous binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Assign binds name to v. Assignment to an undeclared name silently
// creates the binding.
func (e *Env) Assign(name string, v Value) {
	e.table[name] = v
}

// Get retrieves the binding for name. A declared-but-uninitialized
// variable is present (bound to null) and is a valid lookup.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.table[name]
	return v, ok
}
