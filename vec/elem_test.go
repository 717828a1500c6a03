package vec

import "github.com/pkg/errors"

var errCloneFailed = errors.New("clone failed")

// counters tracks element lifecycle operations across one test.
type counters struct {
	moves    int
	clones   int
	destroys int
	failAt   int // fail the Nth clone (1-based) when > 0
}

func (c *counters) cloneTick() error {
	c.clones++
	if c.failAt > 0 && c.clones == c.failAt {
		return errCloneFailed
	}
	return nil
}

// movable relocates by Move and never fails.
type movable struct {
	v int
	c *counters
}

func (e *movable) Move() movable {
	e.c.moves++
	out := *e
	*e = movable{}
	return out
}

// clonable duplicates through Clone and can be told to fail.
type clonable struct {
	v int
	c *counters
}

func (e *clonable) Clone() (clonable, error) {
	if err := e.c.cloneTick(); err != nil {
		return clonable{}, err
	}
	return clonable{v: e.v, c: e.c}, nil
}

// resource is a fallible cloner that also counts destruction.
type resource struct {
	v int
	c *counters
}

func (e *resource) Clone() (resource, error) {
	if err := e.c.cloneTick(); err != nil {
		return resource{}, err
	}
	return resource{v: e.v, c: e.c}, nil
}

func (e *resource) Destroy() {
	e.c.destroys++
}

func movables(c *counters, vals ...int) []movable {
	out := make([]movable, len(vals))
	for i, v := range vals {
		out[i] = movable{v: v, c: c}
	}
	return out
}

func resources(c *counters, vals ...int) []resource {
	out := make([]resource, len(vals))
	for i, v := range vals {
		out[i] = resource{v: v, c: c}
	}
	return out
}

// nums extracts the payload values of a resource vector.
func nums(v *Vector[resource]) []int {
	out := make([]int, 0, v.Len())
	for _, e := range v.All() {
		out = append(out, e.v)
	}
	return out
}
