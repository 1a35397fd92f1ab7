package content

import "fmt"

// Registry is the explicit lesson lookup constructed once at startup and
// injected wherever lessons are needed. Every lesson is validated on the way
// in, so a *Lesson handed out by a Registry is always safe to run.
type Registry struct {
	ordered []Lesson
	byID    map[string]*Lesson
}

// NewRegistry validates each lesson and builds the registry, preserving the
// given display order. Duplicate IDs are rejected.
func NewRegistry(lessons []Lesson) (*Registry, error) {
	r := &Registry{
		ordered: make([]Lesson, len(lessons)),
		byID:    make(map[string]*Lesson, len(lessons)),
	}
	copy(r.ordered, lessons)

	for i := range r.ordered {
		l := &r.ordered[i]
		if err := Validate(l); err != nil {
			return nil, err
		}
		if _, dup := r.byID[l.ID]; dup {
			return nil, fmt.Errorf("duplicate lesson ID %q", l.ID)
		}
		r.byID[l.ID] = l
	}
	return r, nil
}

// Get returns the lesson with the given ID.
func (r *Registry) Get(id string) (*Lesson, bool) {
	l, ok := r.byID[id]
	return l, ok
}

// All returns the lessons in display order.
func (r *Registry) All() []Lesson {
	out := make([]Lesson, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of registered lessons.
func (r *Registry) Len() int {
	return len(r.ordered)
}
