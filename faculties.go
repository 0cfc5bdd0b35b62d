package naija

import "errors"

// Faculty returns a random faculty name such as "Faculty of Engineering".
func (g *Generator) Faculty() (string, error) {
	pool := g.faculties.Values("name")
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, errors.New("faculty dataset is empty"))
	}
	return g.tracker.Pick("faculty", pool)
}

// Department returns a random department name drawn from every faculty's
// department list.
func (g *Generator) Department() (string, error) {
	pool := g.faculties.Flatten("departments")
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, errors.New("no departments in faculty dataset"))
	}
	return g.tracker.Pick("department", pool)
}
