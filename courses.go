package naija

import "errors"

// Course returns a random course name such as "Introduction to Computer
// Science".
func (g *Generator) Course() (string, error) {
	return g.pickCourse("name", "course")
}

// CourseCode returns a random course code such as "CSC101".
func (g *Generator) CourseCode() (string, error) {
	return g.pickCourse("code", "course_code")
}

func (g *Generator) pickCourse(field, family string) (string, error) {
	pool := g.courses.Values(field)
	if len(pool) == 0 {
		return "", errors.Join(ErrEmptyPool, errors.New("course dataset is empty"))
	}
	return g.tracker.Pick(family, pool)
}
