package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahati/malezi/core/educator"
)

type fakeRepo struct {
	courses map[string]Course
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{courses: make(map[string]Course)}
}

func (r *fakeRepo) CreateCourse(c Course) (Course, error) {
	r.nextID++
	c.ID = string(rune('a' + r.nextID))
	r.courses[c.ID] = c
	return c, nil
}

func (r *fakeRepo) QueryAllCourses() ([]Course, error) {
	out := make([]Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeRepo) GetCourseByID(id string) (Course, error) {
	if c, ok := r.courses[id]; ok {
		return c, nil
	}
	return Course{}, ErrNotFound
}

func (r *fakeRepo) FilterCourses(filter QueryFilter) ([]Course, error) {
	out := make([]Course, 0)
	for _, c := range r.courses {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateCourse(id string, uc UpdateCourse, instructorName *string) (Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return Course{}, ErrNotFound
	}
	if uc.InstructorID != "" {
		c.InstructorID = uc.InstructorID
	}
	if instructorName != nil {
		c.InstructorName = *instructorName
	}
	if uc.Name != "" {
		c.Name = uc.Name
	}
	r.courses[id] = c
	return c, nil
}

func (r *fakeRepo) DeleteCourse(id string) error {
	if _, ok := r.courses[id]; !ok {
		return ErrNotFound
	}
	delete(r.courses, id)
	return nil
}

type fakeInstructors map[string]educator.Educator

func (f fakeInstructors) GetEducatorByID(id string) (educator.Educator, error) {
	if e, ok := f[id]; ok {
		return e, nil
	}
	return educator.Educator{}, educator.ErrNotFound
}

func TestService_instructorSnapshot(t *testing.T) {
	instructors := fakeInstructors{
		"e1": {ID: "e1", Name: "Amina Kalonji"},
		"e2": {ID: "e2", Name: "Joseph Mwamba"},
	}
	svc := NewService(newFakeRepo(), instructors)

	c, err := svc.Create(NewCourse{Name: "Morning Music", InstructorID: "e1"})
	require.NoError(t, err)
	assert.Equal(t, "Amina Kalonji", c.InstructorName)

	// updating without touching the reference keeps the old snapshot
	c, err = svc.Update(c.ID, UpdateCourse{Name: "Afternoon Music"})
	require.NoError(t, err)
	assert.Equal(t, "Amina Kalonji", c.InstructorName)

	// re-pointing the reference refreshes the snapshot
	c, err = svc.Update(c.ID, UpdateCourse{InstructorID: "e2"})
	require.NoError(t, err)
	assert.Equal(t, "Joseph Mwamba", c.InstructorName)
}

func TestService_danglingInstructor(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeInstructors{})

	// a reference that resolves to nothing is not an error
	c, err := svc.Create(NewCourse{Name: "Morning Music", InstructorID: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, "ghost", c.InstructorID)
	assert.Empty(t, c.InstructorName)
}
