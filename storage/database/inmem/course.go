package inmemdb

import "github.com/bahati/malezi/core/course"

type courseRepository struct {
	tbl *table[course.Course]
}

func NewCourseRepository(db *DB) course.Repository {
	return &courseRepository{tbl: db.course}
}

func (repo *courseRepository) CreateCourse(c course.Course) (course.Course, error) {
	repo.tbl.simulate()
	c.ID = newID()
	return repo.tbl.insert(c.ID, c), nil
}

func (repo *courseRepository) QueryAllCourses() ([]course.Course, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *courseRepository) GetCourseByID(id string) (course.Course, error) {
	repo.tbl.simulate()
	if c, ok := repo.tbl.get(id); ok {
		return c, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (repo *courseRepository) FilterCourses(filter course.QueryFilter) ([]course.Course, error) {
	repo.tbl.simulate()
	out := make([]course.Course, 0)
	for _, c := range repo.tbl.list() {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (repo *courseRepository) UpdateCourse(id string, uc course.UpdateCourse, instructorName *string) (course.Course, error) {
	repo.tbl.simulate()
	c, ok := repo.tbl.mutate(id, func(c *course.Course) {
		// only save set fields
		c.Name = mergeString(c.Name, uc.Name)
		c.Description = mergeString(c.Description, uc.Description)
		c.AgeGroup = mergeString(c.AgeGroup, uc.AgeGroup)
		c.Duration = mergeString(c.Duration, uc.Duration)
		c.InstructorID = mergeString(c.InstructorID, uc.InstructorID)
		if instructorName != nil {
			c.InstructorName = *instructorName
		}
		if uc.Participants != nil {
			c.Participants = *uc.Participants
		}
		if uc.Capacity != nil {
			c.Capacity = *uc.Capacity
		}
		c.Schedule = mergeString(c.Schedule, uc.Schedule)
		touch(&c.UpdatedAt)
	})
	if !ok {
		return course.Course{}, course.ErrNotFound
	}
	return c, nil
}

func (repo *courseRepository) DeleteCourse(id string) error {
	repo.tbl.simulate()
	if !repo.tbl.remove(id) {
		return course.ErrNotFound
	}
	return nil
}
