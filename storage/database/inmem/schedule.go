package inmemdb

import "github.com/bahati/malezi/core/schedule"

type scheduleRepository struct {
	tbl *table[schedule.Event]
}

func NewScheduleRepository(db *DB) schedule.Repository {
	return &scheduleRepository{tbl: db.schedule}
}

func (repo *scheduleRepository) CreateEvent(e schedule.Event) (schedule.Event, error) {
	repo.tbl.simulate()
	e.ID = newID()
	return repo.tbl.insert(e.ID, e), nil
}

func (repo *scheduleRepository) QueryAllEvents() ([]schedule.Event, error) {
	repo.tbl.simulate()
	return repo.tbl.list(), nil
}

func (repo *scheduleRepository) GetEventByID(id string) (schedule.Event, error) {
	repo.tbl.simulate()
	if e, ok := repo.tbl.get(id); ok {
		return e, nil
	}
	return schedule.Event{}, schedule.ErrNotFound
}

func (repo *scheduleRepository) FilterEvents(filter schedule.QueryFilter) ([]schedule.Event, error) {
	repo.tbl.simulate()
	out := make([]schedule.Event, 0)
	for _, e := range repo.tbl.list() {
		if filter.Match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (repo *scheduleRepository) UpdateEvent(id string, ue schedule.UpdateEvent) (schedule.Event, error) {
	repo.tbl.simulate()
	e, ok := repo.tbl.mutate(id, func(e *schedule.Event) {
		// only save set fields
		e.Date = mergeString(e.Date, ue.Date)
		e.StartTime = mergeString(e.StartTime, ue.StartTime)
		e.EndTime = mergeString(e.EndTime, ue.EndTime)
		e.Group = mergeString(e.Group, ue.Group)
		if ue.Participants != nil {
			e.Participants = *ue.Participants
		}
		if ue.Capacity != nil {
			e.Capacity = *ue.Capacity
		}
		e.Status = mergeString(e.Status, ue.Status)
		touch(&e.UpdatedAt)
	})
	if !ok {
		return schedule.Event{}, schedule.ErrNotFound
	}
	return e, nil
}

func (repo *scheduleRepository) DeleteEvent(id string) error {
	repo.tbl.simulate()
	if !repo.tbl.remove(id) {
		return schedule.ErrNotFound
	}
	return nil
}
