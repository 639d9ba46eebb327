package databind

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	note       struct{ ID, Title string }
	newNote    struct{ Title string }
	updateNote struct{ Title string }
)

// fakeNoteService counts fetches and fails on demand so tests can pin down
// exactly when the collection goes back to the service.
type fakeNoteService struct {
	notes   []note
	getErr  error
	mutErr  error
	getAlls int
	nextID  int
}

func (s *fakeNoteService) GetAll() ([]note, error) {
	s.getAlls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	out := make([]note, len(s.notes))
	copy(out, s.notes)
	return out, nil
}

func (s *fakeNoteService) Create(fields newNote) (note, error) {
	if s.mutErr != nil {
		return note{}, s.mutErr
	}
	s.nextID++
	n := note{ID: strconv.Itoa(s.nextID), Title: fields.Title}
	s.notes = append(s.notes, n)
	return n, nil
}

func (s *fakeNoteService) Update(id string, fields updateNote) (note, error) {
	if s.mutErr != nil {
		return note{}, s.mutErr
	}
	for i, n := range s.notes {
		if n.ID == id {
			s.notes[i].Title = fields.Title
			return s.notes[i], nil
		}
	}
	return note{}, errors.New("note not found")
}

func (s *fakeNoteService) Delete(id string) error {
	if s.mutErr != nil {
		return s.mutErr
	}
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return nil
		}
	}
	return errors.New("note not found")
}

func newNoteCollection(svc *fakeNoteService) *Collection[note, newNote, updateNote] {
	return NewCollection[note, newNote, updateNote](svc, func(n note) string { return n.ID })
}

func TestCollection_loadStates(t *testing.T) {
	svc := &fakeNoteService{notes: []note{{ID: "1", Title: "groceries"}}}
	coll := newNoteCollection(svc)

	assert.Equal(t, Loading, coll.State())
	assert.Empty(t, coll.Items())

	require.NoError(t, coll.Load())
	assert.Equal(t, Ready, coll.State())
	assert.NoError(t, coll.Err())
	assert.Len(t, coll.Items(), 1)
}

func TestCollection_loadFailure(t *testing.T) {
	boom := errors.New("backend down")
	svc := &fakeNoteService{getErr: boom}
	coll := newNoteCollection(svc)

	err := coll.Load()
	assert.Equal(t, boom, err)
	assert.Equal(t, Errored, coll.State())
	assert.Equal(t, boom, coll.Err())

	// an explicit reload after recovery clears the error
	svc.getErr = nil
	svc.notes = []note{{ID: "1", Title: "groceries"}}
	require.NoError(t, coll.Reload())
	assert.Equal(t, Ready, coll.State())
	assert.NoError(t, coll.Err())
	assert.Len(t, coll.Items(), 1)
}

func TestCollection_mutationsDoNotRefetch(t *testing.T) {
	svc := &fakeNoteService{notes: []note{{ID: "1", Title: "groceries"}}, nextID: 1}
	coll := newNoteCollection(svc)
	require.NoError(t, coll.Load())
	require.Equal(t, 1, svc.getAlls)

	created, err := coll.Create(newNote{Title: "errands"})
	require.NoError(t, err)
	assert.Equal(t, []note{{ID: "1", Title: "groceries"}, created}, coll.Items())

	updated, err := coll.Update("1", updateNote{Title: "shopping"})
	require.NoError(t, err)
	assert.Equal(t, []note{updated, created}, coll.Items())

	require.NoError(t, coll.Delete(created.ID))
	assert.Equal(t, []note{updated}, coll.Items())

	// every reconciliation happened against the local snapshot
	assert.Equal(t, 1, svc.getAlls)
	assert.Equal(t, Ready, coll.State())
}

func TestCollection_failedMutationKeepsSnapshot(t *testing.T) {
	svc := &fakeNoteService{notes: []note{{ID: "1", Title: "groceries"}}, nextID: 1}
	coll := newNoteCollection(svc)
	require.NoError(t, coll.Load())
	before := coll.Items()

	boom := errors.New("backend down")
	svc.mutErr = boom

	_, err := coll.Create(newNote{Title: "errands"})
	assert.Equal(t, boom, err)
	_, err = coll.Update("1", updateNote{Title: "shopping"})
	assert.Equal(t, boom, err)
	assert.Equal(t, boom, coll.Delete("1"))

	assert.Equal(t, before, coll.Items())
	assert.Equal(t, Ready, coll.State())
	assert.NoError(t, coll.Err())
}

func TestCollection_filter(t *testing.T) {
	svc := &fakeNoteService{notes: []note{
		{ID: "1", Title: "Groceries"},
		{ID: "2", Title: "school run"},
		{ID: "3", Title: "grocery budget"},
	}}
	coll := newNoteCollection(svc)
	require.NoError(t, coll.Load())

	title := func(n note) string { return n.Title }

	got := coll.Filter("GROC", title)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	// filtering twice gives the same result and never shrinks the snapshot
	assert.Equal(t, got, coll.Filter("GROC", title))
	assert.Len(t, coll.Items(), 3)

	assert.Equal(t, coll.Items(), coll.Filter("", title))
	assert.Empty(t, coll.Filter("piano", title))
}
