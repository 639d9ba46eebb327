package inmemdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/payment"
	"github.com/bahati/malezi/tests"
)

func openDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(testutil.NewConfig())
	require.NoError(t, err)
	return db
}

func createChild(t *testing.T, svc *child.Service, name, parentName string) child.Child {
	t.Helper()
	c, err := svc.Create(child.NewChild{
		Name:       name,
		BirthDate:  "2021-03-14",
		ParentName: parentName,
	})
	require.NoError(t, err)
	return c
}

func Test_childRepository_insertionOrder(t *testing.T) {
	db := openDB(t)
	svc := child.NewService(NewChildRepository(db))

	a := createChild(t, svc, "Amina", "Fatou Diallo")
	b := createChild(t, svc, "Beni", "Chantal Kasongo")
	c := createChild(t, svc, "Christelle", "Bob Lukusa")

	children, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, children, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID},
		[]string{children[0].ID, children[1].ID, children[2].ID})

	// deleting the middle record keeps the rest in order
	require.NoError(t, svc.Delete(b.ID))
	children, err = svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, a.ID, children[0].ID)
	assert.Equal(t, c.ID, children[1].ID)
}

func Test_childRepository_shallowMerge(t *testing.T) {
	db := openDB(t)
	svc := child.NewService(NewChildRepository(db))

	orig, err := svc.Create(child.NewChild{
		Name:           "Naomi Tshiala",
		BirthDate:      "2021-03-14",
		Group:          "Papillons",
		ParentName:     "Grace Tshiala",
		EnrollmentDate: "2024-01-08",
		Allergies:      "peanuts",
	})
	require.NoError(t, err)

	updated, err := svc.Update(orig.ID, child.UpdateChild{Group: "Lions"})
	require.NoError(t, err)

	assert.Equal(t, "Lions", updated.Group)
	assert.Equal(t, orig.Name, updated.Name)
	assert.Equal(t, orig.BirthDate, updated.BirthDate)
	assert.Equal(t, orig.Age, updated.Age)
	assert.Equal(t, orig.ParentName, updated.ParentName)
	assert.Equal(t, orig.Allergies, updated.Allergies)
	assert.Equal(t, orig.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(orig.UpdatedAt))
}

func Test_childRepository_notFoundLeavesStoreUnmodified(t *testing.T) {
	db := openDB(t)
	svc := child.NewService(NewChildRepository(db))

	orig := createChild(t, svc, "Naomi Tshiala", "Grace Tshiala")

	_, err := svc.Update("no-such-id", child.UpdateChild{Name: "Ghost"})
	assert.Equal(t, child.ErrNotFound, err)

	err = svc.Delete("no-such-id")
	assert.Equal(t, child.ErrNotFound, err)

	_, err = svc.GetByID("no-such-id")
	assert.Equal(t, child.ErrNotFound, err)

	children, err := svc.QueryAll()
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, orig, children[0])
}

func Test_paymentRepository_lifecycle(t *testing.T) {
	db := openDB(t)
	childRepo := NewChildRepository(db)
	childSvc := child.NewService(childRepo)
	svc := payment.NewService(NewPaymentRepository(db), childRepo)

	naomi, err := childSvc.Create(child.NewChild{
		Name:       "Naomi Tshiala",
		BirthDate:  "2021-03-14",
		ParentName: "Grace Tshiala",
	})
	require.NoError(t, err)

	p, err := svc.Create(payment.NewPayment{
		ChildID:       naomi.ID,
		Amount:        15000,
		DueDate:       "2024-02-01",
		InvoiceNumber: "INV-1",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, payment.StatusPending, p.Status)
	assert.Equal(t, int64(15000), p.Amount)
	assert.Equal(t, "Naomi Tshiala", p.ChildName)
	assert.Equal(t, "Grace Tshiala", p.ParentName)
	assert.Empty(t, p.PaidDate)

	marked, err := svc.Update(p.ID, payment.UpdatePayment{
		Status:   payment.StatusPaid,
		PaidDate: "2024-01-28",
	})
	require.NoError(t, err)

	assert.Equal(t, payment.StatusPaid, marked.Status)
	assert.Equal(t, "2024-01-28", marked.PaidDate)
	assert.Equal(t, int64(15000), marked.Amount)
	assert.Equal(t, "INV-1", marked.InvoiceNumber)
	assert.Equal(t, "2024-02-01", marked.DueDate)

	// the merged record is what subsequent reads see
	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, marked, got)
}

func Test_paymentRepository_nameSnapshotNotRefreshed(t *testing.T) {
	db := openDB(t)
	childRepo := NewChildRepository(db)
	childSvc := child.NewService(childRepo)
	svc := payment.NewService(NewPaymentRepository(db), childRepo)

	naomi := createChild(t, childSvc, "Naomi Tshiala", "Grace Tshiala")
	p, err := svc.Create(payment.NewPayment{
		ChildID:       naomi.ID,
		Amount:        15000,
		DueDate:       "2024-02-01",
		InvoiceNumber: "INV-1",
	})
	require.NoError(t, err)

	_, err = childSvc.Update(naomi.ID, child.UpdateChild{Name: "Naomi Kazadi"})
	require.NoError(t, err)

	got, err := svc.GetByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Naomi Tshiala", got.ChildName)
}
