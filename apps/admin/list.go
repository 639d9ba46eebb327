package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"

	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/course"
	"github.com/bahati/malezi/core/educator"
	"github.com/bahati/malezi/core/payment"
	"github.com/bahati/malezi/databind"
)

// Bindings adapt entity services to the databind.Service boundary so the
// CLI can browse records through the same collection the views use.
type (
	childBinding    struct{ svc *child.Service }
	educatorBinding struct{ svc *educator.Service }
	courseBinding   struct{ svc *course.Service }
	paymentBinding  struct{ svc *payment.Service }
)

func (b childBinding) GetAll() ([]child.Child, error) { return b.svc.QueryAll() }
func (b childBinding) Create(nc child.NewChild) (child.Child, error) {
	return b.svc.Create(nc)
}
func (b childBinding) Update(id string, uc child.UpdateChild) (child.Child, error) {
	return b.svc.Update(id, uc)
}
func (b childBinding) Delete(id string) error { return b.svc.Delete(id) }

func (b educatorBinding) GetAll() ([]educator.Educator, error) { return b.svc.QueryAll() }
func (b educatorBinding) Create(ne educator.NewEducator) (educator.Educator, error) {
	return b.svc.Create(ne)
}
func (b educatorBinding) Update(id string, ue educator.UpdateEducator) (educator.Educator, error) {
	return b.svc.Update(id, ue)
}
func (b educatorBinding) Delete(id string) error { return b.svc.Delete(id) }

func (b courseBinding) GetAll() ([]course.Course, error) { return b.svc.QueryAll() }
func (b courseBinding) Create(nc course.NewCourse) (course.Course, error) {
	return b.svc.Create(nc)
}
func (b courseBinding) Update(id string, uc course.UpdateCourse) (course.Course, error) {
	return b.svc.Update(id, uc)
}
func (b courseBinding) Delete(id string) error { return b.svc.Delete(id) }

func (b paymentBinding) GetAll() ([]payment.Payment, error) { return b.svc.QueryAll() }
func (b paymentBinding) Create(np payment.NewPayment) (payment.Payment, error) {
	return b.svc.Create(np)
}
func (b paymentBinding) Update(id string, up payment.UpdatePayment) (payment.Payment, error) {
	return b.svc.Update(id, up)
}

// Payment records are never removed.
func (b paymentBinding) Delete(id string) error {
	return errors.New("payments cannot be deleted")
}

func (cli *commandLine) list(entity, search string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch entity {
	case "children":
		coll := databind.NewCollection[child.Child, child.NewChild, child.UpdateChild](
			childBinding{svc: cli.childSvc}, func(c child.Child) string { return c.ID })
		if err := coll.Load(); err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tAGE\tGROUP\tPARENT\tSTATUS")
		for _, c := range coll.Filter(search, func(c child.Child) string { return c.Name }) {
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Age, c.Group, c.ParentName, c.Status)
		}
	case "educators":
		coll := databind.NewCollection[educator.Educator, educator.NewEducator, educator.UpdateEducator](
			educatorBinding{svc: cli.educatorSvc}, func(e educator.Educator) string { return e.ID })
		if err := coll.Load(); err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tROLE\tEXPERIENCE\tSTATUS")
		for _, e := range coll.Filter(search, func(e educator.Educator) string { return e.Name }) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Role, e.Experience, e.Status)
		}
	case "courses":
		coll := databind.NewCollection[course.Course, course.NewCourse, course.UpdateCourse](
			courseBinding{svc: cli.courseSvc}, func(c course.Course) string { return c.ID })
		if err := coll.Load(); err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tNAME\tINSTRUCTOR\tPARTICIPANTS\tCAPACITY")
		for _, c := range coll.Filter(search, func(c course.Course) string { return c.Name }) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", c.ID, c.Name, c.InstructorName, c.Participants, c.Capacity)
		}
	case "payments":
		coll := databind.NewCollection[payment.Payment, payment.NewPayment, payment.UpdatePayment](
			paymentBinding{svc: cli.paymentSvc}, func(p payment.Payment) string { return p.ID })
		if err := coll.Load(); err != nil {
			return err
		}
		fmt.Fprintln(w, "ID\tCHILD\tINVOICE\tAMOUNT\tDUE\tSTATUS")
		for _, p := range coll.Filter(search, func(p payment.Payment) string { return p.ChildName }) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", p.ID, p.ChildName, p.InvoiceNumber, p.Amount, p.DueDate, p.Status)
		}
	default:
		return fmt.Errorf("%q: no such entity", entity)
	}
	return nil
}
