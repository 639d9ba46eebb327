package main

import (
	"fmt"

	"github.com/bahati/malezi/core/child"
	"github.com/bahati/malezi/core/course"
	"github.com/bahati/malezi/core/educator"
	"github.com/bahati/malezi/core/expense"
	"github.com/bahati/malezi/core/payment"
	"github.com/bahati/malezi/core/schedule"
)

// seed loads a small consistent data set for local development. It goes
// through the services so name snapshots and derived fields are populated
// the same way API writes populate them.
func (cli *commandLine) seed() error {
	amina, err := cli.educatorSvc.Create(educator.NewEducator{
		Name:        "Amina Kalonji",
		Email:       "amina@malezi.cd",
		Phone:       "+243 990 000 001",
		Role:        "Lead Educator",
		Specialties: []string{"Music", "Early literacy"},
		Experience:  "5-10 years",
	})
	if err != nil {
		return err
	}
	joseph, err := cli.educatorSvc.Create(educator.NewEducator{
		Name:       "Joseph Mwamba",
		Email:      "joseph@malezi.cd",
		Phone:      "+243 990 000 002",
		Role:       "Educator",
		Experience: "2-5 years",
	})
	if err != nil {
		return err
	}

	naomi, err := cli.childSvc.Create(child.NewChild{
		Name:           "Naomi Tshiala",
		BirthDate:      "2021-03-14",
		Group:          "Papillons",
		ParentName:     "Grace Tshiala",
		EnrollmentDate: "2024-01-08",
		Allergies:      "peanuts",
		EmergencyName:  "Grace Tshiala",
		EmergencyPhone: "+243 991 000 001",
	})
	if err != nil {
		return err
	}
	if _, err = cli.childSvc.Create(child.NewChild{
		Name:           "David Ilunga",
		BirthDate:      "2020-11-02",
		Group:          "Lions",
		ParentName:     "Patrick Ilunga",
		EnrollmentDate: "2023-09-04",
	}); err != nil {
		return err
	}

	music, err := cli.courseSvc.Create(course.NewCourse{
		Name:         "Morning Music",
		Description:  "Songs, rhythm and movement",
		AgeGroup:     "3-4 years",
		Duration:     "45 min",
		InstructorID: amina.ID,
		Capacity:     12,
		Schedule:     "Mon/Wed 10:00",
	})
	if err != nil {
		return err
	}

	if _, err = cli.paymentSvc.Create(payment.NewPayment{
		ChildID:       naomi.ID,
		Amount:        15000,
		DueDate:       "2024-02-01",
		InvoiceNumber: "INV-1",
	}); err != nil {
		return err
	}

	if _, err = cli.scheduleSvc.Create(schedule.NewEvent{
		CourseID:   music.ID,
		EducatorID: joseph.ID,
		Date:       "2024-02-05",
		StartTime:  "10:00",
		EndTime:    "10:45",
		Group:      "Papillons",
		Capacity:   12,
	}); err != nil {
		return err
	}

	if _, err = cli.expenseSvc.Create(expense.NewExpense{
		Description: "Art supplies",
		Category:    "materials",
		Amount:      4500,
		Date:        "2024-01-20",
		Vendor:      "Papeterie Centrale",
	}); err != nil {
		return err
	}

	fmt.Println("sample data loaded")
	return nil
}
