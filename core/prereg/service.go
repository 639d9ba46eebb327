package prereg

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/bahati/malezi/core"
)

var ErrNotFound = errors.New("pre-registration not found")

type (
	// Repository has no delete: pre-registrations are reviewed, never removed.
	Repository interface {
		CreatePreRegistration(pr PreRegistration) (PreRegistration, error)
		QueryAllPreRegistrations() ([]PreRegistration, error)
		GetPreRegistrationByID(id string) (PreRegistration, error)
		FilterPreRegistrations(filter QueryFilter) ([]PreRegistration, error)
		UpdatePreRegistration(id string, up UpdatePreRegistration) (PreRegistration, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
		conf    *core.Config
	}
)

func NewService(repo Repository, mailSvc core.EmailService, conf *core.Config) *Service {
	return &Service{repo: repo, mailSvc: mailSvc, conf: conf}
}

func (svc *Service) Create(np NewPreRegistration) (PreRegistration, error) {
	now := time.Now().UTC()
	pr := PreRegistration{
		ChildName:          np.ChildName,
		ChildBirthDate:     np.ChildBirthDate,
		ParentName:         np.ParentName,
		ParentEmail:        np.ParentEmail,
		ParentPhone:        np.ParentPhone,
		PreferredStartDate: np.PreferredStartDate,
		Plan:               np.Plan,
		Status:             StatusPending,
		SubmittedAt:        now,
		UpdatedAt:          now,
	}
	pr, err := svc.repo.CreatePreRegistration(pr)
	if err != nil {
		return PreRegistration{}, err
	}
	svc.notifyStaff(pr)
	return pr, nil
}

func (svc *Service) QueryAll() ([]PreRegistration, error) {
	return svc.repo.QueryAllPreRegistrations()
}

func (svc *Service) GetByID(id string) (PreRegistration, error) {
	return svc.repo.GetPreRegistrationByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]PreRegistration, error) {
	return svc.repo.FilterPreRegistrations(filter)
}

func (svc *Service) Update(id string, up UpdatePreRegistration) (PreRegistration, error) {
	orig, err := svc.repo.GetPreRegistrationByID(id)
	if err != nil {
		return PreRegistration{}, err
	}
	pr, err := svc.repo.UpdatePreRegistration(id, up)
	if err != nil {
		return PreRegistration{}, err
	}
	if orig.Status != StatusApproved && pr.Status == StatusApproved {
		svc.notifyParentApproved(pr)
	}
	return pr, nil
}

func (svc *Service) notifyStaff(pr PreRegistration) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: svc.conf.StaffEmail}},
		Subject: "New pre-registration: " + pr.ChildName,
		TextContent: fmt.Sprintf(
			"%s submitted a pre-registration for %s (plan: %s, preferred start: %s).\n"+
				"Review it at %s/admin/pre-registrations.",
			pr.ParentName, pr.ChildName, pr.Plan, pr.PreferredStartDate, svc.conf.FrontendBaseURL,
		),
	})
}

func (svc *Service) notifyParentApproved(pr PreRegistration) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: pr.ParentName, Address: pr.ParentEmail}},
		Subject: "Your pre-registration has been approved",
		TextContent: fmt.Sprintf(
			"Dear %s,\n\nGood news! The pre-registration for %s has been approved. "+
				"Our team will contact you shortly to finalize the enrollment.\n\nThe %s team",
			pr.ParentName, pr.ChildName, svc.conf.AppName,
		),
	})
}
