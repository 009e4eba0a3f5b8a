package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/crmkeeper/internal/common"
)

// ApplicationStatus is the state of a job application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "Pending"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

// ApplicationStatuses lists the statuses in display order.
var ApplicationStatuses = []ApplicationStatus{StatusPending, StatusAccepted, StatusRejected}

// ParseApplicationStatus matches s case-insensitively. An empty string
// yields StatusPending, the form default.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPending, nil
	}
	for _, st := range ApplicationStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidStatus, s)
}

// Application is a job application.
type Application struct {
	CompanyName     string            `json:"companyName"`
	Position        string            `json:"position"`
	JobDescription  string            `json:"jobDescription"`
	ApplicationDate string            `json:"applicationDate"`
	Status          ApplicationStatus `json:"status"`
	Notes           string            `json:"notes"`
}

func (a Application) Kind() Kind { return KindApplication }

func (a Application) Validate() error {
	if err := requireFields(
		field{"company name", a.CompanyName},
		field{"position", a.Position},
		field{"job description", a.JobDescription},
		field{"application date", a.ApplicationDate},
	); err != nil {
		return err
	}
	if _, err := ParseApplicationStatus(string(a.Status)); err != nil {
		return err
	}
	return nil
}
