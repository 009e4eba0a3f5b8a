package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/crmkeeper/internal/common"
)

// ProjectStatus tells whether the project's design work is finished.
type ProjectStatus string

const (
	StatusDone    ProjectStatus = "Done"
	StatusNotDone ProjectStatus = "NotDone"
)

var ProjectStatuses = []ProjectStatus{StatusDone, StatusNotDone}

// ParseProjectStatus matches s case-insensitively, ignoring spaces so that
// "not done" is accepted. An empty string yields StatusNotDone.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" {
		return StatusNotDone, nil
	}
	for _, st := range ProjectStatuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidStatus, s)
}

// Project is a personal project with its blog post plan.
type Project struct {
	ProjectName     string        `json:"projectName"`
	Subject         string        `json:"subject"`
	PostDescription string        `json:"postDescription"`
	BlogTitle       string        `json:"blogTitle"`
	BlogSubject     string        `json:"blogSubject"`
	ShareDate       string        `json:"shareDate"`
	DesignStatus    ProjectStatus `json:"designStatus"`
}

func (p Project) Kind() Kind { return KindProject }

func (p Project) Validate() error {
	if err := requireFields(
		field{"project name", p.ProjectName},
		field{"subject", p.Subject},
		field{"post description", p.PostDescription},
		field{"share date", p.ShareDate},
	); err != nil {
		return err
	}
	if _, err := ParseProjectStatus(string(p.DesignStatus)); err != nil {
		return err
	}
	return nil
}
