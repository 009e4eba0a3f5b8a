package records

import (
	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
	"github.com/dmitrijs2005/crmkeeper/internal/logging"
)

// Book bundles the four independent collections of one process.
type Book struct {
	Applications   *Store[models.Application]
	CommunityTasks *Store[models.CommunityTask]
	Projects       *Store[models.Project]
	Courses        *Store[models.Course]
}

func NewBook(log logging.Logger) *Book {
	return &Book{
		Applications:   NewStore[models.Application](log),
		CommunityTasks: NewStore[models.CommunityTask](log),
		Projects:       NewStore[models.Project](log),
		Courses:        NewStore[models.Course](log),
	}
}

// Total counts the records of all collections.
func (b *Book) Total() int {
	return b.Applications.Len() + b.CommunityTasks.Len() + b.Projects.Len() + b.Courses.Len()
}
