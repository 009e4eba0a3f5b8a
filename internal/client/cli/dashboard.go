package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/crmkeeper/internal/client/dashboard"
	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
)

// Dashboard prints the per-kind summary cards followed by the nearest
// upcoming events.
func (a *App) Dashboard(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	s := dashboard.Summarize(a.book, a.now())
	a.log.Debug(ctx, "dashboard computed", "records", s.TotalRecords, "upcoming", len(s.Upcoming))

	if u := a.authService.Current(); u != nil {
		a.printf("Dashboard for %s\n", u.FullName())
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("Applications",
			fmt.Sprintf("Total: %d", s.Applications.Total),
			fmt.Sprintf("Pending: %d", s.Applications.Pending),
			fmt.Sprintf("Accepted: %d", s.Applications.Accepted),
			fmt.Sprintf("Rejected: %d", s.Applications.Rejected),
			fmt.Sprintf("Success rate: %d%%", s.SuccessRate),
		),
		renderCard("Community",
			fmt.Sprintf("Total: %d", s.CommunityTasks.Total),
			fmt.Sprintf("Active: %d", s.CommunityTasks.Active),
		),
		renderCard("Projects",
			fmt.Sprintf("Total: %d", s.Projects.Total),
			fmt.Sprintf("Done: %d", s.Projects.Done),
			fmt.Sprintf("Not done: %d", s.Projects.NotDone),
			fmt.Sprintf("Completion: %d%%", s.ProjectCompletionRate),
		),
		renderCard("Courses",
			fmt.Sprintf("Total: %d", s.Courses.Total),
			fmt.Sprintf("Upcoming: %d", s.Courses.Upcoming),
			fmt.Sprintf("Completed: %d", s.Courses.Completed),
		),
	)
	a.println(cards)
	a.printf("Total records: %d\n", s.TotalRecords)

	if len(s.Upcoming) == 0 {
		a.println("No upcoming events.")
		return nil
	}

	rows := make([][]string, 0, len(s.Upcoming))
	for _, e := range s.Upcoming {
		rows = append(rows, []string{e.Date.Format(models.DateLayout), string(e.Type), e.Title})
	}
	a.println("Upcoming events")
	a.println(renderTable([]string{"Date", "Type", "Event"}, rows))
	return nil
}
