// Package dashboard derives the overview numbers and the upcoming-events list
// from snapshots of the record collections. It never mutates the stores.
package dashboard

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
	"github.com/dmitrijs2005/crmkeeper/internal/client/records"
)

// UpcomingLimit is how many events the dashboard shows.
const UpcomingLimit = 3

type ApplicationStats struct {
	Total, Pending, Accepted, Rejected int
}

type CommunityTaskStats struct {
	// Every community task counts as active; tasks carry no completion state.
	Total, Active int
}

type ProjectStats struct {
	Total, Done, NotDone int
}

type CourseStats struct {
	// Upcoming: midterm or final strictly after now.
	// Completed: final strictly before now.
	Total, Upcoming, Completed int
}

type Summary struct {
	Applications          ApplicationStats
	CommunityTasks        CommunityTaskStats
	Projects              ProjectStats
	Courses               CourseStats
	SuccessRate           int
	ProjectCompletionRate int
	TotalRecords          int
	Upcoming              []Event
}

// Summarize computes every dashboard number at instant now.
func Summarize(b *records.Book, now time.Time) Summary {
	apps := b.Applications.List()
	tasks := b.CommunityTasks.List()
	projects := b.Projects.List()
	courses := b.Courses.List()

	s := Summary{
		Applications:          applicationStats(apps),
		CommunityTasks:        CommunityTaskStats{Total: len(tasks), Active: len(tasks)},
		Projects:              projectStats(projects),
		Courses:               courseStats(courses, now),
		SuccessRate:           SuccessRate(apps),
		ProjectCompletionRate: ProjectCompletionRate(projects),
		TotalRecords:          len(apps) + len(tasks) + len(projects) + len(courses),
	}
	s.Upcoming = upcoming(collectEvents(courses, projects, tasks), now, UpcomingLimit)
	return s
}

// SuccessRate is round(accepted / total * 100), 0 without applications.
func SuccessRate(apps []models.Record[models.Application]) int {
	st := applicationStats(apps)
	return percent(st.Accepted, st.Total)
}

// ProjectCompletionRate is round(done / total * 100), 0 without projects.
func ProjectCompletionRate(projects []models.Record[models.Project]) int {
	st := projectStats(projects)
	return percent(st.Done, st.Total)
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func applicationStats(apps []models.Record[models.Application]) ApplicationStats {
	st := ApplicationStats{Total: len(apps)}
	for _, a := range apps {
		switch a.Fields.Status {
		case models.StatusPending:
			st.Pending++
		case models.StatusAccepted:
			st.Accepted++
		case models.StatusRejected:
			st.Rejected++
		}
	}
	return st
}

func projectStats(projects []models.Record[models.Project]) ProjectStats {
	st := ProjectStats{Total: len(projects)}
	for _, p := range projects {
		switch p.Fields.DesignStatus {
		case models.StatusDone:
			st.Done++
		case models.StatusNotDone:
			st.NotDone++
		}
	}
	return st
}

func courseStats(courses []models.Record[models.Course], now time.Time) CourseStats {
	st := CourseStats{Total: len(courses)}
	for _, c := range courses {
		midterm, mOK := parse(c.Fields.MidtermDate, now)
		final, fOK := parse(c.Fields.FinalDate, now)
		if (mOK && midterm.After(now)) || (fOK && final.After(now)) {
			st.Upcoming++
		}
		if fOK && final.Before(now) {
			st.Completed++
		}
	}
	return st
}

func parse(s string, now time.Time) (time.Time, bool) {
	t, err := models.ParseDate(s, now.Location())
	return t, err == nil
}

// EventType tells where an upcoming event comes from.
type EventType string

const (
	EventExam      EventType = "Exam"
	EventProject   EventType = "Project"
	EventCommunity EventType = "Community"
)

type Event struct {
	Title string
	Date  time.Time
	Type  EventType
}

// UpcomingEvents lists up to limit dated events strictly after now, earliest
// first. Events are course midterms and finals, project share dates and
// community task reminders; records with unparsable dates are skipped.
func UpcomingEvents(b *records.Book, now time.Time, limit int) []Event {
	return upcoming(collectEvents(b.Courses.List(), b.Projects.List(), b.CommunityTasks.List()), now, limit)
}

type datedEvent struct {
	title string
	date  string
	typ   EventType
}

func collectEvents(
	courses []models.Record[models.Course],
	projects []models.Record[models.Project],
	tasks []models.Record[models.CommunityTask],
) []datedEvent {
	events := make([]datedEvent, 0, 2*len(courses)+len(projects)+len(tasks))
	for _, c := range courses {
		events = append(events,
			datedEvent{c.Fields.CourseName + " Midterm Exam", c.Fields.MidtermDate, EventExam},
			datedEvent{c.Fields.CourseName + " Final Exam", c.Fields.FinalDate, EventExam},
		)
	}
	for _, p := range projects {
		events = append(events, datedEvent{p.Fields.ProjectName + " Share", p.Fields.ShareDate, EventProject})
	}
	for _, t := range tasks {
		events = append(events, datedEvent{t.Fields.CommunityName + " - " + t.Fields.Title, t.Fields.ReminderDate, EventCommunity})
	}
	return events
}

func upcoming(events []datedEvent, now time.Time, limit int) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		d, ok := parse(e.date, now)
		if !ok || !d.After(now) {
			continue
		}
		out = append(out, Event{Title: e.title, Date: d, Type: e.typ})
	}

	slices.SortStableFunc(out, func(a, b Event) int { return cmp.Compare(a.Date.UnixNano(), b.Date.UnixNano()) })

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
