package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/crmkeeper/internal/client/models"
	"github.com/dmitrijs2005/crmkeeper/internal/client/records"
	"github.com/dmitrijs2005/crmkeeper/internal/common"
)

// recordForm is the CRUD page of one record kind.
type recordForm interface {
	add(ctx context.Context, a *App) error
	update(ctx context.Context, a *App) error
	delete(ctx context.Context, a *App) error
	list(ctx context.Context, a *App) error
}

// form binds a record store to its prompts and table layout.
type form[T models.Fields] struct {
	title   string
	store   *records.Store[T]
	headers []string
	row     func(T) []string
	input   func(a *App, current T) (T, error)
}

func newForms(b *records.Book) map[models.Kind]recordForm {
	return map[models.Kind]recordForm{
		models.KindApplication: form[models.Application]{
			title:   "applications",
			store:   b.Applications,
			headers: []string{"ID", "Company", "Position", "Applied", "Status", "Notes"},
			row: func(f models.Application) []string {
				return []string{f.CompanyName, f.Position, f.ApplicationDate, string(f.Status), f.Notes}
			},
			input: inputApplication,
		},
		models.KindCommunityTask: form[models.CommunityTask]{
			title:   "community tasks",
			store:   b.CommunityTasks,
			headers: []string{"ID", "Community", "Title", "Weekly tasks", "Reminder", "Notes"},
			row: func(f models.CommunityTask) []string {
				return []string{f.CommunityName, f.Title, f.WeeklyTasks, f.ReminderDate, f.Notes}
			},
			input: inputCommunityTask,
		},
		models.KindProject: form[models.Project]{
			title:   "projects",
			store:   b.Projects,
			headers: []string{"ID", "Project", "Subject", "Blog title", "Share date", "Design"},
			row: func(f models.Project) []string {
				return []string{f.ProjectName, f.Subject, f.BlogTitle, f.ShareDate, string(f.DesignStatus)}
			},
			input: inputProject,
		},
		models.KindCourse: form[models.Course]{
			title:   "courses",
			store:   b.Courses,
			headers: []string{"ID", "Course", "Instructor", "Resource", "Midterm", "Final"},
			row: func(f models.Course) []string {
				return []string{f.CourseName, f.Instructor, f.Resource, f.MidtermDate, f.FinalDate}
			},
			input: inputCourse,
		},
	}
}

func (f form[T]) add(ctx context.Context, a *App) error {
	var zero T
	fields, err := f.input(a, zero)
	if err != nil {
		return err
	}
	if err := fields.Validate(); err != nil {
		return err
	}

	rec := f.store.Add(fields)
	a.printf("Added record %d to %s.\n", rec.ID, f.title)
	return nil
}

func (f form[T]) update(ctx context.Context, a *App) error {
	id, err := a.readID("Enter record id to update")
	if err != nil {
		return err
	}
	cur, ok := f.store.Get(id)
	if !ok {
		a.printf("No record %d in %s.\n", id, f.title)
		return fmt.Errorf("update %d: %w", id, common.ErrorNotFound)
	}

	fields, err := f.input(a, cur.Fields)
	if err != nil {
		return err
	}
	if err := fields.Validate(); err != nil {
		return err
	}

	if _, err := f.store.Update(id, fields); err != nil {
		a.printf("No record %d in %s.\n", id, f.title)
		return err
	}
	a.printf("Updated record %d.\n", id)
	return nil
}

func (f form[T]) delete(ctx context.Context, a *App) error {
	id, err := a.readID("Enter record id to delete")
	if err != nil {
		return err
	}
	if err := f.store.Delete(id); err != nil {
		a.printf("No record %d in %s.\n", id, f.title)
		return err
	}
	a.printf("Deleted record %d.\n", id)
	return nil
}

func (f form[T]) list(ctx context.Context, a *App) error {
	recs := f.store.List()
	if len(recs) == 0 {
		a.printf("No %s yet.\n", f.title)
		return nil
	}

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		cells := append([]string{strconv.FormatInt(r.ID, 10)}, f.row(r.Fields)...)
		for i, c := range cells {
			cells[i] = strings.ReplaceAll(c, "\n", " / ")
		}
		rows = append(rows, cells)
	}
	a.println(renderTable(f.headers, rows))
	return nil
}

func (a *App) readID(prompt string) (int64, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id %q", s)
	}
	return id, nil
}

// prompter asks a series of questions and keeps the first read error; once
// it has failed, later questions return the current value unchanged.
type prompter struct {
	a   *App
	err error
}

func (p *prompter) text(label, current string) string {
	if p.err != nil {
		return current
	}
	v, err := GetTextWithDefault(p.a.reader, label, current, p.a.out)
	if err != nil {
		p.err = err
		return current
	}
	return v
}

func (p *prompter) multiline(label, current string) string {
	if p.err != nil {
		return current
	}
	v, err := GetMultiline(p.a.reader, label, current, p.a.out)
	if err != nil {
		p.err = err
		return current
	}
	return v
}

func inputApplication(a *App, cur models.Application) (models.Application, error) {
	p := &prompter{a: a}
	var f models.Application
	f.CompanyName = p.text("Company name", cur.CompanyName)
	f.Position = p.text("Position", cur.Position)
	f.JobDescription = p.multiline("Job description", cur.JobDescription)
	f.ApplicationDate = p.text("Application date (YYYY-MM-DD)", cur.ApplicationDate)
	status := p.text("Status (Pending, Accepted, Rejected)", string(cur.Status))
	f.Notes = p.text("Notes", cur.Notes)
	if p.err != nil {
		return cur, p.err
	}

	st, err := models.ParseApplicationStatus(status)
	if err != nil {
		return cur, err
	}
	f.Status = st
	return f, nil
}

func inputCommunityTask(a *App, cur models.CommunityTask) (models.CommunityTask, error) {
	p := &prompter{a: a}
	var f models.CommunityTask
	f.CommunityName = p.text("Community name", cur.CommunityName)
	f.Title = p.text("Title", cur.Title)
	f.WeeklyTasks = p.multiline("Weekly tasks", cur.WeeklyTasks)
	f.ReminderDate = p.text("Reminder date (YYYY-MM-DD)", cur.ReminderDate)
	f.Notes = p.text("Notes", cur.Notes)
	return f, p.err
}

func inputProject(a *App, cur models.Project) (models.Project, error) {
	p := &prompter{a: a}
	var f models.Project
	f.ProjectName = p.text("Project name", cur.ProjectName)
	f.Subject = p.text("Subject", cur.Subject)
	f.PostDescription = p.multiline("Post description", cur.PostDescription)
	f.BlogTitle = p.text("Blog title", cur.BlogTitle)
	f.BlogSubject = p.text("Blog subject", cur.BlogSubject)
	f.ShareDate = p.text("Share date (YYYY-MM-DD)", cur.ShareDate)
	status := p.text("Design status (Done, NotDone)", string(cur.DesignStatus))
	if p.err != nil {
		return cur, p.err
	}

	st, err := models.ParseProjectStatus(status)
	if err != nil {
		return cur, err
	}
	f.DesignStatus = st
	return f, nil
}

func inputCourse(a *App, cur models.Course) (models.Course, error) {
	p := &prompter{a: a}
	var f models.Course
	f.CourseName = p.text("Course name", cur.CourseName)
	f.Instructor = p.text("Instructor", cur.Instructor)
	f.Resource = p.text("Resource", cur.Resource)
	f.Description = p.multiline("Description", cur.Description)
	f.MidtermDate = p.text("Midterm date (YYYY-MM-DD)", cur.MidtermDate)
	f.FinalDate = p.text("Final date (YYYY-MM-DD)", cur.FinalDate)
	return f, p.err
}
