package dialog

import (
	"context"
	"fmt"

	"topic-lab/domain"
)

const stepPickReport Step = "pick_report"

const (
	reportKeyGroups      = "report:groups"
	reportKeyDepartments = "report:departments"
	reportKeyWithTopic   = "report:with_topic"
	reportKeyWithout     = "report:without_topic"
	reportKeyQueries     = "report:queries"
)

// startAnalytics offers the teacher-facing reports.
func (e *Engine) startAnalytics(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	_, msgs, err := e.requireTeacher(ctx, id)
	if msgs != nil || err != nil {
		return msgs, err
	}

	sess := e.sessions.Begin(id, KindAnalytics, stepPickReport)
	options := []domain.Option{
		{Key: reportKeyGroups, Label: "Students per group"},
		{Key: reportKeyDepartments, Label: "Students per department"},
		{Key: reportKeyWithTopic, Label: "Students with a topic"},
		{Key: reportKeyWithout, Label: "Students without a topic"},
		{Key: reportKeyQueries, Label: "Popular searches"},
	}
	sess.Offer(options)
	return e.reply(id, "Pick a report:", options...), nil
}

func (e *Engine) advanceAnalytics(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	if sess.Step != stepPickReport {
		return e.abort(id, fmt.Errorf("analytics: unknown step %q", sess.Step))
	}

	key, ok := sess.Resolve(input)
	if !ok {
		return e.reply(id, "Please pick one of the listed reports."), nil
	}

	var (
		report string
		err    error
	)
	switch key {
	case reportKeyGroups:
		report, err = e.reporter.GroupDistribution(ctx)
	case reportKeyDepartments:
		report, err = e.reporter.DepartmentDistribution(ctx)
	case reportKeyWithTopic:
		report, err = e.reporter.StudentsWithTopic(ctx)
	case reportKeyWithout:
		report, err = e.reporter.StudentsWithoutTopic(ctx)
	default:
		report, err = e.reporter.PopularQueries(ctx)
	}
	if err != nil {
		return e.abort(id, err)
	}

	e.sessions.End(id)
	if report == "" {
		return e.reply(id, "No data for this report yet."), nil
	}
	return e.reply(id, report), nil
}
