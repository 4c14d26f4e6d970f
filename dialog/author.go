package dialog

import (
	"context"
	"fmt"
	"strings"

	"topic-lab/domain"
	"topic-lab/search"
	"topic-lab/services"
)

const (
	stepTitle       Step = "title"
	stepDescription Step = "description"
	stepKeywords    Step = "keywords"
)

// startAuthor begins the topic suggestion dialog. Both roles may suggest:
// a teacher's topic is born supervised and free for requests, a student's
// one is a proposal awaiting a teacher's approval.
func (e *Engine) startAuthor(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	student, err := e.participants.Student(ctx, id)
	if err == nil {
		sess := e.sessions.Begin(id, KindAuthor, stepTitle)
		sess.Set("role", string(domain.RoleStudent))
		sess.Set("actor_id", fmt.Sprintf("%d", student.ID))
		sess.Set("department_id", fmt.Sprintf("%d", student.DepartmentID))
		return e.reply(id, "Enter the topic title:"), nil
	}

	teacher, msgs, err := e.requireTeacher(ctx, id)
	if msgs != nil || err != nil {
		return msgs, err
	}
	sess := e.sessions.Begin(id, KindAuthor, stepTitle)
	sess.Set("role", string(domain.RoleTeacher))
	sess.Set("actor_id", fmt.Sprintf("%d", teacher.ID))
	sess.Set("department_id", fmt.Sprintf("%d", teacher.DepartmentID))
	return e.reply(id, "Enter the topic title:"), nil
}

func (e *Engine) advanceAuthor(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	switch sess.Step {
	case stepTitle:
		title := strings.TrimSpace(input)
		if !minRunes(title, 5) {
			return e.reply(id, "The title must be at least 5 characters long. Try again:"), nil
		}
		sess.Set("title", title)
		sess.Step = stepDescription
		return e.reply(id, "Enter a short description (or type «skip»):"), nil

	case stepDescription:
		if !isSkip(input) {
			desc := strings.TrimSpace(input)
			if !minRunes(desc, 10) {
				return e.reply(id, "The description must be at least 10 characters long. Try again or type «skip»:"), nil
			}
			sess.Set("description", desc)
		}
		sess.Step = stepKeywords
		return e.reply(id, "Enter keywords, separated by commas:"), nil

	case stepKeywords:
		keywords := search.ParseKeywords(input)
		if len(keywords) == 0 {
			return e.reply(id, "Enter at least one keyword:"), nil
		}
		return e.commitAuthor(ctx, sess, keywords)
	}

	return e.abort(id, fmt.Errorf("author: unknown step %q", sess.Step))
}

func (e *Engine) commitAuthor(ctx context.Context, sess *Session, keywords []string) ([]domain.Message, error) {
	id := sess.Identity

	actorID, ok := parseID("actor:"+sess.Get("actor_id"), "actor:")
	if !ok {
		return e.abort(id, fmt.Errorf("author: corrupt actor id %q", sess.Get("actor_id")))
	}
	deptID, _ := parseID("dept:"+sess.Get("department_id"), "dept:")
	role := domain.Role(sess.Get("role"))

	in := services.AuthorInput{
		Title:        sess.Get("title"),
		Keywords:     keywords,
		DepartmentID: deptID,
	}
	if v := sess.Get("description"); v != "" {
		in.Description = &v
	}
	if role == domain.RoleTeacher {
		in.TeacherID = &actorID
	} else {
		in.ProposedBy = &actorID
	}

	if _, err := e.topics.Author(ctx, id, role, in); err != nil {
		return e.abort(id, err)
	}

	e.sessions.End(id)
	if role == domain.RoleTeacher {
		return e.reply(id, fmt.Sprintf("Topic «%s» published. Students can now request it.", in.Title)), nil
	}
	return e.reply(id, fmt.Sprintf("Topic «%s» submitted for approval.", in.Title)), nil
}
