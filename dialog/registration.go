package dialog

import (
	"context"
	"fmt"
	"strings"

	"topic-lab/domain"
	"topic-lab/errors"
	"topic-lab/services"
)

const (
	stepRole       Step = "role"
	stepAccessCode Step = "access_code"
	stepName       Step = "name"
	stepEmail      Step = "email"
	stepPhone      Step = "phone"
	stepGroup      Step = "group"
	stepDepartment Step = "department"
)

const (
	roleKeyStudent = "role:student"
	roleKeyTeacher = "role:teacher"
)

func (e *Engine) startRegistration(id domain.Identity) []domain.Message {
	sess := e.sessions.Begin(id, KindRegistration, stepRole)
	options := []domain.Option{
		{Key: roleKeyStudent, Label: "Student"},
		{Key: roleKeyTeacher, Label: "Teacher"},
	}
	sess.Offer(options)
	return e.reply(id, "Welcome! Who are you?", options...)
}

func (e *Engine) advanceRegistration(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	switch sess.Step {
	case stepRole:
		key, ok := sess.Resolve(input)
		if !ok {
			return e.reply(id, "Please pick one of the offered roles."), nil
		}
		if key == roleKeyTeacher {
			sess.Set("role", string(domain.RoleTeacher))
			sess.Step = stepAccessCode
			return e.reply(id, "Enter the teacher access code:"), nil
		}
		sess.Set("role", string(domain.RoleStudent))
		sess.Step = stepName
		return e.reply(id, "Enter your full name:"), nil

	case stepAccessCode:
		ok, err := e.participants.VerifyAccessCode(input)
		if err != nil {
			return e.abort(id, err)
		}
		if !ok {
			return e.reply(id, "Wrong access code. Try again:"), nil
		}
		sess.Step = stepName
		return e.reply(id, "Enter your full name:"), nil

	case stepName:
		name := strings.TrimSpace(input)
		if !minRunes(name, 2) {
			return e.reply(id, "The name must be at least 2 characters long. Try again:"), nil
		}
		sess.Set("name", name)
		sess.Step = stepEmail
		return e.reply(id, "Enter your email (or type «skip»):"), nil

	case stepEmail:
		if !isSkip(input) {
			if !validEmail(strings.TrimSpace(input)) {
				return e.reply(id, "That does not look like an email. Try again or type «skip»:"), nil
			}
			sess.Set("email", strings.TrimSpace(input))
		}
		sess.Step = stepPhone
		return e.reply(id, "Enter your phone in the format +7XXXXXXXXXX (or type «skip»):"), nil

	case stepPhone:
		if !isSkip(input) {
			if !validPhone(strings.TrimSpace(input)) {
				return e.reply(id, "The phone must look like +7XXXXXXXXXX. Try again or type «skip»:"), nil
			}
			sess.Set("phone", strings.TrimSpace(input))
		}
		if sess.Get("role") == string(domain.RoleStudent) {
			sess.Step = stepGroup
			return e.reply(id, "Enter your group (for example «ИВТ-21»):"), nil
		}
		return e.askDepartment(ctx, sess)

	case stepGroup:
		group := strings.ToUpper(strings.TrimSpace(input))
		if !validGroup(group) {
			return e.reply(id, "The group must look like «ИВТ-21». Try again:"), nil
		}
		sess.Set("group", group)
		return e.askDepartment(ctx, sess)

	case stepDepartment:
		key, ok := sess.Resolve(input)
		if !ok {
			return e.reply(id, "Please pick one of the listed departments."), nil
		}
		deptID, ok := parseID(key, "dept:")
		if !ok {
			return e.reply(id, "Please pick one of the listed departments."), nil
		}
		return e.commitRegistration(ctx, sess, deptID)
	}

	return e.abort(id, fmt.Errorf("registration: unknown step %q", sess.Step))
}

func (e *Engine) askDepartment(ctx context.Context, sess *Session) ([]domain.Message, error) {
	departments, err := e.departments.List(ctx)
	if err != nil {
		return e.abort(sess.Identity, err)
	}
	if len(departments) == 0 {
		e.sessions.End(sess.Identity)
		return e.reply(sess.Identity, "No departments are configured yet. Try again later."), nil
	}

	options := make([]domain.Option, 0, len(departments))
	for _, d := range departments {
		options = append(options, domain.Option{Key: fmt.Sprintf("dept:%d", d.ID), Label: d.Name})
	}
	sess.Offer(options)
	sess.Step = stepDepartment
	return e.reply(sess.Identity, "Pick your department:", options...), nil
}

func (e *Engine) commitRegistration(ctx context.Context, sess *Session, deptID int64) ([]domain.Message, error) {
	id := sess.Identity

	// The department list was offered earlier in the dialog; recheck it so a
	// deletion in between surfaces as a clean restart instead of an FK error.
	if _, err := e.departments.GetByID(ctx, deptID); err != nil {
		if err == errors.ErrNotFound {
			e.sessions.End(id)
			return e.reply(id, "That department no longer exists. Please register again."), nil
		}
		return e.abort(id, err)
	}

	in := services.RegistrationInput{
		Identity:     id,
		Role:         domain.Role(sess.Get("role")),
		Name:         sess.Get("name"),
		Group:        sess.Get("group"),
		DepartmentID: deptID,
	}
	if v := sess.Get("email"); v != "" {
		in.Email = &v
	}
	if v := sess.Get("phone"); v != "" {
		in.Phone = &v
	}

	err := e.participants.Register(ctx, in)
	switch err {
	case nil:
	case errors.ErrAlreadyRegistered:
		e.sessions.End(id)
		return e.reply(id, "You are already registered."), nil
	default:
		return e.abort(id, err)
	}

	e.sessions.End(id)
	if in.Role == domain.RoleTeacher {
		return e.reply(id, "Registration complete. Welcome, teacher!"), nil
	}
	return e.reply(id, "Registration complete. Welcome, student!"), nil
}
