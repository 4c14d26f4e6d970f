package dialog

import (
	"context"

	"topic-lab/domain"
	"topic-lab/errors"
)

// requireStudent resolves the sender as a student. A non-nil message slice
// means the caller is done: the sender was a teacher, unregistered, or the
// lookup failed.
func (e *Engine) requireStudent(ctx context.Context, id domain.Identity) (domain.Student, []domain.Message, error) {
	student, err := e.participants.Student(ctx, id)
	switch err {
	case nil:
		return student, nil, nil
	case errors.ErrNotRegistered:
	default:
		msgs, err := e.abort(id, err)
		return domain.Student{}, msgs, err
	}

	if _, err := e.participants.Teacher(ctx, id); err == nil {
		return domain.Student{}, e.reply(id, "This action is for students."), nil
	}
	return domain.Student{}, e.startRegistration(id), nil
}

func (e *Engine) requireTeacher(ctx context.Context, id domain.Identity) (domain.Teacher, []domain.Message, error) {
	teacher, err := e.participants.Teacher(ctx, id)
	switch err {
	case nil:
		return teacher, nil, nil
	case errors.ErrNotRegistered:
	default:
		msgs, err := e.abort(id, err)
		return domain.Teacher{}, msgs, err
	}

	if _, err := e.participants.Student(ctx, id); err == nil {
		return domain.Teacher{}, e.reply(id, "This action is for teachers."), nil
	}
	return domain.Teacher{}, e.startRegistration(id), nil
}
