package dialog

import (
	"context"
	"fmt"

	"topic-lab/domain"
	"topic-lab/errors"
)

const stepPickCategory Step = "pick_category"

// startCategories browses the category tree. Picking a node with children
// descends; picking a leaf lists its topics.
func (e *Engine) startCategories(ctx context.Context, id domain.Identity) ([]domain.Message, error) {
	if _, err := e.participants.WhoIs(ctx, id); err != nil {
		if err == errors.ErrNotRegistered {
			return e.startRegistration(id), nil
		}
		return e.abort(id, err)
	}

	categories, err := e.categories.ListTop(ctx)
	if err != nil {
		return e.abort(id, err)
	}
	if len(categories) == 0 {
		return e.reply(id, "No categories are configured yet."), nil
	}

	sess := e.sessions.Begin(id, KindCategories, stepPickCategory)
	options := categoryOptions(categories)
	sess.Offer(options)
	return e.reply(id, "Pick a category:", options...), nil
}

func (e *Engine) advanceCategories(ctx context.Context, sess *Session, input string) ([]domain.Message, error) {
	id := sess.Identity

	if sess.Step != stepPickCategory {
		return e.abort(id, fmt.Errorf("categories: unknown step %q", sess.Step))
	}

	key, ok := sess.Resolve(input)
	if !ok {
		return e.reply(id, "Please pick one of the listed categories."), nil
	}
	categoryID, ok := parseID(key, "cat:")
	if !ok {
		return e.reply(id, "Please pick one of the listed categories."), nil
	}

	children, err := e.categories.ListChildren(ctx, categoryID)
	if err != nil {
		return e.abort(id, err)
	}
	if len(children) > 0 {
		options := categoryOptions(children)
		sess.Offer(options)
		return e.reply(id, "Pick a subcategory:", options...), nil
	}

	cards, err := e.topicReads.ListByCategory(ctx, categoryID)
	if err != nil {
		return e.abort(id, err)
	}
	e.sessions.End(id)
	if len(cards) == 0 {
		return e.reply(id, "No topics in this category."), nil
	}
	return e.reply(id, renderCards("Topics in this category:", cards)), nil
}

func categoryOptions(categories []domain.Category) []domain.Option {
	options := make([]domain.Option, 0, len(categories))
	for _, c := range categories {
		options = append(options, domain.Option{
			Key:   fmt.Sprintf("cat:%d", c.ID),
			Label: c.Name,
		})
	}
	return options
}
