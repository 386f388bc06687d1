// Package codebook rewrites stored annotations when a project's codebook
// changes.
package codebook

import (
	"github.com/killallgit/vidcode-api/internal/models"
)

// TagRenamer resolves an old tag name inside a (new) category
type TagRenamer interface {
	Rename(category, tag string) (string, bool)
}

// TagStrategy builds the tag renames between two codebooks. categoryMap
// maps old category names to new ones.
type TagStrategy interface {
	Build(old, updated models.Codebook, categoryMap map[string]string) TagRenamer
}

// PositionalStrategy pairs tags by position: the i-th tag of an old
// category becomes the i-th tag of its matched new category.
type PositionalStrategy struct{}

// Build implements TagStrategy
func (PositionalStrategy) Build(old, updated models.Codebook, categoryMap map[string]string) TagRenamer {
	renames := renameTable{}
	for _, oldCat := range old {
		newName, ok := categoryMap[oldCat.Category]
		if !ok {
			continue
		}
		newCat, ok := updated.Find(newName)
		if !ok {
			continue
		}
		limit := min(len(oldCat.Tags), len(newCat.Tags))
		for i := 0; i < limit; i++ {
			renames.add(newName, oldCat.Tags[i].Name, newCat.Tags[i].Name)
		}
	}
	return renames
}

type renameTable map[string]map[string]string

func (r renameTable) add(category, from, to string) {
	tags, ok := r[category]
	if !ok {
		tags = make(map[string]string)
		r[category] = tags
	}
	if _, exists := tags[from]; !exists {
		tags[from] = to
	}
}

// Rename implements TagRenamer
func (r renameTable) Rename(category, tag string) (string, bool) {
	to, ok := r[category][tag]
	return to, ok
}

// Option configures a Plan
type Option func(*planOptions)

type planOptions struct {
	strategy TagStrategy
}

// WithTagStrategy replaces the positional tag pairing
func WithTagStrategy(s TagStrategy) Option {
	return func(o *planOptions) {
		o.strategy = s
	}
}

// Plan is a prepared codebook migration
type Plan struct {
	categoryMap map[string]string
	kept        map[string]struct{}
	renamer     TagRenamer
}

// NewPlan prepares the migration from old to updated. Categories are
// matched by exact name.
func NewPlan(old, updated models.Codebook, opts ...Option) *Plan {
	o := planOptions{strategy: PositionalStrategy{}}
	for _, opt := range opts {
		opt(&o)
	}

	kept := make(map[string]struct{}, len(updated))
	for _, c := range updated {
		kept[c.Category] = struct{}{}
	}

	categoryMap := make(map[string]string)
	for _, c := range old {
		if _, ok := kept[c.Category]; ok {
			categoryMap[c.Category] = c.Category
		}
	}

	return &Plan{
		categoryMap: categoryMap,
		kept:        kept,
		renamer:     o.strategy.Build(old, updated, categoryMap),
	}
}

// Apply migrates one annotation's selections and reports whether anything
// changed. Categories absent from the new codebook are dropped; tags
// without a rename keep their name.
func (p *Plan) Apply(sel models.Selections) (models.Selections, bool) {
	out := make(models.Selections, 0, len(sel))
	index := make(map[string]int, len(sel))

	for _, cs := range sel {
		category, ok := p.categoryMap[cs.Category]
		if !ok {
			category = cs.Category
		}
		if _, ok := p.kept[category]; !ok {
			continue
		}

		tags := make([]string, 0, len(cs.Tags))
		for _, tag := range cs.Tags {
			if renamed, ok := p.renamer.Rename(category, tag); ok {
				tag = renamed
			}
			tags = append(tags, tag)
		}

		if i, seen := index[category]; seen {
			out[i].Tags = models.UniqueTags(append(out[i].Tags, tags...))
			continue
		}
		index[category] = len(out)
		out = append(out, models.CategorySelection{Category: category, Tags: models.UniqueTags(tags)})
	}

	return out, !out.Equal(sel)
}
