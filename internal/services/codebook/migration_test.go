package codebook

import (
	"testing"

	"github.com/killallgit/vidcode-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cb(t *testing.T, raw string) models.Codebook {
	t.Helper()
	c, err := models.ParseCodebook(raw)
	require.NoError(t, err)
	return c
}

func sel(t *testing.T, raw string) models.Selections {
	t.Helper()
	s, err := models.ParseSelections(raw)
	require.NoError(t, err)
	return s
}

func encode(t *testing.T, s models.Selections) string {
	t.Helper()
	raw, err := s.Encode()
	require.NoError(t, err)
	return raw
}

func TestPlan_Apply(t *testing.T) {
	tests := []struct {
		name        string
		old         string
		updated     string
		stored      string
		want        string
		wantChanged bool
	}{
		{
			name:        "positional rename",
			old:         `[{"category":"Tone","tags":["Casual","Serious"]}]`,
			updated:     `[{"category":"Tone","tags":["Light","Serious"]}]`,
			stored:      `{"Tone":["Casual"]}`,
			want:        `{"Tone":["Light"]}`,
			wantChanged: true,
		},
		{
			name:        "unrenamed tag stays",
			old:         `[{"category":"Tone","tags":["Casual","Serious"]}]`,
			updated:     `[{"category":"Tone","tags":["Light","Serious"]}]`,
			stored:      `{"Tone":["Serious"]}`,
			want:        `{"Tone":["Serious"]}`,
			wantChanged: false,
		},
		{
			name:        "deleted category dropped",
			old:         `[{"category":"Tone","tags":["Casual"]},{"category":"Audience","tags":["Teens"]}]`,
			updated:     `[{"category":"Tone","tags":["Casual"]}]`,
			stored:      `{"Tone":["Casual"],"Audience":["Teens"]}`,
			want:        `{"Tone":["Casual"]}`,
			wantChanged: true,
		},
		{
			name:        "unknown stored category dropped",
			old:         `[{"category":"Tone","tags":["Casual"]}]`,
			updated:     `[{"category":"Tone","tags":["Casual"]}]`,
			stored:      `{"Legacy":["x"],"Tone":["Casual"]}`,
			want:        `{"Tone":["Casual"]}`,
			wantChanged: true,
		},
		{
			name:        "renames collapsing into duplicates",
			old:         `[{"category":"Tone","tags":["Casual","Relaxed"]}]`,
			updated:     `[{"category":"Tone","tags":["Light","Light"]}]`,
			stored:      `{"Tone":["Relaxed","Casual"]}`,
			want:        `{"Tone":["Light"]}`,
			wantChanged: true,
		},
		{
			name:        "tag beyond new list keeps its name",
			old:         `[{"category":"Tone","tags":["Casual","Serious","Dry"]}]`,
			updated:     `[{"category":"Tone","tags":["Light"]}]`,
			stored:      `{"Tone":["Dry","Casual"]}`,
			want:        `{"Tone":["Dry","Light"]}`,
			wantChanged: true,
		},
		{
			name:        "empty selections",
			old:         `[{"category":"Tone","tags":["Casual"]}]`,
			updated:     `[]`,
			stored:      `{}`,
			want:        `{}`,
			wantChanged: false,
		},
		{
			name:        "category order preserved",
			old:         `[{"category":"A","tags":["a1"]},{"category":"B","tags":["b1"]}]`,
			updated:     `[{"category":"B","tags":["b2"]},{"category":"A","tags":["a2"]}]`,
			stored:      `{"A":["a1"],"B":["b1"]}`,
			want:        `{"A":["a2"],"B":["b2"]}`,
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewPlan(cb(t, tt.old), cb(t, tt.updated))
			got, changed := plan.Apply(sel(t, tt.stored))
			assert.Equal(t, tt.want, encode(t, got))
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestPlan_IsIdempotent(t *testing.T) {
	old := cb(t, `[{"category":"Tone","tags":["Casual","Serious"]},{"category":"Audience","tags":["Teens"]}]`)
	updated := cb(t, `[{"category":"Tone","tags":["Light","Serious"]}]`)

	stored := []models.Selections{
		sel(t, `{"Tone":["Casual"]}`),
		sel(t, `{"Tone":["Serious"]}`),
		sel(t, `{"Audience":["Teens"]}`),
		sel(t, `{}`),
	}

	first := NewPlan(old, updated)
	changed := 0
	migrated := make([]models.Selections, len(stored))
	for i, s := range stored {
		out, ok := first.Apply(s)
		if ok {
			changed++
		}
		migrated[i] = out
	}
	assert.Equal(t, 2, changed)

	second := NewPlan(updated, updated)
	for _, s := range migrated {
		_, ok := second.Apply(s)
		assert.False(t, ok)
	}
}

type upperStrategy struct{}

func (upperStrategy) Build(old, updated models.Codebook, categoryMap map[string]string) TagRenamer {
	return upperRenamer{}
}

type upperRenamer struct{}

func (upperRenamer) Rename(category, tag string) (string, bool) {
	if tag == "casual" {
		return "CASUAL", true
	}
	return "", false
}

func TestPlan_CustomStrategy(t *testing.T) {
	c := cb(t, `[{"category":"Tone","tags":["casual"]}]`)
	plan := NewPlan(c, c, WithTagStrategy(upperStrategy{}))

	got, changed := plan.Apply(sel(t, `{"Tone":["casual","other"]}`))
	assert.True(t, changed)
	assert.Equal(t, `{"Tone":["CASUAL","other"]}`, encode(t, got))
}
