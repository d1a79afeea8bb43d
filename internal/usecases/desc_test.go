package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDescription(t *testing.T) {
	tests := []struct {
		name      string
		desc      string
		wantTitle string
		wantTags  []string
	}{
		{
			name:      "cjk title with cjk hashtags",
			desc:      "猫猫凝视 #少女感 #二次元 #动漫",
			wantTitle: "猫猫凝视",
			wantTags:  []string{"少女感", "二次元", "动漫"},
		},
		{
			name:      "empty description",
			desc:      "",
			wantTitle: "",
			wantTags:  nil,
		},
		{
			name:      "adjacent hashtags and messy whitespace",
			desc:      "  hi   #a#b  ",
			wantTitle: "hi",
			wantTags:  []string{"a", "b"},
		},
		{
			name:      "no hashtags",
			desc:      "just a plain sentence",
			wantTitle: "just a plain sentence",
			wantTags:  nil,
		},
		{
			name:      "hashtags only",
			desc:      "#one #two",
			wantTitle: "",
			wantTags:  []string{"one", "two"},
		},
		{
			name:      "duplicate hashtags kept in order",
			desc:      "clip #fun #cats #fun",
			wantTitle: "clip",
			wantTags:  []string{"fun", "cats", "fun"},
		},
		{
			name:      "hashtag in the middle collapses surrounding space",
			desc:      "before #tag after",
			wantTitle: "before after",
			wantTags:  []string{"tag"},
		},
		{
			name:      "mixed ascii and cjk tag",
			desc:      "mix #abc猫123",
			wantTitle: "mix",
			wantTags:  []string{"abc猫123"},
		},
		{
			name:      "bare hash is not a tag",
			desc:      "price # 100",
			wantTitle: "price # 100",
			wantTags:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDescription(tt.desc)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.Equal(t, tt.wantTags, got.Tags)
		})
	}
}
