package community_test

import (
	"errors"
	"testing"

	"github.com/PremPMehta/Saas-LMS-Admin-sub002/internal/domain/community"
)

func validCommunity() community.Community {
	return community.Community{
		ID:          "c1",
		Name:        "osaka-judo",
		DisplayName: "Osaka Judo",
		Description: "Judo classes",
		Category:    community.CategoryFitness,
		PlanID:      "growth",
		Status:      community.StatusActive,
	}
}

// TestCommunity_Validate tests validation of Community.
func TestCommunity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*community.Community)
		wantErr error
	}{
		{name: "valid community", edit: func(c *community.Community) {}},
		{name: "empty name", edit: func(c *community.Community) { c.Name = "" }, wantErr: community.ErrEmptyName},
		{name: "uppercase name", edit: func(c *community.Community) { c.Name = "OsakaJudo" }, wantErr: community.ErrInvalidName},
		{name: "name with spaces", edit: func(c *community.Community) { c.Name = "osaka judo" }, wantErr: community.ErrInvalidName},
		{name: "leading hyphen", edit: func(c *community.Community) { c.Name = "-osaka" }, wantErr: community.ErrInvalidName},
		{name: "empty description", edit: func(c *community.Community) { c.Description = "" }, wantErr: community.ErrEmptyDescription},
		{name: "unknown category", edit: func(c *community.Community) { c.Category = "sailing" }, wantErr: community.ErrInvalidCategory},
		{name: "missing plan", edit: func(c *community.Community) { c.PlanID = "" }, wantErr: community.ErrEmptyPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCommunity()
			tt.edit(&c)
			if err := c.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestSlugify tests name-to-slug derivation.
func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Osaka Judo Academy", "osaka-judo-academy"},
		{"  Trim Me  ", "trim-me"},
		{"Already-Slugged", "already-slugged"},
		{"Lots   of---junk!!", "lots-of-junk"},
		{"École 42", "cole-42"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := community.Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestCommunity_CategoryLabel tests label resolution with fallback.
func TestCommunity_CategoryLabel(t *testing.T) {
	c := validCommunity()
	if got := c.CategoryLabel(); got != "Fitness & Sports" {
		t.Errorf("CategoryLabel() = %q", got)
	}
	c.Category = "legacy-code"
	if got := c.CategoryLabel(); got != "legacy-code" {
		t.Errorf("unknown category label = %q", got)
	}
}
