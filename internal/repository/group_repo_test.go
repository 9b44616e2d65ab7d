package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/repository"
)

func TestContains(t *testing.T) {
	groups := []string{"Alpha", "Beta"}

	assert.True(t, repository.Contains(groups, "Alpha"))
	assert.False(t, repository.Contains(groups, "alpha"), "comparison is case sensitive")
	assert.False(t, repository.Contains(groups, "Gamma"))
	assert.False(t, repository.Contains(nil, "Alpha"))
}

func TestNormalizeGroups(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "trims and drops empties",
			input:    []string{" Alpha ", "", "  ", "Beta"},
			expected: []string{"Alpha", "Beta"},
		},
		{
			name:     "deduplicates preserving first occurrence",
			input:    []string{"Beta", "Alpha", "Beta"},
			expected: []string{"Beta", "Alpha"},
		},
		{
			name:     "already clean",
			input:    []string{"Alpha"},
			expected: []string{"Alpha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repository.NormalizeGroups(tt.input))
		})
	}
}

func TestCountAdmins(t *testing.T) {
	users := []models.User{
		{Username: "alice", Role: models.RoleAdmin},
		{Username: "bob", Role: models.RoleUser},
		{Username: "mallory", Role: "Admin"}, // wrong spelling does not count
		{Username: "dora", Role: models.RoleAdmin},
	}

	assert.Equal(t, 2, repository.CountAdmins(users))
	assert.Zero(t, repository.CountAdmins(nil))
}
