package models_test

import (
	"taskify/models"
	"testing"
)

func TestProjectIsMember(t *testing.T) {
	p := models.Project{
		ID:      "p1",
		Name:    "P1",
		OwnerID: "u1",
		Members: []string{"u1", "u2"},
	}

	tests := []struct {
		name   string
		userID string
		want   bool
	}{
		{name: "Owner is a member", userID: "u1", want: true},
		{name: "Joined user is a member", userID: "u2", want: true},
		{name: "Stranger is not a member", userID: "u3", want: false},
		{name: "Empty user id is not a member", userID: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IsMember(tt.userID); got != tt.want {
				t.Errorf("IsMember(%q) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}
}
