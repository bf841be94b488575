package models

// Project is a shared workspace scoping a set of tasks. Members always
// includes the owner.
type Project struct {
	ID          string   `db:"id" json:"id"`
	Name        string   `db:"project_name" json:"projectName"`
	Description string   `db:"description" json:"description,omitempty"`
	OwnerID     string   `db:"owner_id" json:"ownerId"`
	Members     []string `db:"members" json:"members"`
}

// IsMember reports whether the given user appears in the member list.
func (p Project) IsMember(userID string) bool {
	for _, m := range p.Members {
		if m == userID {
			return true
		}
	}
	return false
}
