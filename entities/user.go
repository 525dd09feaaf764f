package entities

import "strings"

// Users carry their module rights and allowed plants as comma-joined strings
// in the database (legacy schema); everything above the repository works with
// string slices via the accessors below.
type User struct {
	Username      string `gorm:"primaryKey" json:"username"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	AllowedPlants string `json:"allowedplants"`
	ContactNumber string `json:"contactnumber"`
	IsDelete      bool   `gorm:"index" json:"isdelete"`
}

func (u *User) RoleList() []string { return splitCSV(u.Role) }

func (u *User) SetRoleList(roles []string) { u.Role = strings.Join(roles, ",") }

func (u *User) AllowedPlantList() []string { return splitCSV(u.AllowedPlants) }

func (u *User) SetAllowedPlantList(plants []string) { u.AllowedPlants = strings.Join(plants, ",") }

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
