package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserListCodec(t *testing.T) {
	var u User
	u.SetRoleList([]string{"Admin", "Gate Keeper"})
	u.SetAllowedPlantList([]string{"Plant A", "Plant B"})

	assert.Equal(t, "Admin,Gate Keeper", u.Role)
	assert.Equal(t, "Plant A,Plant B", u.AllowedPlants)
	assert.Equal(t, []string{"Admin", "Gate Keeper"}, u.RoleList())
	assert.Equal(t, []string{"Plant A", "Plant B"}, u.AllowedPlantList())
}

func TestUserListCodec_Empty(t *testing.T) {
	u := User{Role: "", AllowedPlants: "  "}
	assert.Nil(t, u.RoleList())
	assert.Nil(t, u.AllowedPlantList())
}

func TestUserListCodec_SkipsBlankSegments(t *testing.T) {
	u := User{Role: "Admin, ,Loader,"}
	assert.Equal(t, []string{"Admin", "Loader"}, u.RoleList())
}
