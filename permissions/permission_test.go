package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jumatrek/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name      string
		path      string
		method    string
		wantRoles []string
		wantSkip  bool
	}{
		{
			name:      "trip intake needs any signed in role",
			path:      "/v1/custom-trips/",
			method:    http.MethodPost,
			wantRoles: []string{"user", "admin", "superadmin"},
		},
		{
			name:      "admin listing restricted to staff",
			path:      "/v1/admin/custom-trips/",
			method:    http.MethodGet,
			wantRoles: []string{"admin", "superadmin"},
		},
		{
			name:     "public inquiry intake skips auth",
			path:     "/v1/inquiries/",
			method:   http.MethodPost,
			wantSkip: true,
		},
		{
			name:      "reply endpoint restricted to staff",
			path:      "/v1/admin/inquiries/{id}/reply",
			method:    http.MethodPost,
			wantRoles: []string{"admin", "superadmin"},
		},
		{
			name:   "unknown route yields empty permission",
			path:   "/v1/unknown",
			method: http.MethodGet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRoles, permission.Roles)
		})
	}
}

func TestMethodMismatch(t *testing.T) {
	data := permissions.Get()

	permission := data.FindPermissions("/v1/custom-trips/", http.MethodDelete)

	assert.Empty(t, permission.Roles)
	assert.Empty(t, permission.Path)
}
