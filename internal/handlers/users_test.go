// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"customsnap/internal/models"
)

func TestUserCreateAndDuplicate(t *testing.T) {
	env := newTestEnv(t)
	email := "user-create@handler-test.local"
	t.Cleanup(func() { env.DB.Exec(`DELETE FROM users WHERE email = $1`, email) })

	body := `{"email":"` + email + `","display_name":"New Builder","password":"a-long-enough-password","role":"builder"}`

	rec := httptest.NewRecorder()
	env.Users.Create(rec, httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var user models.User
	decodeBody(t, rec.Body.Bytes(), &user)
	if user.Role != models.RoleBuilder {
		t.Errorf("expected builder role, got %s", user.Role)
	}

	rec = httptest.NewRecorder()
	env.Users.Create(rec, httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(body)))
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", rec.Code)
	}
}

func TestUserCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"short password", `{"email":"v@handler-test.local","display_name":"V","password":"short","role":"builder"}`},
		{"bad role", `{"email":"v@handler-test.local","display_name":"V","password":"a-long-enough-password","role":"superuser"}`},
		{"missing email", `{"display_name":"V","password":"a-long-enough-password","role":"builder"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.Users.Create(rec, httptest.NewRequest(http.MethodPost, "/api/admin/users", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestUserDeleteSelfRejected(t *testing.T) {
	env := newTestEnv(t)
	admin := makeStaffUser(t, env, "self-delete@handler-test.local", "a-long-enough-password", models.RoleAdmin)

	req := withChiURLParam(
		httptest.NewRequest(http.MethodDelete, "/", nil), "id", admin.ID.String())
	req = req.WithContext(ctxWithSession(req.Context(), staffSession(admin.ID, string(models.RoleAdmin))))

	rec := httptest.NewRecorder()
	env.Users.Delete(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for self-delete, got %d", rec.Code)
	}

	// Deleting someone else works.
	victim := makeStaffUser(t, env, "delete-victim@handler-test.local", "a-long-enough-password", models.RoleBuilder)
	req = withChiURLParam(
		httptest.NewRequest(http.MethodDelete, "/", nil), "id", victim.ID.String())
	req = req.WithContext(ctxWithSession(req.Context(), staffSession(admin.ID, string(models.RoleAdmin))))

	rec = httptest.NewRecorder()
	env.Users.Delete(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	gone, err := env.UserStore.FindByID(victim.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if gone != nil {
		t.Error("expected user deleted")
	}
}

func TestUserResetTOTP(t *testing.T) {
	env := newTestEnv(t)
	user := makeStaffUser(t, env, "totp-reset@handler-test.local", "a-long-enough-password", models.RoleBuilder)

	if err := env.UserStore.SetTOTPSecret(user.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("set secret: %v", err)
	}
	if err := env.UserStore.EnableTOTP(user.ID); err != nil {
		t.Fatalf("enable totp: %v", err)
	}

	req := withChiURLParam(httptest.NewRequest(http.MethodPost, "/", nil), "id", user.ID.String())
	rec := httptest.NewRecorder()
	env.Users.ResetTOTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	reloaded, err := env.UserStore.FindByID(user.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.TOTPEnabled || reloaded.TOTPSecret != nil {
		t.Error("expected TOTP enrollment cleared")
	}
}
