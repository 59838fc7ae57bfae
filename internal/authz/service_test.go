package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceAdminThroughRole(t *testing.T) {
	svc := newTestService(t)
	if err := svc.GrantRolePolicy("ops", "/admin/products/:id", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	if err := svc.SetAdminRoles(1, []string{"ops"}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	cases := []struct {
		object string
		action string
		want   bool
	}{
		{object: "/api/v1/admin/products/42", action: "get", want: true},
		{object: "/admin/products/42", action: "GET", want: true},
		{object: "/api/v1/admin/products/42", action: "POST", want: false},
		{object: "/admin/orders/42", action: "GET", want: false},
	}
	for _, item := range cases {
		got, err := svc.EnforceAdmin(1, item.object, item.action)
		if err != nil {
			t.Fatalf("enforce %s %s failed: %v", item.action, item.object, err)
		}
		if got != item.want {
			t.Fatalf("enforce %s %s: want=%v got=%v", item.action, item.object, item.want, got)
		}
	}
}

func TestSetAdminRolesReplacesAssignment(t *testing.T) {
	svc := newTestService(t)
	if err := svc.GrantRolePolicy("ops", "/admin/orders", "GET"); err != nil {
		t.Fatalf("grant ops policy failed: %v", err)
	}
	if err := svc.GrantRolePolicy("editor", "/admin/posts", "GET"); err != nil {
		t.Fatalf("grant editor policy failed: %v", err)
	}

	if err := svc.SetAdminRoles(2, []string{"ops"}); err != nil {
		t.Fatalf("set first role failed: %v", err)
	}
	if err := svc.SetAdminRoles(2, []string{"editor"}); err != nil {
		t.Fatalf("set second role failed: %v", err)
	}

	roles, err := svc.GetAdminRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:editor" {
		t.Fatalf("roles want [role:editor], got=%v", roles)
	}

	if allow, err := svc.EnforceAdmin(2, "/admin/orders", "GET"); err != nil || allow {
		t.Fatalf("expected old role permission removed, allow=%v err=%v", allow, err)
	}
	if allow, err := svc.EnforceAdmin(2, "/admin/posts", "GET"); err != nil || !allow {
		t.Fatalf("expected new role permission granted, allow=%v err=%v", allow, err)
	}
}

func TestDeleteRoleDropsPolicies(t *testing.T) {
	svc := newTestService(t)
	if err := svc.GrantRolePolicy("ops", "/admin/orders", "GET"); err != nil {
		t.Fatalf("grant policy failed: %v", err)
	}
	if err := svc.SetAdminRoles(5, []string{"ops"}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}
	if err := svc.DeleteRole("ops"); err != nil {
		t.Fatalf("delete role failed: %v", err)
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	for _, role := range roles {
		if role == "role:ops" {
			t.Fatalf("expected role removed, got=%v", roles)
		}
	}
	if allow, err := svc.EnforceAdmin(5, "/admin/orders", "GET"); err != nil || allow {
		t.Fatalf("expected permission revoked with role, allow=%v err=%v", allow, err)
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "admin/orders", want: "/admin/orders"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		if got := NormalizeObject(item.in); got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := newTestService(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	// 重复执行必须幂等。
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap second run failed: %v", err)
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	want := map[string]bool{
		"role:readonly_auditor": true,
		"role:operations":       true,
		"role:support":          true,
	}
	for _, role := range roles {
		delete(want, role)
	}
	if len(want) != 0 {
		t.Fatalf("builtin roles missing: %v", want)
	}

	if err := svc.SetAdminRoles(3, []string{"operations"}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}
	if allow, err := svc.EnforceAdmin(3, "/admin/orders", "GET"); err != nil || !allow {
		t.Fatalf("expected inherited readonly permission, allow=%v err=%v", allow, err)
	}
	if allow, err := svc.EnforceAdmin(3, "/admin/orders/7/status", "PUT"); err != nil || allow {
		t.Fatalf("expected operations denied on support surface, allow=%v err=%v", allow, err)
	}
	if allow, err := svc.EnforceAdmin(3, "/admin/coupons", "POST"); err != nil || !allow {
		t.Fatalf("expected operations coupon write allowed, allow=%v err=%v", allow, err)
	}
}
