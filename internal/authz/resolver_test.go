package authz_test

import (
	"testing"

	"go-workflow/internal/authz"
	"go-workflow/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolve_CanAct(t *testing.T) {
	requesterID := uuid.New().String()
	otherID := uuid.New().String()

	t.Run("requester never acts on own request", func(t *testing.T) {
		for _, role := range []domain.AppRole{
			domain.RoleEmployee, domain.RoleManager, domain.RoleFinance,
			domain.RoleHR, domain.RoleIT, domain.RoleAdmin,
		} {
			caller := authz.Caller{ID: requesterID, Role: role}
			for _, rt := range domain.RequestTypes() {
				d := authz.Resolve(caller, requesterID, rt)
				assert.False(t, d.CanAct, "role %s should not act on own %s request", role, rt)
			}
		}
	})

	t.Run("admin and manager act on any type", func(t *testing.T) {
		for _, role := range []domain.AppRole{domain.RoleAdmin, domain.RoleManager} {
			caller := authz.Caller{ID: otherID, Role: role}
			for _, rt := range domain.RequestTypes() {
				assert.True(t, authz.Resolve(caller, requesterID, rt).CanAct)
			}
		}
	})

	t.Run("finance acts on purchase only", func(t *testing.T) {
		caller := authz.Caller{ID: otherID, Role: domain.RoleFinance}
		assert.True(t, authz.Resolve(caller, requesterID, domain.TypePurchase).CanAct)
		assert.False(t, authz.Resolve(caller, requesterID, domain.TypeLeave).CanAct)
		assert.False(t, authz.Resolve(caller, requesterID, domain.TypeITSupport).CanAct)
	})

	t.Run("hr acts on leave only", func(t *testing.T) {
		caller := authz.Caller{ID: otherID, Role: domain.RoleHR}
		assert.False(t, authz.Resolve(caller, requesterID, domain.TypePurchase).CanAct)
		assert.True(t, authz.Resolve(caller, requesterID, domain.TypeLeave).CanAct)
		assert.False(t, authz.Resolve(caller, requesterID, domain.TypeITSupport).CanAct)
	})

	t.Run("it acts on it_support only", func(t *testing.T) {
		caller := authz.Caller{ID: otherID, Role: domain.RoleIT}
		assert.False(t, authz.Resolve(caller, requesterID, domain.TypePurchase).CanAct)
		assert.False(t, authz.Resolve(caller, requesterID, domain.TypeLeave).CanAct)
		assert.True(t, authz.Resolve(caller, requesterID, domain.TypeITSupport).CanAct)
	})

	t.Run("employee never acts", func(t *testing.T) {
		caller := authz.Caller{ID: otherID, Role: domain.RoleEmployee}
		for _, rt := range domain.RequestTypes() {
			assert.False(t, authz.Resolve(caller, requesterID, rt).CanAct)
		}
	})

	t.Run("view is always granted", func(t *testing.T) {
		caller := authz.Caller{ID: otherID, Role: domain.RoleEmployee}
		assert.True(t, authz.Resolve(caller, requesterID, domain.TypePurchase).CanView)
	})
}

func TestVisibleScope(t *testing.T) {
	callerID := uuid.New().String()

	t.Run("admin sees everything", func(t *testing.T) {
		s := authz.VisibleScope(authz.Caller{ID: callerID, Role: domain.RoleAdmin})
		assert.True(t, s.All)
		assert.Empty(t, s.RequestType)
		assert.Empty(t, s.RequesterID)
	})

	t.Run("type-routed approvers see their whole type", func(t *testing.T) {
		cases := map[domain.AppRole]domain.RequestType{
			domain.RoleIT:      domain.TypeITSupport,
			domain.RoleFinance: domain.TypePurchase,
			domain.RoleHR:      domain.TypeLeave,
		}
		for role, rt := range cases {
			s := authz.VisibleScope(authz.Caller{ID: callerID, Role: role})
			assert.False(t, s.All)
			assert.Equal(t, rt, s.RequestType)
			assert.Empty(t, s.RequesterID)
		}
	})

	t.Run("employee and manager see own requests only", func(t *testing.T) {
		for _, role := range []domain.AppRole{domain.RoleEmployee, domain.RoleManager} {
			s := authz.VisibleScope(authz.Caller{ID: callerID, Role: role})
			assert.False(t, s.All)
			assert.Empty(t, s.RequestType)
			assert.Equal(t, callerID, s.RequesterID)
		}
	})
}
