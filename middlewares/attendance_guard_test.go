package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shivas758/yamkar4.1-sub001/models"

	"github.com/gin-gonic/gin"
)

func guardStatus(t *testing.T, viewerID uint, role, query string) int {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/attendance/report"+query, nil)
	c.Set("userID", viewerID)
	c.Set("role", role)

	CanViewAttendance()(c)
	if c.IsAborted() {
		return w.Code
	}
	return http.StatusOK
}

func TestCanViewAttendanceSelf(t *testing.T) {
	if code := guardStatus(t, 7, models.RoleEmployee, "?user_id=7"); code != http.StatusOK {
		t.Fatalf("self lookup should pass, got %d", code)
	}
}

func TestCanViewAttendanceAdmin(t *testing.T) {
	if code := guardStatus(t, 1, models.RoleAdmin, "?user_id=7"); code != http.StatusOK {
		t.Fatalf("admin lookup should pass, got %d", code)
	}
}

func TestCanViewAttendanceOtherEmployeeForbidden(t *testing.T) {
	if code := guardStatus(t, 7, models.RoleEmployee, "?user_id=8"); code != http.StatusForbidden {
		t.Fatalf("employee viewing a peer should 403, got %d", code)
	}
}

func TestCanViewAttendanceMissingTarget(t *testing.T) {
	if code := guardStatus(t, 7, models.RoleAdmin, ""); code != http.StatusBadRequest {
		t.Fatalf("missing user_id should 400, got %d", code)
	}
}
