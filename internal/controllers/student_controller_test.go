package controllers_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dormhub/internal/models"
)

func seedBed(t *testing.T, api *testAPI, label string) *models.Bed {
	t.Helper()
	ctx := context.Background()

	building := &models.Building{Name: "North Hall " + label}
	require.NoError(t, api.store.CreateBuilding(ctx, building))

	room := &models.Room{BuildingID: building.ID, Floor: 2, Number: "201"}
	require.NoError(t, api.store.CreateRoom(ctx, room))

	bed := &models.Bed{RoomID: room.ID, Label: label}
	require.NoError(t, api.store.CreateBed(ctx, bed))
	return bed
}

func seedStudent(t *testing.T, api *testAPI, email string) *models.Student {
	t.Helper()
	user, _ := api.userWithToken(t, email, models.RoleStudent)
	student := &models.Student{UserID: user.ID, StudentNo: "S-" + email}
	require.NoError(t, api.store.CreateStudent(context.Background(), student))
	return student
}

func TestCreateStudent(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken(t)

	user, _ := api.userWithToken(t, "fresh@dorm.test", models.RoleStudent)

	w := api.do(t, "POST", "/students", admin, map[string]interface{}{
		"userId":    user.ID,
		"studentNo": "2024-001",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeMap(t, w)
	assert.Equal(t, "2024-001", body["studentNo"])
	assert.Nil(t, body["bedId"])
	nested, ok := body["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "fresh@dorm.test", nested["email"])

	// One student record per user.
	w = api.do(t, "POST", "/students", admin, map[string]interface{}{
		"userId":    user.ID,
		"studentNo": "2024-002",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"student_exists"}`, w.Body.String())
}

func TestCreateStudentUnknownUser(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken(t)

	w := api.do(t, "POST", "/students", admin, map[string]interface{}{
		"userId":    999,
		"studentNo": "2024-001",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_error", decodeMap(t, w)["error"])
}

func TestCheckinCheckoutLifecycle(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken(t)

	bed := seedBed(t, api, "A")
	student := seedStudent(t, api, "resident@dorm.test")

	w := api.do(t, "POST", fmt.Sprintf("/students/%d/checkin", student.ID), admin, map[string]interface{}{"bedId": bed.ID})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeMap(t, w)
	assert.Equal(t, float64(bed.ID), body["bedId"])

	// Nested bed -> room -> building for the UI.
	bedJSON, ok := body["bed"].(map[string]interface{})
	require.True(t, ok)
	roomJSON, ok := bedJSON["room"].(map[string]interface{})
	require.True(t, ok)
	buildingJSON, ok := roomJSON["building"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "North Hall A", buildingJSON["name"])

	// Checkout clears the assignment.
	w = api.do(t, "POST", fmt.Sprintf("/students/%d/checkout", student.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeMap(t, w)["bedId"])

	// And is idempotent.
	w = api.do(t, "POST", fmt.Sprintf("/students/%d/checkout", student.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeMap(t, w)["bedId"])
}

func TestCheckinOccupiedBed(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken(t)

	bed := seedBed(t, api, "A")
	first := seedStudent(t, api, "first@dorm.test")
	second := seedStudent(t, api, "second@dorm.test")

	w := api.do(t, "POST", fmt.Sprintf("/students/%d/checkin", first.ID), admin, map[string]interface{}{"bedId": bed.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, "POST", fmt.Sprintf("/students/%d/checkin", second.ID), admin, map[string]interface{}{"bedId": bed.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"bed_occupied"}`, w.Body.String())

	// The first assignment survives the conflict.
	var kept models.Student
	require.NoError(t, api.db.First(&kept, first.ID).Error)
	require.NotNil(t, kept.BedID)
	assert.Equal(t, bed.ID, *kept.BedID)
}

func TestCheckinMissingBedAndStudent(t *testing.T) {
	api := newTestAPI(t)
	admin := api.adminToken(t)

	student := seedStudent(t, api, "resident@dorm.test")
	w := api.do(t, "POST", fmt.Sprintf("/students/%d/checkin", student.ID), admin, map[string]interface{}{"bedId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"bed_not_found"}`, w.Body.String())

	// Nothing was assigned along the way.
	var unchanged models.Student
	require.NoError(t, api.db.First(&unchanged, student.ID).Error)
	assert.Nil(t, unchanged.BedID)

	bed := seedBed(t, api, "B")
	w = api.do(t, "POST", "/students/999/checkin", admin, map[string]interface{}{"bedId": bed.ID})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"student_not_found"}`, w.Body.String())

	w = api.do(t, "POST", "/students/999/checkout", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"student_not_found"}`, w.Body.String())
}

func TestStudentEndpointsRequireManagerRole(t *testing.T) {
	api := newTestAPI(t)

	_, studentToken := api.userWithToken(t, "peon@dorm.test", models.RoleStudent)

	w := api.do(t, "POST", "/students", studentToken, map[string]interface{}{"userId": 1, "studentNo": "S1"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, "POST", "/students/1/checkin", studentToken, map[string]interface{}{"bedId": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(t, "POST", "/students/1/checkout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
