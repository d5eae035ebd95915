package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradeepreddy0/CampusHireAI/internal/server/middleware"
	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

func studentRequest(t *testing.T, svc *JWTService, userID uuid.UUID, role string, pathID uuid.UUID) *http.Request {
	t.Helper()
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/students/"+pathID.String()+"/resume", nil)
	req.SetPathValue("id", pathID.String())
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func resolveThroughAuth(svc *JWTService, req *http.Request) (uuid.UUID, error) {
	var id uuid.UUID
	var err error
	h := middleware.Auth(svc.AsTokenValidator())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		id, err = resolveStudent(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return id, err
}

func TestResolveStudent_OwnID(t *testing.T) {
	svc := testJWTService()
	student := uuid.New()

	id, err := resolveThroughAuth(svc, studentRequest(t, svc, student, types.RoleStudent, student))

	require.NoError(t, err)
	assert.Equal(t, student, id)
}

func TestResolveStudent_OtherStudentForbidden(t *testing.T) {
	svc := testJWTService()

	_, err := resolveThroughAuth(svc, studentRequest(t, svc, uuid.New(), types.RoleStudent, uuid.New()))

	var forbidden *ErrForbidden
	assert.ErrorAs(t, err, &forbidden)
}

func TestResolveStudent_AdminMayTargetAnyStudent(t *testing.T) {
	svc := testJWTService()
	target := uuid.New()

	id, err := resolveThroughAuth(svc, studentRequest(t, svc, uuid.New(), types.RoleAdmin, target))

	require.NoError(t, err)
	assert.Equal(t, target, id)
}

func TestResolveStudent_MissingIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/students/x/resume", nil)
	req.SetPathValue("id", uuid.NewString())

	_, err := resolveStudent(req)

	var unauthorized *ErrUnauthorized
	assert.ErrorAs(t, err, &unauthorized)
}

func TestResolveStudent_BadPathID(t *testing.T) {
	svc := testJWTService()
	req := studentRequest(t, svc, uuid.New(), types.RoleStudent, uuid.New())
	req.SetPathValue("id", "not-a-uuid")

	_, err := resolveThroughAuth(svc, req)

	var validation *ErrValidation
	assert.ErrorAs(t, err, &validation)
}

func TestHandleUploadResume_OtherStudentForbidden(t *testing.T) {
	svc := testJWTService()
	s := &Server{}

	req := studentRequest(t, svc, uuid.New(), types.RoleStudent, uuid.New())
	rec := httptest.NewRecorder()
	h := middleware.Auth(svc.AsTokenValidator())(http.HandlerFunc(s.handleUploadResume))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleSkillGap_OtherStudentForbidden(t *testing.T) {
	svc := testJWTService()
	s := &Server{}
	victim := uuid.New()

	token, err := svc.GenerateToken(uuid.New(), types.RoleStudent)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/students/"+victim.String()+"/skill-gap?drive_id=1", nil)
	req.SetPathValue("id", victim.String())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h := middleware.Auth(svc.AsTokenValidator())(http.HandlerFunc(s.handleSkillGap))
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
