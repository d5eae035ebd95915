package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/pradeepreddy0/CampusHireAI/internal/export"
	"github.com/pradeepreddy0/CampusHireAI/internal/extract"
	"github.com/pradeepreddy0/CampusHireAI/internal/server/middleware"
	"github.com/pradeepreddy0/CampusHireAI/internal/skillgap"
	"github.com/pradeepreddy0/CampusHireAI/internal/types"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCreateDrive stores a new placement drive. Admin only.
func (s *Server) handleCreateDrive(w http.ResponseWriter, r *http.Request) {
	var req types.Requirement
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	id, err := s.db.CreateDrive(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	req.DriveID = id
	writeJSON(w, http.StatusCreated, req)
}

// handleListDrives returns all drives.
func (s *Server) handleListDrives(w http.ResponseWriter, r *http.Request) {
	drives, err := s.db.ListDrives(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drives)
}

// handleApply records the authenticated student's application to a drive.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	driveID, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		writeError(w, &ErrUnauthorized{})
		return
	}

	if _, err := s.db.GetDrive(r.Context(), driveID); err != nil {
		writeError(w, err)
		return
	}
	if err := s.db.CreateApplication(r.Context(), driveID, identity.GetUserID()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": string(types.StatusApplied)})
}

// handleRunShortlist runs the engine over a drive's Applied candidates and
// persists the decisions. Admin only.
func (s *Server) handleRunShortlist(w http.ResponseWriter, r *http.Request) {
	report, err := s.runShortlist(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.db.SaveShortlistResults(r.Context(), report.DriveID, report.Results); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// handleExportShortlist streams the drive's shortlist report as an Excel
// workbook. Admin only. The run is recomputed; identical inputs yield an
// identical workbook.
func (s *Server) handleExportShortlist(w http.ResponseWriter, r *http.Request) {
	report, err := s.runShortlist(r)
	if err != nil {
		writeError(w, err)
		return
	}

	buf, err := export.WriteShortlist(report)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=shortlist_drive_%d.xlsx", report.DriveID))
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("failed to stream workbook: %v", err)
	}
}

func (s *Server) runShortlist(r *http.Request) (*types.ShortlistReport, error) {
	driveID, err := pathInt64(r, "id")
	if err != nil {
		return nil, &ErrValidation{Message: err.Error()}
	}

	req, err := s.db.GetDrive(r.Context(), driveID)
	if err != nil {
		return nil, err
	}
	candidates, err := s.db.ListAppliedCandidates(r.Context(), driveID)
	if err != nil {
		return nil, err
	}
	return s.engine.Run(r.Context(), req, candidates)
}

// resumeUpload is the request body for resume text submission. The text is
// already extracted plain text; binary-to-text conversion happens upstream.
type resumeUpload struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// resolveStudent returns the student the request may act on: the {id} path
// parameter, which must be the authenticated student's own ID. Admins may
// target any student.
func resolveStudent(r *http.Request) (uuid.UUID, error) {
	studentID, err := pathUUID(r, "id")
	if err != nil {
		return uuid.Nil, &ErrValidation{Message: err.Error()}
	}
	identity, err := middleware.GetIdentity(r)
	if err != nil {
		return uuid.Nil, &ErrUnauthorized{}
	}
	if identity.GetRole() != types.RoleAdmin && identity.GetUserID() != studentID {
		return uuid.Nil, &ErrForbidden{}
	}
	return studentID, nil
}

// handleUploadResume extracts skills and projects from submitted resume text
// and stores them for the student.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	studentID, err := resolveStudent(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var upload resumeUpload
	if err := json.NewDecoder(r.Body).Decode(&upload); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if upload.Label == "" {
		upload.Label = "Resume"
	}

	skills := extract.ExtractSkillsWithRecognizer(r.Context(), upload.Text, s.vocab, s.recognizer)
	projects := extract.ExtractProjects(upload.Text, s.vocab)

	resumeID, err := s.db.SaveResume(r.Context(), studentID, upload.Label, skills, projects)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"resume_id":          resumeID,
		"label":              upload.Label,
		"extracted_skills":   skills,
		"extracted_projects": projects,
	})
}

// handleSkillGap compares a student's extracted skills with a drive's
// requirements and suggests training resources for the missing ones.
func (s *Server) handleSkillGap(w http.ResponseWriter, r *http.Request) {
	studentID, err := resolveStudent(r)
	if err != nil {
		writeError(w, err)
		return
	}
	driveID, err := strconv.ParseInt(r.URL.Query().Get("drive_id"), 10, 64)
	if err != nil {
		writeError(w, &ErrValidation{Message: "drive_id query parameter is required"})
		return
	}

	req, err := s.db.GetDrive(r.Context(), driveID)
	if err != nil {
		writeError(w, err)
		return
	}
	skills, err := s.db.GetLatestResumeSkills(r.Context(), studentID)
	if err != nil {
		writeError(w, err)
		return
	}

	analysis, err := skillgap.AnalyzeWithResources(r.Context(), s.catalog, skills, req.RequiredSkills)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"student_id": studentID,
		"drive_id":   driveID,
		"company":    req.Company,
		"role":       req.Role,
		"analysis":   analysis,
	})
}

// handleListTraining returns the full training-resource catalog.
func (s *Server) handleListTraining(w http.ResponseWriter, r *http.Request) {
	resources, err := s.catalog.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resources)
}

// handleAnalytics reports platform-wide placement statistics. Admin only.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := s.db.GetAnalytics(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

// offerRequest is the request body for recording a placement offer.
type offerRequest struct {
	StudentID uuid.UUID `json:"student_id"`
	Company   string    `json:"company"`
	Package   float64   `json:"package"`
}

// handleRecordOffer stores a placement offer for a student. Admin only.
func (s *Server) handleRecordOffer(w http.ResponseWriter, r *http.Request) {
	var req offerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if req.StudentID == uuid.Nil || req.Package <= 0 {
		writeError(w, &ErrValidation{Message: "student_id and a positive package are required"})
		return
	}

	if _, err := s.db.GetUser(r.Context(), req.StudentID); err != nil {
		writeError(w, err)
		return
	}
	if err := s.db.RecordOffer(r.Context(), req.StudentID, req.Company, req.Package); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

func pathInt64(r *http.Request, key string) (int64, error) {
	v, err := strconv.ParseInt(r.PathValue(key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s path parameter", key)
	}
	return v, nil
}

func pathUUID(r *http.Request, key string) (uuid.UUID, error) {
	v, err := uuid.Parse(r.PathValue(key))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s path parameter", key)
	}
	return v, nil
}
