package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/scindn/internal/server/ingest"
)

type createProjectRequest struct {
	Name    string   `json:"name"`
	Origins []string `json:"origins"`
}

type createProjectResponse struct {
	ClientID string `json:"clientId"`
	Secret   string `json:"secret"`
	Name     string `json:"name"`
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	ownerUUID, _ := r.Context().Value(userIDKey).(string)

	project, err := s.service.Create(r.Context(), ownerUUID, req.Name, req.Origins)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, createProjectResponse{
		ClientID: project.ClientID,
		Secret:   project.Secret,
		Name:     project.Name,
	})
}

type generateLinkRequest struct {
	Secret         string `json:"secret"`
	Key            string `json:"key"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

func (s *Server) generateLink(w http.ResponseWriter, r *http.Request) {
	var req generateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Secret == "" {
		writeError(w, http.StatusBadRequest, "secret is required")
		return
	}

	link, err := s.service.GenerateLink(r.Context(), req.Secret, req.Key, req.TimeoutSeconds)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	s.metrics.LinksIssued.Inc()
	writeData(w, http.StatusOK, map[string]string{"link": link})
}

type deleteFileRequest struct {
	Secret   string `json:"secret"`
	Filename string `json:"filename"`
}

func (s *Server) deleteFile(w http.ResponseWriter, r *http.Request) {
	var req deleteFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Secret == "" || req.Filename == "" {
		writeError(w, http.StatusBadRequest, "secret and filename are required")
		return
	}

	if err := s.service.DeleteFile(r.Context(), req.Secret, req.Filename); err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, nil)
}

// upload handles the PUT side of a signed link. The token is consumed up
// front: whatever happens to the individual files afterwards, the link is
// spent and a concurrent second request loses.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	link, err := s.registry.Consume(token)
	if err != nil {
		s.metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "invalid upload link")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	files, cleanup, err := ingest.Parse(r)
	if err != nil {
		s.metrics.UploadsTotal.WithLabelValues("malformed").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanup()

	result, err := s.service.ProcessUpload(r.Context(), link, files)
	if err != nil {
		s.metrics.UploadsTotal.WithLabelValues("failed").Inc()
		writeServiceError(w, err)
		return
	}

	s.metrics.UploadsTotal.WithLabelValues("ok").Inc()
	s.metrics.FilesSkipped.Add(float64(len(result.Skipped)))
	for _, f := range result.Accepted {
		s.metrics.UploadedBytes.Add(float64(f.Bytes))
	}

	s.logger.Info(r.Context(), "upload processed",
		"accepted", len(result.Accepted), "skipped", len(result.Skipped))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, result.Payload)
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "OK")
}
