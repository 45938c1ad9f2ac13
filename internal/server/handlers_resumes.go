package server

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/db"
	"github.com/jonathan/hr-screener/internal/pipeline"
)

// maxUploadBytes caps resume uploads at 32 MiB per request.
const maxUploadBytes = 32 << 20

// readUpload pulls one uploaded file out of the multipart form.
func readUpload(fh *multipart.FileHeader) (pipeline.Document, error) {
	f, err := fh.Open()
	if err != nil {
		return pipeline.Document{}, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return pipeline.Document{}, err
	}
	return pipeline.Document{Filename: fh.Filename, Data: data}, nil
}

// handleParseResume extracts candidate fields from an uploaded resume without
// persisting anything. Useful for previewing extraction quality.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.singleUpload(w, r)
	if !ok {
		return
	}

	preview, err := s.importerFor(nil)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	res := preview.ImportOne(r.Context(), doc)
	if res.Err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, res.Err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, res.Profile)
}

// handleImportResume extracts and stores a single resume.
func (s *Server) handleImportResume(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.singleUpload(w, r)
	if !ok {
		return
	}

	importer, err := s.importerFor(s.db)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	res := importer.ImportOne(r.Context(), doc)
	if res.Err != nil {
		if errors.Is(res.Err, db.ErrDuplicatePhone) {
			s.errorResponse(w, http.StatusConflict, res.Err.Error())
			return
		}
		s.errorResponse(w, http.StatusUnprocessableEntity, res.Err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, res.Profile)
}

// handleImportBatch extracts and stores every file in the upload. Individual
// failures are reported per file; the batch itself always succeeds.
func (s *Server) handleImportBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	var docs []pipeline.Document
	for _, headers := range r.MultipartForm.File {
		for _, fh := range headers {
			doc, err := readUpload(fh)
			if err != nil {
				s.logger.Warn("failed to read upload", zap.String("file", fh.Filename), zap.Error(err))
				continue
			}
			docs = append(docs, doc)
		}
	}
	if len(docs) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "no files uploaded")
		return
	}

	importer, err := s.importerFor(s.db)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	result := importer.ImportBatch(r.Context(), docs)

	type itemStatus struct {
		Filename string `json:"filename"`
		Status   string `json:"status"`
		Error    string `json:"error,omitempty"`
	}
	items := make([]itemStatus, 0, len(result.Items))
	for _, item := range result.Items {
		st := itemStatus{Filename: item.Filename, Status: "imported"}
		if item.Err != nil {
			st.Status = "failed"
			if errors.Is(item.Err, db.ErrDuplicatePhone) {
				st.Status = "duplicate"
			}
			st.Error = item.Err.Error()
		}
		items = append(items, st)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"imported":   result.Imported,
		"duplicates": result.Duplicates,
		"failed":     result.Failed,
		"items":      items,
	})
}

// singleUpload reads the "resume" file field, falling back to the first file
// in the form.
func (s *Server) singleUpload(w http.ResponseWriter, r *http.Request) (pipeline.Document, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form")
		return pipeline.Document{}, false
	}

	headers := r.MultipartForm.File["resume"]
	if len(headers) == 0 {
		for _, hs := range r.MultipartForm.File {
			headers = hs
			break
		}
	}
	if len(headers) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "no file uploaded")
		return pipeline.Document{}, false
	}

	doc, err := readUpload(headers[0])
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload")
		return pipeline.Document{}, false
	}
	return doc, true
}
