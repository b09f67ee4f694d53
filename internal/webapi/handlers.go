package webapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tsawler/recast"
	"github.com/tsawler/recast/format"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// handleConvert accepts a multipart upload, runs the conversion, and
// responds with the finished job. Upload problems get a 400, conversion
// failures a 422.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "parsing upload: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	pdfs := r.MultipartForm.File["pdf"]
	if len(pdfs) == 0 {
		http.Error(w, "missing pdf upload", http.StatusBadRequest)
		return
	}

	jobID := uuid.New().String()
	jobDir := filepath.Join(s.workDir, "recast-"+jobID)
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		http.Error(w, "creating job directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	inputPath, err := saveUpload(jobDir, pdfs[0], format.PDF)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var templatePath string
	if templates := r.MultipartForm.File["template"]; len(templates) > 0 {
		templatePath, err = saveUpload(jobDir, templates[0], format.DOTX, format.DOCX)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	var fontPaths []string
	for _, fh := range r.MultipartForm.File["fonts"] {
		fontPath, err := saveUpload(jobDir, fh, format.TTF, format.OTF)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fontPaths = append(fontPaths, fontPath)
	}

	var pages []int
	if v := r.FormValue("pages"); v != "" {
		pages, err = parsePageList(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	startPage, err := formInt(r, "start_page", 0)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	endPage, err := formInt(r, "end_page", -1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inputName := filepath.Base(pdfs[0].Filename)
	req := ConvertRequest{
		InputPath:    inputPath,
		OutputPath:   filepath.Join(jobDir, outputName(inputName)),
		Password:     r.FormValue("password"),
		Pages:        pages,
		StartPage:    startPage,
		EndPage:      endPage,
		TemplatePath: templatePath,
		FontPaths:    fontPaths,
	}

	job := &Job{
		ID:      jobID,
		Input:   inputName,
		Created: time.Now().UTC(),
	}

	res, convErr := s.convert(req)
	if res != nil {
		job.PagesConverted = res.PagesConverted
		job.Stats = res.Stats
		job.Warnings = res.Warnings
	}
	if convErr != nil || !res.Succeeded() {
		job.Status = recast.StatusError
		if convErr != nil {
			job.Error = convErr.Error()
		} else {
			job.Error = "conversion failed"
		}
		s.jobs.put(job)
		s.logger.Error().
			Str("job", jobID).
			Str("input", inputName).
			Err(convErr).
			Msg("conversion failed")
		writeJSON(w, http.StatusUnprocessableEntity, job)
		return
	}

	job.Status = recast.StatusSuccess
	job.OutputPath = res.OutputPath
	s.jobs.put(job)
	s.logger.Info().
		Str("job", jobID).
		Str("input", inputName).
		Int("pages", res.PagesConverted).
		Int("spacing_fixes", res.Stats.SpacingFixesApplied).
		Msg("conversion complete")
	writeJSON(w, http.StatusOK, job)
}

// handleJobStatus returns the stored job record.
func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := s.jobs.get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// handleDownload serves the produced document for a successful job.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	job, ok := s.jobs.get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	if job.Status != recast.StatusSuccess || job.OutputPath == "" {
		http.Error(w, "no output available", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", docxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(job.OutputPath)))
	http.ServeFile(w, r, job.OutputPath)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// saveUpload writes a multipart file into dir after checking its name
// against the allowed formats. The saved file keeps the upload's base
// name.
func saveUpload(dir string, fh *multipart.FileHeader, allowed ...format.Format) (string, error) {
	name := filepath.Base(fh.Filename)
	detected := format.Detect(name)
	ok := false
	for _, f := range allowed {
		if detected == f {
			ok = true
			break
		}
	}
	if !ok {
		return "", fmt.Errorf("%s: unsupported file type, want %s", name, formatList(allowed))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload %s: %w", name, err)
	}
	defer src.Close()

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("saving upload %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("saving upload %s: %w", name, err)
	}
	return path, nil
}

// formatList renders allowed formats for error messages.
func formatList(formats []format.Format) string {
	parts := make([]string, len(formats))
	for i, f := range formats {
		parts[i] = f.String()
	}
	return strings.Join(parts, " or ")
}

// parsePageList parses a comma-separated list of 0-indexed page numbers.
func parsePageList(s string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

// formInt parses an optional integer form field.
func formInt(r *http.Request, field string, def int) (int, error) {
	v := r.FormValue(field)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, v)
	}
	return n, nil
}

// outputName derives the output document name from the input name.
func outputName(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	if base == "" {
		base = "output"
	}
	return base + ".docx"
}
