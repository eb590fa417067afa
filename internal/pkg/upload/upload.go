// Package upload stores multipart files on local disk and exposes their
// metadata to the rest of the gin handler chain.
package upload

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"restaurantapi/internal/pkg/metrics"
	"restaurantapi/internal/pkg/response"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	filesContextKey  = "uploaded_files"
	maxMemory        = 32 << 20
	maxNameAttempts  = 5
	DefaultMaxSize   = 5 << 20
	DefaultURLPrefix = "/public/restaurants"
	defaultDirPerm   = 0o755
	defaultFilePerm  = 0o644
)

// Config is read once at startup and never mutated.
type Config struct {
	Dir         string
	URLPrefix   string
	MaxFileSize int64
}

// Field declares an accepted multipart file field.
type Field struct {
	Name     string
	MaxCount int
}

// File describes one stored upload.
type File struct {
	Field        string `json:"field"`
	OriginalName string `json:"original_name"`
	Filename     string `json:"filename"`
	Path         string `json:"-"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
}

type Handler struct {
	cfg Config
	log *zap.Logger
	now func() time.Time
}

func New(cfg Config, log *zap.Logger) *Handler {
	if cfg.URLPrefix == "" {
		cfg.URLPrefix = DefaultURLPrefix
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxSize
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{cfg: cfg, log: log, now: time.Now}
}

func (h *Handler) Config() Config { return h.cfg }

// Fields returns a middleware accepting at most MaxCount files for each named
// field. Requests that are not multipart pass through untouched.
func (h *Handler) Fields(fields ...Field) gin.HandlerFunc {
	limits := make(map[string]int, len(fields))
	for _, f := range fields {
		limits[f.Name] = f.MaxCount
	}

	return func(c *gin.Context) {
		if !isMultipart(c.Request) {
			c.Next()
			return
		}

		if err := c.Request.ParseMultipartForm(maxMemory); err != nil {
			h.reject(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse multipart form")
			return
		}

		form := c.Request.MultipartForm
		for name, headers := range form.File {
			limit, ok := limits[name]
			if !ok {
				h.reject(c, http.StatusBadRequest, "UNEXPECTED_FILE", fmt.Sprintf("Unexpected file field %q", name))
				return
			}
			if len(headers) > limit {
				h.reject(c, http.StatusBadRequest, "UNEXPECTED_FILE", fmt.Sprintf("Too many files for field %q", name))
				return
			}
		}

		var saved []File
		for _, f := range fields {
			for _, fh := range form.File[f.Name] {
				file, err := h.Save(f.Name, fh)
				if err != nil {
					h.removeAll(saved)
					metrics.Uploads.WithLabelValues(f.Name, "failed").Inc()
					if errors.Is(err, ErrFileTooLarge) {
						h.reject(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE",
							fmt.Sprintf("File for field %q exceeds %d bytes", f.Name, h.cfg.MaxFileSize))
						return
					}
					h.log.Error("upload failed",
						zap.String("field", f.Name),
						zap.String("path", c.Request.URL.Path),
						zap.String("request_id", c.GetString("request_id")),
						zap.Error(err))
					h.reject(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store uploaded file")
					return
				}
				metrics.Uploads.WithLabelValues(f.Name, "stored").Inc()
				saved = append(saved, file)
			}
		}

		c.Set(filesContextKey, saved)
		c.Next()
	}
}

// Save writes one multipart file into the configured directory. The directory
// is created on demand and the file is opened with O_EXCL so a name clash can
// never overwrite another upload.
func (h *Handler) Save(field string, fh *multipart.FileHeader) (File, error) {
	if fh.Size > h.cfg.MaxFileSize {
		return File{}, ErrFileTooLarge
	}

	if err := os.MkdirAll(h.cfg.Dir, defaultDirPerm); err != nil {
		return File{}, fmt.Errorf("create upload directory: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("open multipart file: %w", err)
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return File{}, fmt.Errorf("detect content type: %w", err)
	}
	mimeType := strings.Split(detected.String(), ";")[0]
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return File{}, fmt.Errorf("rewind multipart file: %w", err)
	}

	var (
		dst  *os.File
		name string
		path string
	)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name = GenerateFilename(fh.Filename, h.now())
		path = filepath.Join(h.cfg.Dir, name)
		dst, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defaultFilePerm)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return File{}, fmt.Errorf("create file: %w", err)
		}
	}
	if dst == nil {
		return File{}, fmt.Errorf("create file: %w", err)
	}

	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return File{}, fmt.Errorf("write file: %w", err)
	}

	return File{
		Field:        field,
		OriginalName: fh.Filename,
		Filename:     name,
		Path:         path,
		URL:          strings.TrimRight(h.cfg.URLPrefix, "/") + "/" + name,
		Size:         written,
		MimeType:     mimeType,
	}, nil
}

func (h *Handler) removeAll(files []File) {
	for _, f := range files {
		if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			h.log.Warn("failed to remove partial upload", zap.String("path", f.Path), zap.Error(err))
		}
	}
}

func (h *Handler) reject(c *gin.Context, status int, code, message string) {
	metrics.GateRejections.WithLabelValues("upload", code).Inc()
	response.Abort(c, status, code, message)
}

// FilesFrom returns every file stored for the current request.
func FilesFrom(c *gin.Context) []File {
	v, ok := c.Get(filesContextKey)
	if !ok {
		return nil
	}
	files, _ := v.([]File)
	return files
}

// FileFor returns the first stored file for field, if any.
func FileFor(c *gin.Context, field string) (File, bool) {
	for _, f := range FilesFrom(c) {
		if f.Field == field {
			return f, true
		}
	}
	return File{}, false
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "multipart/form-data")
}
