// Package intake persists uploaded attachments to durable local storage,
// one folder per district. It is the primary archival path: remote mirroring
// is best-effort on top of it.
package intake

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"festfusion/internal/districts"
	"festfusion/internal/domain/submission"
	festfusion_errors "festfusion/pkg/errors"
)

var allowedExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {},
	".mp3": {}, ".wav": {},
	".mp4": {},
	".txt": {}, ".pdf": {},
}

const storedNameTimestamp = "20060102_150405"

type Store struct {
	baseDir  string
	maxBytes int64
}

type StoredFile struct {
	Name string
	Path string
	Size int64
}

func NewStore(baseDir string, maxBytes int64) *Store {
	return &Store{baseDir: baseDir, maxBytes: maxBytes}
}

// Save validates the attachment and writes it under the district folder.
// All validation happens before any filesystem side effect. A crash mid-write
// can leave a truncated file; there is no detection for that.
func (s *Store) Save(att *submission.Attachment, district string) (StoredFile, error) {
	if err := s.Validate(att, district); err != nil {
		return StoredFile{}, err
	}

	storedName := time.Now().Format(storedNameTimestamp) + "_" + SanitizeName(att.OriginalName)
	dir := filepath.Join(s.baseDir, district)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return StoredFile{}, festfusion_errors.ErrLocalStorage
	}

	path := filepath.Join(dir, storedName)
	if err := os.WriteFile(path, att.RawBytes, 0o644); err != nil {
		return StoredFile{}, festfusion_errors.ErrLocalStorage
	}

	return StoredFile{
		Name: storedName,
		Path: path,
		Size: int64(len(att.RawBytes)),
	}, nil
}

// Validate applies the boundary checks without touching the filesystem.
func (s *Store) Validate(att *submission.Attachment, district string) error {
	if !districts.Valid(district) {
		return festfusion_errors.ErrInvalidCategory
	}
	if att == nil || len(att.RawBytes) == 0 {
		return festfusion_errors.ErrEmptyFile
	}
	if s.maxBytes > 0 && int64(len(att.RawBytes)) > s.maxBytes {
		return festfusion_errors.ErrTooLarge
	}
	if !AllowedName(att.OriginalName) {
		return festfusion_errors.ErrUnsupportedType
	}
	return nil
}

// AllowedName checks the original filename's extension against the allow list.
func AllowedName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := allowedExtensions[ext]
	return ok
}

// SanitizeName strips path components and any rune outside [A-Za-z0-9._-]
// so the untrusted original name is safe as a path component. The extension
// is sanitized separately so it survives names that collapse entirely.
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := filepath.Ext(name)
	base := sanitizePart(strings.TrimSuffix(name, ext))
	ext = sanitizePart(strings.TrimPrefix(ext, "."))
	if base == "" {
		base = "file"
	}
	if ext == "" {
		return base
	}
	return base + "." + ext
}

func sanitizePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}
