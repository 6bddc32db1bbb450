package pickit

import (
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// File is the engine's view of a candidate file. Name is used for display
// and suffix matching only; it is not treated as a uniqueness key. Type is
// a MIME-type string and may be empty when the source provides none.
type File struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// FileFromHeader builds a File from a multipart upload header. The declared
// Content-Type header is preferred; when missing, the type is guessed from
// the filename extension.
func FileFromHeader(h *multipart.FileHeader) File {
	f := File{
		Name: h.Filename,
		Size: h.Size,
	}
	if ct := h.Header.Get("Content-Type"); ct != "" {
		f.Type = ct
	} else {
		f.Type = GuessContentType(h.Filename, nil)
	}
	return f
}

// FileFromInfo builds a File from a directory entry, guessing the type from
// the extension.
func FileFromInfo(info os.FileInfo) File {
	return File{
		Name: info.Name(),
		Size: info.Size(),
		Type: GuessContentType(info.Name(), nil),
	}
}

// FileFromBytes builds a File from in-memory content, guessing the type
// from the extension first and the content as a fallback.
func FileFromBytes(name string, content []byte) File {
	return File{
		Name: name,
		Size: int64(len(content)),
		Type: GuessContentType(name, content),
	}
}

// Common MIME types
const (
	MIMETypeTextPlain       = "text/plain"
	MIMETypeTextHTML        = "text/html"
	MIMETypeTextCSV         = "text/csv"
	MIMETypeApplicationJSON = "application/json"
	MIMETypeApplicationXML  = "application/xml"
	MIMETypeImageJPEG       = "image/jpeg"
	MIMETypeImagePNG        = "image/png"
	MIMETypeImageGIF        = "image/gif"
	MIMETypeImageSVG        = "image/svg+xml"
	MIMETypeImageWebP       = "image/webp"
	MIMETypeAudioMP3        = "audio/mpeg"
	MIMETypeAudioOGG        = "audio/ogg"
	MIMETypeVideoMP4        = "video/mp4"
	MIMETypeVideoWebM       = "video/webm"
	MIMETypeApplicationPDF  = "application/pdf"
	MIMETypeApplicationZip  = "application/zip"
)

// Common file extensions to MIME types mapping
var extensionToMIME = map[string]string{
	".txt":  MIMETypeTextPlain,
	".md":   "text/markdown",
	".csv":  MIMETypeTextCSV,
	".html": MIMETypeTextHTML,
	".htm":  MIMETypeTextHTML,
	".json": MIMETypeApplicationJSON,
	".xml":  MIMETypeApplicationXML,
	".jpg":  MIMETypeImageJPEG,
	".jpeg": MIMETypeImageJPEG,
	".png":  MIMETypeImagePNG,
	".gif":  MIMETypeImageGIF,
	".svg":  MIMETypeImageSVG,
	".webp": MIMETypeImageWebP,
	".mp3":  MIMETypeAudioMP3,
	".ogg":  MIMETypeAudioOGG,
	".mp4":  MIMETypeVideoMP4,
	".webm": MIMETypeVideoWebM,
	".pdf":  MIMETypeApplicationPDF,
	".zip":  MIMETypeApplicationZip,
	".gz":   "application/gzip",
	".tar":  "application/x-tar",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// GuessContentType tries to determine the content type of a file from its
// name and, optionally, its data.
func GuessContentType(name string, data []byte) string {
	// First try to determine content type from extension
	ext := strings.ToLower(filepath.Ext(name))
	if contentType, ok := extensionToMIME[ext]; ok {
		return contentType
	}

	// If we can't determine from extension and we have data, detect from content
	if len(data) > 0 {
		return http.DetectContentType(data)
	}

	// As a last resort, use the standard library's mime package
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		// Strip parameters like "; charset=utf-8"
		if idx := strings.Index(contentType, ";"); idx != -1 {
			contentType = strings.TrimSpace(contentType[:idx])
		}
		return contentType
	}

	// Fall back to octet-stream
	return "application/octet-stream"
}

// IsImageFile returns true if the file's MIME type is in the image category
func IsImageFile(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// IsTextFile returns true if the file's MIME type is a text format
func IsTextFile(contentType string) bool {
	return strings.HasPrefix(contentType, "text/") ||
		contentType == MIMETypeApplicationJSON ||
		contentType == MIMETypeApplicationXML
}
