package prestashop

import (
	"bytes"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

// multipartBoundary is the boundary marker expected by the image endpoints
const multipartBoundary = "----------ThIs_Is_tHe_bouNdaRY_$"

const crlf = "\r\n"

// encodeMultipart builds a multipart/form-data body with one part per file
func encodeMultipart(files []File) (map[string]string, []byte) {
	var buf bytes.Buffer
	for _, f := range files {
		buf.WriteString("--" + multipartBoundary + crlf)
		fmt.Fprintf(&buf, `Content-Disposition: form-data; name="%s"; filename="%s"`+crlf, f.Field, f.Name)
		buf.WriteString("Content-Type: " + contentTypeFor(f.Name) + crlf)
		buf.WriteString(crlf)
		buf.Write(f.Content)
		buf.WriteString(crlf)
	}
	buf.WriteString("--" + multipartBoundary + "--" + crlf)

	headers := map[string]string{
		"Content-Type": "multipart/form-data; boundary=" + multipartBoundary,
	}
	return headers, buf.Bytes()
}

// contentTypeFor guesses a MIME type from the file extension
func contentTypeFor(name string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name)))
	if ct == "" {
		return "application/octet-stream"
	}
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
