// Package media abstracts the external image-hosting service: upload a file,
// get back a durable URL, delete a previously uploaded asset by that URL.
package media

import (
	"fmt"
	"io"
	"net/url"
	"path"
	"regexp"
	"strings"
)

// Uploader is the boundary to the media collaborator.
type Uploader interface {
	Upload(file io.Reader) (string, error)
	Delete(rawURL string) error
}

// Disabled is an Uploader used when no media credentials are configured.
// Uploads fail loudly instead of silently dropping images; deletes are no-ops.
type Disabled struct{}

// Upload always fails: there is nowhere to store the file.
func (Disabled) Upload(io.Reader) (string, error) {
	return "", fmt.Errorf("media uploads are not configured")
}

// Delete is a no-op.
func (Disabled) Delete(string) error {
	return nil
}

var versionSegment = regexp.MustCompile(`^v\d+$`)

// PublicIDFromURL derives the provider public ID from a delivery URL. The ID
// is the path after the "upload" segment, minus the version segment and the
// file extension, e.g.
//
//	https://res.cloudinary.com/demo/image/upload/v1712043752/products/macbook.png
//
// yields "products/macbook". Returns "" if the URL does not follow that shape.
func PublicIDFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	uploadIdx := -1
	for i, segment := range segments {
		if segment == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx < 0 || uploadIdx == len(segments)-1 {
		return ""
	}

	rest := segments[uploadIdx+1:]
	if versionSegment.MatchString(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return ""
	}

	publicID := strings.Join(rest, "/")
	return strings.TrimSuffix(publicID, path.Ext(publicID))
}
