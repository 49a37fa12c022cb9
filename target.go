package opencmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// PathOrURI holds either a local filesystem path or a remote (non-file) URI.
// Values are immutable and safe to copy; construct them with Parse, FromPath,
// or FromURI. The zero value is an empty local path.
type PathOrURI struct {
	path string
	uri  *url.URL
}

// Parse interprets raw as a URI if it parses as one with a scheme, and as a
// filesystem path otherwise. It never fails: anything that is not a full URI
// — including the empty string and strings containing characters illegal in
// URIs — becomes a path.
func Parse(raw string) PathOrURI {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return FromPath(raw)
	}
	return FromURI(u)
}

// FromPath wraps a filesystem path. The path is stored as given: it may be
// relative and is not cleaned or checked for existence.
func FromPath(path string) PathOrURI {
	return PathOrURI{path: path}
}

// FromURI wraps a parsed URI. A file:// URI collapses to the path variant
// using its path component; the query is discarded and, outside Windows UNC
// hosts, so is the authority — the conversion is lossy for file URIs. Other
// schemes are kept as-is.
func FromURI(u *url.URL) PathOrURI {
	if u.Scheme == "file" {
		return FromPath(pathFromFileURI(u))
	}
	cp := *u
	return PathOrURI{uri: &cp}
}

// IsPath reports whether the contained value is a local path.
func (t PathOrURI) IsPath() bool {
	return t.uri == nil
}

// IsURI reports whether the contained value is a remote URI. A value built
// from a file:// URI collapses to a path, so IsURI returns false for it.
func (t PathOrURI) IsURI() bool {
	return t.uri != nil
}

// URI returns the contained value as a URI. For the URI variant this is a
// copy of the held URI. For the path variant, a relative path is resolved
// against the current working directory, the result is lexically cleaned,
// and the absolute path is converted to a file:// URI.
//
// It fails if the working directory cannot be read, or if the cleaned path
// is not absolute (*FileToURIError).
func (t PathOrURI) URI() (*url.URL, error) {
	if t.uri != nil {
		cp := *t.uri
		return &cp, nil
	}
	p := t.path
	if !filepath.IsAbs(p) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		p = filepath.Join(wd, p)
	}
	u, err := fileURI(filepath.Clean(p))
	if err != nil {
		return nil, &FileToURIError{Path: t.path}
	}
	return u, nil
}

// String renders the target for display or as a command argument: the path
// variant as-is in platform form, the URI variant serialized.
func (t PathOrURI) String() string {
	if t.uri != nil {
		return t.uri.String()
	}
	return t.path
}

// fileURI converts an absolute path to a file:// URL.
func fileURI(abs string) (*url.URL, error) {
	if !filepath.IsAbs(abs) {
		return nil, fmt.Errorf("not an absolute path: %s", abs)
	}
	p := filepath.ToSlash(abs)
	// UNC path: \\host\share\x becomes file://host/share/x.
	if rest, ok := strings.CutPrefix(p, "//"); ok {
		host, share, _ := strings.Cut(rest, "/")
		return &url.URL{Scheme: "file", Host: host, Path: "/" + share}, nil
	}
	// Windows drive path: C:/x becomes file:///C:/x.
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return &url.URL{Scheme: "file", Path: p}, nil
}

// pathFromFileURI extracts the path component of a file:// URI in platform
// form.
func pathFromFileURI(u *url.URL) string {
	p := u.Path
	if runtime.GOOS == "windows" {
		// file:///C:/x carries the drive as /C:/x.
		if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
			p = p[1:]
		}
		p = filepath.FromSlash(p)
		if u.Host != "" {
			p = `\\` + u.Host + p
		}
	}
	return p
}
