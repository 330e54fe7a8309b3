package corpus

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source enumerates fixture resources under a logical path prefix.
// Callers above the scanner never branch on how the process was
// deployed; DetectSource picks the implementation once at startup.
type Source interface {
	List(prefix string) ([]Resource, error)
}

// Resource is one discoverable fixture file.
type Resource interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// DirSource serves fixtures from a loose directory tree. The prefix
// resolves to a directory under Root; its immediate files are scanned,
// and files one level inside each subdirectory.
type DirSource struct {
	Root string
}

func (s *DirSource) List(prefix string) ([]Resource, error) {
	root := filepath.Join(s.Root, prefix)
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			// An absent fixture category is valid, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("stat fixture root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixture root %s is not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read fixture root %s: %w", root, err)
	}
	var out []Resource
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if !e.IsDir() {
			out = append(out, fileResource(path))
			continue
		}
		sub, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read fixture dir %s: %w", path, err)
		}
		for _, f := range sub {
			if f.IsDir() {
				continue
			}
			out = append(out, fileResource(filepath.Join(path, f.Name())))
		}
	}
	return out, nil
}

type fileResource string

func (r fileResource) Name() string { return string(r) }

func (r fileResource) Open() (io.ReadCloser, error) {
	return os.Open(string(r))
}

// ArchiveSource serves fixtures from a zip archive, typically the
// running executable when the build pipeline appends the fixture set to
// the binary. Matching entries are read eagerly during List; the fixture
// corpus is small and loaded exactly once.
type ArchiveSource struct {
	Path string
}

func (s *ArchiveSource) List(prefix string) ([]Resource, error) {
	r, err := zip.OpenReader(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open fixture archive %s: %w", s.Path, err)
	}
	defer r.Close()

	var out []Resource
	for _, f := range r.File {
		if !strings.HasPrefix(f.Name, prefix+"/") {
			continue
		}
		if !strings.HasSuffix(f.Name, ".yaml") && !strings.HasSuffix(f.Name, ".yml") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open archive entry %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read archive entry %s: %w", f.Name, err)
		}
		out = append(out, &memResource{name: f.Name, data: data})
	}
	return out, nil
}

type memResource struct {
	name string
	data []byte
}

func (r *memResource) Name() string { return r.name }

func (r *memResource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(r.data))), nil
}

// DetectSource probes the deployment shape: if the running executable is
// itself a zip archive the fixtures are served from it, otherwise from
// the given root directory. The two modes are mutually exclusive and
// transparent to everything above the scanner.
func DetectSource(root string) Source {
	if exe, err := os.Executable(); err == nil {
		if r, err := zip.OpenReader(exe); err == nil {
			r.Close()
			return &ArchiveSource{Path: exe}
		}
	}
	return &DirSource{Root: root}
}
