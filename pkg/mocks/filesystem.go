package mocks

import (
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/user/framecast/pkg/ports"
)

// FileSystem is a mock implementation of ports.FileSystem backed by an
// in-memory file map.
type FileSystem struct {
	mu       sync.RWMutex
	files    map[string][]byte
	modTimes map[string]time.Time
	dirs     map[string]bool
	tempSeq  int

	ReadFileFunc  func(path string) ([]byte, error)
	WriteFileFunc func(path string, data []byte) error
	MkdirAllFunc  func(path string) error
	ExistsFunc    func(path string) (bool, error)
	RemoveFunc    func(path string) error
	RemoveAllFunc func(path string) error
	TempDirFunc   func(prefix string) (string, error)
	CopyFileFunc  func(src, dst string) error
	GlobFunc      func(pattern string) ([]string, error)
	ModTimeFunc   func(path string) (time.Time, error)
}

// NewFileSystem creates a new mock FileSystem.
func NewFileSystem() *FileSystem {
	return &FileSystem{
		files:    make(map[string][]byte),
		modTimes: make(map[string]time.Time),
		dirs:     make(map[string]bool),
	}
}

// SetModTime pins a file's modification time for Glob ordering tests.
func (m *FileSystem) SetModTime(p string, t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modTimes[p] = t
}

func (m *FileSystem) ReadFile(p string) ([]byte, error) {
	if m.ReadFileFunc != nil {
		return m.ReadFileFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.files[p]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("file not found: %s", p)
}

func (m *FileSystem) WriteFile(p string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(p, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[p] = data
	m.modTimes[p] = time.Now()
	return nil
}

func (m *FileSystem) MkdirAll(p string) error {
	if m.MkdirAllFunc != nil {
		return m.MkdirAllFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[p] = true
	return nil
}

func (m *FileSystem) Exists(p string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[p]; ok {
		return true, nil
	}
	return m.dirs[p], nil
}

func (m *FileSystem) Remove(p string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[p]; !ok {
		return fmt.Errorf("file not found: %s", p)
	}
	delete(m.files, p)
	delete(m.modTimes, p)
	return nil
}

func (m *FileSystem) RemoveAll(p string) error {
	if m.RemoveAllFunc != nil {
		return m.RemoveAllFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := strings.TrimSuffix(p, "/") + "/"
	for f := range m.files {
		if f == p || strings.HasPrefix(f, prefix) {
			delete(m.files, f)
			delete(m.modTimes, f)
		}
	}
	for d := range m.dirs {
		if d == p || strings.HasPrefix(d, prefix) {
			delete(m.dirs, d)
		}
	}
	return nil
}

func (m *FileSystem) TempDir(prefix string) (string, error) {
	if m.TempDirFunc != nil {
		return m.TempDirFunc(prefix)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tempSeq++
	dir := fmt.Sprintf("/tmp/%s%d", prefix, m.tempSeq)
	m.dirs[dir] = true
	return dir, nil
}

func (m *FileSystem) CopyFile(src, dst string) error {
	if m.CopyFileFunc != nil {
		return m.CopyFileFunc(src, dst)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[src]
	if !ok {
		return fmt.Errorf("file not found: %s", src)
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	m.files[dst] = cp
	m.modTimes[dst] = time.Now()
	return nil
}

func (m *FileSystem) Glob(pattern string) ([]string, error) {
	if m.GlobFunc != nil {
		return m.GlobFunc(pattern)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matches []string
	for f := range m.files {
		ok, err := path.Match(pattern, f)
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

func (m *FileSystem) ModTime(p string) (time.Time, error) {
	if m.ModTimeFunc != nil {
		return m.ModTimeFunc(p)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.modTimes[p]; ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("file not found: %s", p)
}

// Files returns a snapshot of the stored file paths.
func (m *FileSystem) Files() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for f := range m.files {
		out = append(out, f)
	}
	return out
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
