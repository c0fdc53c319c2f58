package scene

import (
	"image"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fsnotify/fsnotify"

	vac "github.com/gogpu/vac"

	// Decoders for the image formats background files commonly use.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// ResolveImageFile resolves a background image pattern to a concrete
// file name inside dir for frame f.
//
// Resolution order for a wildcard pattern:
//  1. the exact frame file (prefix + frame + suffix), if it exists;
//  2. if hold is set, the file for the nearest earlier frame;
//  3. the fixed fallback file (prefix + suffix), if it exists.
//
// ok is false when nothing resolves. A pattern without a wildcard
// resolves to itself for every frame, when the file exists.
func ResolveImageFile(dir, pattern string, f vac.Frame, hold bool) (string, bool) {
	if pattern == "" {
		return "", false
	}

	prefix, suffix, hasWildcard := SplitImagePattern(pattern)
	if !hasWildcard {
		if fileExists(filepath.Join(dir, pattern)) {
			return pattern, true
		}
		return "", false
	}

	exact := prefix + strconv.Itoa(f.Int()) + suffix
	if fileExists(filepath.Join(dir, exact)) {
		return exact, true
	}

	if hold {
		if name, ok := nearestEarlierFrame(dir, prefix, suffix, f.Int()); ok {
			return name, true
		}
	}

	fallback := prefix + suffix
	if fileExists(filepath.Join(dir, fallback)) {
		return fallback, true
	}
	return "", false
}

// nearestEarlierFrame scans dir for files matching prefix + n + suffix
// with n <= f, and returns the name with the largest such n.
func nearestEarlierFrame(dir, prefix, suffix string, f int) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	best := ""
	bestN := 0
	found := false
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !matchesPattern(name, prefix, suffix) {
			continue
		}
		middle := name[len(prefix) : len(name)-len(suffix)]
		if middle == "" {
			continue // the fallback file is not a frame
		}
		n, err := strconv.Atoi(middle)
		if err != nil || n > f {
			continue
		}
		if !found || n > bestN {
			best, bestN, found = name, n, true
		}
	}
	return best, found
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ImageCache loads and caches background images resolved against a
// directory. It optionally watches the directory so that edits to the
// image files on disk invalidate the cache.
//
// ImageCache is safe for concurrent use; the watcher goroutine and the
// render path may touch it at the same time.
type ImageCache struct {
	dir string
	bg  *Background

	mu     sync.Mutex
	images map[string]image.Image

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewImageCache returns a cache resolving bg's image pattern against dir.
func NewImageCache(dir string, bg *Background) *ImageCache {
	return &ImageCache{
		dir:    dir,
		bg:     bg,
		images: make(map[string]image.Image),
	}
}

// ImageAt returns the background image for frame f, or nil when no file
// resolves or the resolved file cannot be decoded. Broken files are
// cached as nil so they are not retried on every repaint.
func (c *ImageCache) ImageAt(f vac.Frame) image.Image {
	name, ok := ResolveImageFile(c.dir, c.bg.ImageURL(), f, c.bg.Hold())
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if img, ok := c.images[name]; ok {
		return img
	}

	img := loadImage(filepath.Join(c.dir, name))
	c.images[name] = img
	return img
}

func loadImage(path string) image.Image {
	file, err := os.Open(path)
	if err != nil {
		vac.Logger().Warn("background image open failed", "path", path, "error", err)
		return nil
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		vac.Logger().Warn("background image decode failed", "path", path, "error", err)
		return nil
	}
	vac.Logger().Debug("background image loaded", "path", path, "format", format)
	return img
}

// ClearCache drops every cached image. The next ImageAt reloads from disk.
func (c *ImageCache) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images = make(map[string]image.Image)
}

// Watch starts watching the cache directory and clears the cache when
// any file in it changes. It is a no-op when already watching.
func (c *ImageCache) Watch() error {
	if c.watcher != nil {
		return nil
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(c.dir); err != nil {
		w.Close()
		return err
	}
	c.watcher = w
	c.done = make(chan struct{})

	go func() {
		for {
			select {
			case _, ok := <-w.Events:
				if !ok {
					return
				}
				c.ClearCache()
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				vac.Logger().Warn("background image watcher error", "dir", c.dir, "error", err)
			case <-c.done:
				return
			}
		}
	}()
	return nil
}

// Close stops the watcher, if any.
func (c *ImageCache) Close() error {
	if c.watcher == nil {
		return nil
	}
	close(c.done)
	err := c.watcher.Close()
	c.watcher = nil
	return err
}
