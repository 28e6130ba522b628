package domain

// ContentCache maps project-relative paths to the content hash they had the
// last time they were found clean.
type ContentCache struct {
	ProjectPath string            `json:"project_path"`
	Clean       map[string]string `json:"clean"`
}

func NewContentCache(projectPath string) *ContentCache {
	return &ContentCache{ProjectPath: projectPath, Clean: make(map[string]string)}
}

// IsClean reports whether path was clean with exactly this content hash.
func (c *ContentCache) IsClean(path, hash string) bool {
	if c == nil {
		return false
	}
	h, ok := c.Clean[path]
	return ok && h == hash
}

func (c *ContentCache) MarkClean(path, hash string) {
	if c.Clean == nil {
		c.Clean = make(map[string]string)
	}
	c.Clean[path] = hash
}

// Forget drops path, used once a file has been rewritten.
func (c *ContentCache) Forget(path string) {
	delete(c.Clean, path)
}
