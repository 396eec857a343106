package invoice

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// WriteFile renders the document and writes it next to the given directory,
// returning the file path. An empty dir uses the system temp directory.
func WriteFile(doc Document, dir string) (string, error) {
	html, err := RenderHTML(doc)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = os.TempDir()
	}
	name := fmt.Sprintf("invoice_%s_%s.html", slug(doc.ProjectName), doc.Date.Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("writing invoice: %w", err)
	}
	return path, nil
}

// OpenInBrowser hands the invoice file to the platform's default browser,
// which runs the page's auto-print script.
func OpenInBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening invoice: %w", err)
	}
	return nil
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "project"
	}
	return b.String()
}
