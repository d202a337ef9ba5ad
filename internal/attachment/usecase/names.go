package usecase

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"someday-maybe/internal/attachment"
)

var (
	// stem, optional counter, extension: "photo.2.jpg"
	withExtPattern = regexp.MustCompile(`^(.*?)(?:\.(\d+))?\.([^.]*)$`)
	// stem and optional trailing counter: "README2"
	noExtPattern = regexp.MustCompile(`^(.*?)(\d+)?$`)
)

// nextName returns the candidate that follows name: the counter before the
// extension is bumped, or set to 1 when absent.
func nextName(name string) string {
	if m := withExtPattern.FindStringSubmatch(name); m != nil {
		n, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s.%d.%s", m[1], n+1, m[3])
	}
	m := noExtPattern.FindStringSubmatch(name)
	n, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%s%d", m[1], n+1)
}

// validSegment reports whether s can be used as a single path element.
func validSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	if strings.ContainsAny(s, `/\`) || strings.ContainsRune(s, 0) {
		return false
	}
	return path.Base(s) == s
}

func checkTaskID(taskID string) error {
	if !validSegment(taskID) {
		return attachment.ErrInvalidTaskID
	}
	return nil
}

func checkFileName(name string) error {
	if !validSegment(name) {
		return attachment.ErrInvalidName
	}
	return nil
}
