// Package output serializes course records for hand-off to downstream consumers.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ukaji3/coursesched-go/pkg/coursesched/models"
)

// ToJSON serializes records as a JSON array in their given order.
// A nil slice is written as "[]".
func ToJSON(records []models.CourseRecord, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.CourseRecord{}
	}
	return encode(records, pretty)
}

// ValueToJSON serializes any value with the same encoder settings as ToJSON.
func ValueToJSON(v interface{}, pretty bool) ([]byte, error) {
	return encode(v, pretty)
}

func encode(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Zoom links carry '&' and must stay readable.
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DefaultPath returns the output file name used when none is given.
func DefaultPath(now time.Time) string {
	return "temp_courses_" + now.Format("20060102_150405") + ".json"
}

// WriteFile writes data to path through a temporary file in the same
// directory, so a failed write never leaves a partial output file behind.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".coursesched-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
