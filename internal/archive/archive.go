// Package archive bundles the filled forms and the checklist into a zip.
package archive

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"
	"golang.org/x/text/unicode/norm"
)

// Entry is one document in the archive.
type Entry struct {
	Name string
	Data []byte
}

const unsafeChars = `/\?%*:|"<>`

// SanitizeFilename replaces path-unsafe characters with '-' and normalises
// the name to NFC so umlauts are stored the same way on every platform.
func SanitizeFilename(name string) string {
	name = norm.NFC.String(name)
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeChars, r) || r < 0x20 {
			return '-'
		}
		return r
	}, name)
}

// DocumentName is the archive name for a form, suffixed with the person it
// is about when there is one.
func DocumentName(formName, person string) string {
	name := SanitizeFilename(formName)
	if person != "" {
		name += " - " + SanitizeFilename(person)
	}
	return name + ".pdf"
}

// Filename is the download name: <prefix>-<last name or fallback>.zip.
func Filename(prefix, lastName, fallback string) string {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		lastName = fallback
	}
	return SanitizeFilename(prefix + "-" + lastName + ".zip")
}

// Build writes entries in order followed by the checklist file. Repeated
// names get a numeric suffix so no document overwrites another.
func Build(entries []Entry, checklistName, checklist string, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]bool, len(entries)+1)
	add := func(name string, data []byte) error {
		name = unique(seen, name)
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return fmt.Errorf("adding %s: %w", name, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		return nil
	}

	for _, e := range entries {
		if err := add(e.Name, e.Data); err != nil {
			return nil, err
		}
	}
	if err := add(checklistName, []byte(checklist)); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// unique returns name, or the first free "name (n).ext" with n >= 2.
func unique(seen map[string]bool, name string) string {
	if !seen[name] {
		seen[name] = true
		return name
	}
	base, ext := name, ""
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		base, ext = name[:i], name[i:]
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if !seen[candidate] {
			seen[candidate] = true
			return candidate
		}
	}
}
