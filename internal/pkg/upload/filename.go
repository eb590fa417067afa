package upload

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"time"
)

// GenerateFilename returns "<base36 token>-<unix millis>.<ext>" where ext is
// taken from the last dot-separated segment of the client supplied name.
func GenerateFilename(original string, now time.Time) string {
	return randomToken() + "-" + strconv.FormatInt(now.UnixMilli(), 10) + "." + Extension(original)
}

// Extension is the segment after the last dot, or the whole name when there
// is none, lowercased with anything outside [a-z0-9] dropped.
func Extension(original string) string {
	ext := original
	if i := strings.LastIndexByte(original, '.'); i >= 0 {
		ext = original[i+1:]
	}
	ext = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		}
		return -1
	}, ext)
	if ext == "" || len(ext) > 10 {
		return "bin"
	}
	return ext
}

func randomToken() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return strconv.FormatUint(binary.BigEndian.Uint64(b[:]), 36)
}
