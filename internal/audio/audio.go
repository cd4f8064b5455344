package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInputNotFound is returned when the audio path does not name an existing
// file.
var ErrInputNotFound = errors.New("audio file not found")

// upload type the transcription service has always been given
const DefaultMIMEType = "audio/wav"

var audioMIMETypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".m4a":  "audio/mp4",
	".wma":  "audio/x-ms-wma",
	".aiff": "audio/aiff",
	".aif":  "audio/aiff",
	".opus": "audio/ogg",
	".webm": "audio/webm",
}

// checks that path names an existing regular file
func CheckFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrInputNotFound)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}

	return nil
}

// checks if the file is an audio file based on extension
func IsAudioFile(path string) bool {
	_, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

// MIME type for uploading the file, falling back to DefaultMIMEType
func MIMEType(path string) string {
	if mime, ok := audioMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mime
	}
	return DefaultMIMEType
}
