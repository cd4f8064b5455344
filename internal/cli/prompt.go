package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mgpai22/wordsrt/internal/audio"
)

var errNoInput = errors.New("no input: standard input closed")

// asks for an audio path until an existing file is given
func promptAudioPath(in *bufio.Reader, out io.Writer) (string, error) {
	for {
		fmt.Fprint(out, "Audio file path (e.g. ./my-audio.wav): ")
		path, err := readLine(in)
		if err != nil {
			return "", err
		}

		if err := audio.CheckFile(path); err != nil {
			if errors.Is(err, audio.ErrInputNotFound) {
				logger.Debugw("Audio path rejected", "path", path, "error", err)
				fmt.Fprintln(out, "File not found. Please try again.")
				continue
			}
			return "", err
		}

		return path, nil
	}
}

// asks for the SRT output path; a blank answer selects defaultPath
func promptOutputPath(in *bufio.Reader, out io.Writer, defaultPath string) (string, error) {
	fmt.Fprintf(out, "SRT output path (e.g. %s): ", defaultPath)
	path, err := readLine(in)
	if err != nil {
		return "", err
	}
	if path == "" {
		return defaultPath, nil
	}
	return path, nil
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", errNoInput
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
