package cli

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// maxImageBytes bounds an attached image; the whole collection lives in
// one slot value.
const maxImageBytes = 2 << 20

var (
	errImageTooLarge = errors.New("image too large")
	errNotAnImage    = errors.New("not an image")
)

// readImageDataURI reads the file at path and returns it as a
// data:<mime>;base64, URI.
func readImageDataURI(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if info.Size() > maxImageBytes {
		return "", fmt.Errorf("%w: %s is %d bytes (max %d)", errImageTooLarge, path, info.Size(), maxImageBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s looks like %s", errNotAnImage, path, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
