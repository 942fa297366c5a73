// Package util holds small formatting helpers shared by the command line tools.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// FileDigest identifies the exact contents of an input file in import reports.
type FileDigest struct {
	SizeBytes int64
	SHA256    string
}

// DigestFile returns the size and SHA256 checksum of the file at filePath.
func DigestFile(filePath string) (FileDigest, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return FileDigest{}, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	sha256Hash := sha256.New()

	size, err := io.Copy(sha256Hash, file)
	if err != nil {
		return FileDigest{}, errors.Wrap(err, "failed to calculate checksum")
	}

	return FileDigest{SizeBytes: size, SHA256: hex.EncodeToString(sha256Hash.Sum(nil))}, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
