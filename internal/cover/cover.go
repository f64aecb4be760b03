// Package cover downloads catalog cover images and converts them to jpeg,
// cleaning up the downloaded intermediate regardless of outcome.
package cover

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	// The catalog serves covers as webp; register the decoder.
	_ "golang.org/x/image/webp"

	apperrors "github.com/Hxfrzc/galinfo/internal/errors"
)

const (
	intermediatePrefix = "main_"
	convertedPrefix    = "cover_"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// locks serializes pipeline runs per source URL: both transient filenames
// derive from the URL basename, so concurrent runs for the same URL would
// clobber each other's files in the shared work directory.
var locks = urlLocks{m: make(map[string]*sync.Mutex)}

type urlLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func (l *urlLocks) get(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.m[key]; !ok {
		l.m[key] = &sync.Mutex{}
	}
	return l.m[key]
}

// EnsureWorkDir creates the transient-artifact directory if absent.
// The directory persists for the process lifetime; its contents do not.
func EnsureWorkDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create work directory: %w", err)
	}
	return nil
}

// FetchAndConvert downloads the cover at rawURL into workDir and converts it
// to jpeg, returning the converted file's path. The downloaded intermediate
// is always removed, success or failure; the converted file is owned by the
// caller, who removes it after use.
func FetchAndConvert(ctx context.Context, rawURL, workDir string) (string, error) {
	mu := locks.get(rawURL)
	mu.Lock()
	defer mu.Unlock()

	base := urlBasename(rawURL)
	tmpPath := filepath.Join(workDir, intermediatePrefix+base)

	if err := download(ctx, rawURL, tmpPath); err != nil {
		return "", err
	}

	outPath, err := convert(tmpPath, workDir, base)

	if rmErr := os.Remove(tmpPath); rmErr != nil && !os.IsNotExist(rmErr) {
		err = errors.Join(err, fmt.Errorf("failed to remove intermediate %s: %w", tmpPath, rmErr))
	}
	if err != nil {
		return "", err
	}

	return outPath, nil
}

func download(ctx context.Context, rawURL, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download cover: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewFetchError(rawURL, resp.StatusCode)
	}

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create intermediate file: %w", err)
	}

	_, err = io.Copy(file, resp.Body)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dest)
		return fmt.Errorf("failed to write intermediate file: %w", err)
	}

	return nil
}

func convert(tmpPath, workDir, base string) (string, error) {
	img, err := imaging.Open(tmpPath, imaging.AutoOrientation(true))
	if err != nil {
		return "", apperrors.NewConvertError(tmpPath, err)
	}

	// jpeg carries no alpha channel; the encoder flattens to RGB.
	name := strings.TrimSuffix(base, path.Ext(base))
	outPath := filepath.Join(workDir, convertedPrefix+name+".jpg")

	if err := imaging.Save(img, outPath, imaging.JPEGQuality(85)); err != nil {
		_ = os.Remove(outPath)
		return "", apperrors.NewConvertError(outPath, err)
	}

	return outPath, nil
}

// urlBasename extracts the final path element of the source URL, the key
// both transient filenames derive from.
func urlBasename(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(rawURL)
}
