// Package fetch sketches the external collaborator spec.md declares out
// of scope: downloading a compiled map from a remote store and
// unpacking it to a local path. It is deliberately thin — a contract,
// not a feature — since the CORE of this module is the loader and
// traversal in packages vbspfile/bsp/trace.
package fetch

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Source is the contract a remote map store satisfies: fetch one named
// map into destDir and return the path to the extracted .bsp file.
type Source interface {
	Fetch(ctx context.Context, mapName, destDir string) (bspPath string, err error)
}

// HTTPZipSource is a minimal Source backed by a single HTTP endpoint
// that serves <baseURL>/<mapName>.zip, a zip archive containing exactly
// one .bsp file. It exists to give the Source contract one concrete,
// runnable shape; it is not a general-purpose workshop client.
type HTTPZipSource struct {
	BaseURL string
	Client  *http.Client
}

func (s *HTTPZipSource) httpClient() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

func (s *HTTPZipSource) Fetch(ctx context.Context, mapName, destDir string) (string, error) {
	url := s.BaseURL + "/" + mapName + ".zip"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}

	archivePath := filepath.Join(destDir, mapName+".zip")
	if err := writeToFile(archivePath, resp.Body); err != nil {
		return "", err
	}

	return unpackBSP(archivePath, destDir)
}

func writeToFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}

// unpackBSP extracts the first .bsp entry in archivePath into destDir
// and returns its path.
func unpackBSP(archivePath, destDir string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, entry := range r.File {
		if filepath.Ext(entry.Name) != ".bsp" {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return "", err
		}
		outPath := filepath.Join(destDir, filepath.Base(entry.Name))
		err = writeToFile(outPath, rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		return outPath, nil
	}

	return "", fmt.Errorf("unpack %s: no .bsp entry found", archivePath)
}
