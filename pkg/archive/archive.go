// Package archive writes one gzip-compressed tarball per theme folder.
package archive

import (
	"archive/tar"
	"bytes"
	"io/fs"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/gzip"

	"github.com/ferdium/ferdium-themes/pkg/config"
	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/logging"
	"github.com/ferdium/ferdium-themes/pkg/types"
)

// Archiver packs theme folders. Exclude holds doublestar patterns matched
// against slash-separated paths relative to the theme folder.
type Archiver struct {
	FS        types.FS
	Exclude   []string
	Extension string
}

// New builds an Archiver from the archive configuration
func New(fs types.FS, cfg *config.Config) *Archiver {
	return &Archiver{
		FS:        fs,
		Exclude:   cfg.Archive.Exclude,
		Extension: cfg.Archive.Extension,
	}
}

// FileName returns the archive file name for a theme id
func (a *Archiver) FileName(id string) string {
	return id + "." + a.Extension
}

type entry struct {
	rel  string
	abs  string
	info fs.FileInfo
}

// Archive packs src into destDir/<id>.<ext> and returns the written path.
// Entries are stored relative to src in sorted order.
func (a *Archiver) Archive(src, destDir, id string) (string, error) {
	logger := logging.ForTheme("archive", id)
	out := filepath.Join(destDir, a.FileName(id))

	entries, err := a.collect(src, "")
	if err != nil {
		return "", err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].rel < entries[j].rel })

	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrArchiveWrite, "failed to create compressor")
	}
	tw := tar.NewWriter(gz)

	for _, e := range entries {
		if err := a.writeEntry(tw, e); err != nil {
			return "", errors.Wrapf(err, errors.ErrArchiveWrite, "failed to add %s", e.rel).
				WithDetail("theme", id)
		}
	}
	if err := tw.Close(); err != nil {
		return "", errors.Wrap(err, errors.ErrArchiveWrite, "failed to finish tar stream").WithDetail("theme", id)
	}
	if err := gz.Close(); err != nil {
		return "", errors.Wrap(err, errors.ErrArchiveWrite, "failed to finish gzip stream").WithDetail("theme", id)
	}

	if err := a.FS.MkdirAll(destDir, 0755); err != nil {
		return "", errors.Wrap(err, errors.ErrDirCreate, "failed to create archive directory").
			WithDetail("path", destDir)
	}
	if err := a.FS.WriteFile(out, buf.Bytes(), 0644); err != nil {
		return "", errors.Wrap(err, errors.ErrArchiveWrite, "failed to write archive").
			WithDetail("path", out)
	}

	logger.Debug().Str("path", out).Int("entries", len(entries)).Int("bytes", buf.Len()).Msg("Wrote archive")
	return out, nil
}

// collect walks dir depth-first, dropping excluded files and anything that
// is neither a regular file nor a directory
func (a *Archiver) collect(dir, rel string) ([]entry, error) {
	items, err := a.FS.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read theme folder").
			WithDetail("path", dir)
	}

	var entries []entry
	for _, item := range items {
		childRel := path.Join(rel, item.Name())
		childAbs := filepath.Join(dir, item.Name())

		info, err := a.FS.Lstat(childAbs)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot stat file").
				WithDetail("path", childAbs)
		}

		switch {
		case info.IsDir():
			if a.Excluded(childRel + "/") {
				continue
			}
			entries = append(entries, entry{rel: childRel + "/", abs: childAbs, info: info})
			children, err := a.collect(childAbs, childRel)
			if err != nil {
				return nil, err
			}
			entries = append(entries, children...)
		case info.Mode().IsRegular():
			if a.Excluded(childRel) {
				continue
			}
			entries = append(entries, entry{rel: childRel, abs: childAbs, info: info})
		default:
			logger := logging.GetLogger("archive")
			logger.Debug().Str("path", childAbs).Msg("Skipping special file")
		}
	}
	return entries, nil
}

// Excluded reports whether the relative path matches an exclusion pattern
func (a *Archiver) Excluded(rel string) bool {
	for _, pattern := range a.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (a *Archiver) writeEntry(tw *tar.Writer, e entry) error {
	hdr, err := tar.FileInfoHeader(e.info, "")
	if err != nil {
		return err
	}
	hdr.Name = e.rel
	hdr.Uname, hdr.Gname = "", ""
	hdr.Uid, hdr.Gid = 0, 0

	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	if e.info.IsDir() {
		return nil
	}

	data, err := a.FS.ReadFile(e.abs)
	if err != nil {
		return err
	}
	_, err = tw.Write(data)
	return err
}
