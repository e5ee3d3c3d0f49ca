package savefile

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// ArchiveExtension is the suffix used for single-file save archives.
const ArchiveExtension = ".msgpack.zst"

const archiveVersion = 1

type archive struct {
	Version  int      `msgpack:"version"`
	Snapshot Snapshot `msgpack:"snapshot"`
}

// WriteArchive stores a snapshot as zstd-compressed msgpack.
func WriteArchive(w io.Writer, s Snapshot) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(zw).Encode(archive{Version: archiveVersion, Snapshot: s}); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ReadArchive reads a snapshot written by WriteArchive. The snapshot is not
// decoded; use Decode to validate it.
func ReadArchive(r io.Reader) (Snapshot, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return Snapshot{}, err
	}
	defer zr.Close()

	var a archive
	if err := msgpack.NewDecoder(zr).Decode(&a); err != nil {
		return Snapshot{}, fmt.Errorf("%w: archive: %w", ErrMalformedSave, err)
	}
	if a.Version != archiveVersion {
		return Snapshot{}, malformed("archive: unsupported version %d", a.Version)
	}
	return a.Snapshot, nil
}

// Pack validates the save in dir and writes it to a single archive file.
func Pack(dir string, names FileNames, path string) error {
	s, err := ReadSnapshot(dir, names)
	if err != nil {
		return err
	}
	if _, err := Decode(s); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteArchive(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Unpack validates an archive and writes its save files into dir.
func Unpack(path string, dir string, names FileNames) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s, err := ReadArchive(f)
	if err != nil {
		return err
	}
	if _, err := Decode(s); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return WriteSnapshot(dir, names, s)
}
