package cmd

import (
	"os"

	"github.com/grailbio/base/log"
)

type catFlags struct {
	commonFlags
	initialPosition *int64
	chunkSize       *int
}

// cat streams path's contents, from initial-position to EOF, through a
// vmap.File to stdout, chunk-size bytes at a time.
func cat(f catFlags, path string) error {
	vf, length, closeFile, err := openFile(f.commonFlags, path, *f.initialPosition)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeFile(); err != nil {
			log.Error.Printf("vmaptool cat: close %s: %v", path, err)
		}
	}()

	buf := make([]byte, *f.chunkSize)
	for vf.Position() < length {
		want := int64(len(buf))
		if remaining := length - vf.Position(); remaining < want {
			want = remaining
		}
		if err := vf.Get(buf[:want], 0, int(want)); err != nil {
			return err
		}
		if _, err := os.Stdout.Write(buf[:want]); err != nil {
			return err
		}
	}
	return nil
}
