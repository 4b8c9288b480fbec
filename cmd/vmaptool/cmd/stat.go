package cmd

import "fmt"

type statFlags struct {
	commonFlags
	chunkSize *int
}

// stat reads path front to back, chunk-size bytes at a time, and prints the
// resulting region table occupancy.
func stat(f statFlags, path string) error {
	vf, length, closeFile, err := openFile(f.commonFlags, path, 0)
	if err != nil {
		return err
	}
	defer closeFile()

	buf := make([]byte, *f.chunkSize)
	for vf.Position() < length {
		want := int64(len(buf))
		if remaining := length - vf.Position(); remaining < want {
			want = remaining
		}
		if err := vf.Get(buf[:want], 0, int(want)); err != nil {
			return err
		}
	}

	st := vf.Stats()
	fmt.Printf("used=%d max_regions=%d active_slot=%d total_evictions=%d file_length=%d\n",
		st.Used, st.MaxRegions, st.ActiveSlot, st.TotalEvictions, length)
	return nil
}
