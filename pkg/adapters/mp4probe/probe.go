// Package mp4probe validates transcoded MP4 artifacts.
package mp4probe

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// Info describes the video track of a probed MP4 file.
type Info struct {
	DurationMs int
	Width      int
	Height     int
	HasVideo   bool
}

// ProbeFile decodes the MP4 at path and returns its video track info.
// Used as a post-transcode sanity check; fallback WebM copies will fail to
// decode and callers treat that as a warning, not an error in the pipeline.
func ProbeFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader decodes MP4 data from an io.ReadSeeker.
func ProbeReader(reader io.ReadSeeker) (Info, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return Info{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if mp4File.IsFragmented() && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return Info{}, fmt.Errorf("no moov box found")
	}

	info := Info{}
	if moov.Mvhd != nil && moov.Mvhd.Timescale > 0 {
		info.DurationMs = int(moov.Mvhd.Duration * 1000 / uint64(moov.Mvhd.Timescale))
	}

	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil {
			continue
		}
		if trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		info.HasVideo = true
		if trak.Tkhd != nil {
			// Tkhd stores dimensions as 16.16 fixed point.
			info.Width = int(trak.Tkhd.Width >> 16)
			info.Height = int(trak.Tkhd.Height >> 16)
		}
		break
	}

	if !info.HasVideo {
		return info, fmt.Errorf("no video track found")
	}
	return info, nil
}
