package utils

import (
	"encoding/json"
	"strconv"
	"strings"

	"ClipFlow.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// DurationProber reports a media file's duration in seconds. Probing is
// best effort: implementations return 0 on any failure and never an
// error that could abort an upload.
type DurationProber interface {
	Probe(path string) int64
}

// FFProbe shells out to ffprobe with a bounded timeout.
type FFProbe struct{}

func NewFFProbe() FFProbe {
	return FFProbe{}
}

func (FFProbe) Probe(path string) int64 {
	out, err := ffmpeg.ProbeWithTimeout(path, constants.ProbeTimeout, nil)
	if err != nil {
		hlog.Warnf("ffprobe failed for %s: %v", path, err)
		return 0
	}
	return ParseProbeDuration(out)
}

// ParseProbeDuration extracts format.duration from ffprobe JSON output,
// truncated to whole seconds. Returns 0 when the field is missing or
// malformed.
func ParseProbeDuration(probeJSON string) int64 {
	var probed struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(probeJSON), &probed); err != nil {
		return 0
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(probed.Format.Duration), 64)
	if err != nil || seconds < 0 {
		return 0
	}
	return int64(seconds)
}
