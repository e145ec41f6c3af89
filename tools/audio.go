package tools

import "time"

func FrameSamples(duration time.Duration, rate, channels int) int {
	return int(duration.Seconds() * float64(channels) * float64(rate))
}

// DurationFromBitrate estimates the playback duration of an encoded audio
// buffer at a constant bitrate in bits per second.
func DurationFromBitrate(sizeBytes, bitrate int) time.Duration {
	if sizeBytes <= 0 || bitrate <= 0 {
		return 0
	}
	return time.Duration(float64(sizeBytes*8) / float64(bitrate) * float64(time.Second))
}
