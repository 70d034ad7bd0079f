package exif

import (
	"errors"
	"os"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"
)

const exifTimeLayout = "2006:01:02 15:04:05"

var ErrNoCaptureTime = errors.New("exif capture time not found")

// Reader looks up when a photo or screenshot was taken.
type Reader struct{}

// CaptureTime prefers DateTimeOriginal and falls back to the EXIF DateTime tag.
// PNG files rarely carry EXIF, so ErrNoCaptureTime is an expected result.
func (Reader) CaptureTime(path string) (time.Time, error) {
	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return time.Time{}, errors.Join(ErrNoCaptureTime, err)
	}

	if tag, err := x.Get(goexif.DateTimeOriginal); err == nil {
		if str, err := tag.StringVal(); err == nil {
			if parsed, err := time.ParseInLocation(exifTimeLayout, str, time.Local); err == nil {
				return parsed, nil
			}
		}
	}
	if parsed, err := x.DateTime(); err == nil {
		return parsed, nil
	}
	return time.Time{}, ErrNoCaptureTime
}
