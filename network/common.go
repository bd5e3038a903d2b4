package network

import (
	"fmt"
	"io"
	"strings"
)

/***** CONSTANT ********************************/

const (
	ONE_BYTE     = 1
	ONE_KILOBYTE = 1024 * ONE_BYTE
	ONE_MEGABYTE = 1024 * ONE_KILOBYTE
	ONE_GIGABYTE = 1024 * ONE_MEGABYTE
	ONE_TERABYTE = 1024 * ONE_GIGABYTE
)

const HTTPUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_12_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/12.0.3 Safari/605.1.15"

/***** FUNCTION ********************************/

// Display the size of a file in human-friendly form, such as "xx B", "xx KB", ..., "xx TB".
func SizeRepr(size int64) string {
	var sizeF float64 = float64(size)
	var idx int
	var unit string

	for idx = 1; idx < 6; idx++ {
		if sizeF < 1024 {
			break
		}

		sizeF /= 1024
	}

	switch idx {
	case 1:
		unit = "B"
	case 2:
		unit = "KB"
	case 3:
		unit = "MB"
	case 4:
		unit = "GB"
	default:
		unit = "TB"
	}

	if idx == 1 {
		return fmt.Sprintf("%d %s", size, unit)
	} else {
		return fmt.Sprintf("%.2f %s", sizeF, unit)
	}
}

/***** STRUCT **********************************/

type TaskError interface {
	Error() string
	IsTemporary() bool
	IsEOF() bool
}

/***********************************************/

type taskError struct {
	err  error
	flag bool
}

/***** FUNCTION ********************************/

func NewTaskError(err error, flag bool) TaskError {
	return taskError{err: err, flag: flag}
}

/***********************************************/

func (e taskError) Error() string {
	return e.err.Error()
}

/***********************************************/

func (e taskError) IsTemporary() bool {
	return e.flag
}

/***********************************************/

func (e taskError) IsEOF() bool {
	return e.err == io.EOF
}

/***** STRUCT **********************************/

// Source names one remote copy of a data file. Fallback lists of sources are
// tried in order.
type Source struct {
	Name string `yaml:"name"`
	Url  string `yaml:"url"`
}

/***** FUNCTION ********************************/

func (s *Source) IsHttp() bool {
	return strings.HasPrefix(s.Url, "http://")
}

/***********************************************/

func (s *Source) IsHttps() bool {
	return strings.HasPrefix(s.Url, "https://")
}

/***** STRUCT **********************************/

type FetchTask struct {
	Source   Source // where to get the file
	Path     string // path of the file to be saved
	Size     int64  // size of downloaded part
	Continue bool   // whether to resume getting a partially-downloaded file or not
}

/***********************************************/
