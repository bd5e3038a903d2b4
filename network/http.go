package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

/***** FUNCTION ********************************/

// Fetch downloads the task's source into its path, dispatching on the URL
// scheme. Unsupported schemes are a permanent error.
func Fetch(f *FetchTask) TaskError {
	if f.Source.IsHttp() || f.Source.IsHttps() {
		return HTTPDownload(f)
	}

	return taskError{err: fmt.Errorf("unsupported URL scheme in %q", f.Source.Url), flag: false}
}

/***********************************************/

// HTTPDownload gets the file over HTTP(S), resuming a partial download with
// a Range request when the task asks to continue. A watchdog cancels the
// transfer after 30 s without progress.
func HTTPDownload(f *FetchTask) TaskError {
	var idx int64
	var flag int
	var err error

	if f.Continue {
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
		info, err := os.Stat(f.Path)

		if err != nil {
			idx = 0
		} else {
			if info.Size() != f.Size { // some error occurs, redownload
				idx = 0
				f.Size = 0
				flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			} else {
				idx = f.Size
			}
		}
	} else {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		idx = 0
	}

	client := http.Client{}
	ctx, cancel := context.WithCancel(context.TODO())
	timer := time.AfterFunc(time.Minute, func() { cancel() })

	defer timer.Stop()

	request, _ := http.NewRequest(http.MethodGet, f.Source.Url, nil)
	request.Header.Add("User-Agent", HTTPUserAgent)

	if idx > 0 {
		request.Header.Add("Range", fmt.Sprintf("bytes=%d-", idx))
	}

	request = request.WithContext(ctx)

	log.Debug().Str("url", f.Source.Url).Int64("offset", idx).Msg("starting HTTP download")

	response, err := client.Do(request)

	if err != nil {
		return taskError{err: err, flag: true}
	} else if response.StatusCode == http.StatusRequestedRangeNotSatisfiable {
		// Nothing left past the resume offset.
		response.Body.Close()
		return nil
	} else if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusPartialContent {
		response.Body.Close()
		err = fmt.Errorf("invalid response status code %d", response.StatusCode)
		return taskError{err: err, flag: response.StatusCode >= 500}
	}

	defer response.Body.Close()

	// A server that ignores the Range header replays the whole file.
	if idx > 0 && response.StatusCode == http.StatusOK {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
		f.Size = 0
	}

	fp, err := os.OpenFile(f.Path, flag, 0664)

	if err != nil {
		return taskError{err: err, flag: false}
	}

	defer fp.Close()

	var n int64

	for {
		timer.Reset(30 * time.Second)
		n, err = io.CopyN(fp, response.Body, 1024)
		f.Size += n

		if err == io.EOF {
			log.Debug().Str("url", f.Source.Url).Str("size", SizeRepr(f.Size)).Msg("finished HTTP download")
			return nil
		} else if err != nil {
			return taskError{err: err, flag: true}
		}
	}
}
