package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nyx-space/hifitime-sub000/datetime"
	"github.com/nyx-space/hifitime-sub000/network"
)

/***** STRUCT **********************************/

type Job struct {
	DataSet DataSet
	Index   int // 1-based index of the source that succeeded or failed last
	IsTmp   bool
}

/***** VARIABLE ********************************/

var (
	mutexDir sync.Mutex
)

/***** FUNCTION ********************************/

// doJob brings one dataset file up to date. It walks the source fallback
// list until a download sticks, decompressing .gz payloads on the way.
// io.EOF reports that the file is already present.
func doJob(job *Job) (err error) {
	_, err = os.Stat(job.DataSet.Path)

	if err == nil && !cfg.Force {
		return io.EOF
	}

	dir := filepath.Dir(job.DataSet.Path)

	mutexDir.Lock()
	_, err = os.Stat(dir)

	if os.IsNotExist(err) {
		os.MkdirAll(dir, 0775)
	}

	mutexDir.Unlock()

	f := network.FetchTask{Continue: true}
	var terr network.TaskError
	var srcFile, desFile string

	job.Index = 0

	for _, s := range job.DataSet.Sources {
		// download
		err = nil
		f.Source = s
		f.Size = 0
		f.Path = filepath.ToSlash(filepath.Join(dir, filepath.Base(s.Url)))
		job.Index++

		terr = network.Fetch(&f)

		if terr != nil {
			job.IsTmp = job.IsTmp || terr.IsTemporary()
			err = terr
			os.Remove(f.Path)
			continue
		}

		// uncompress
		srcFile, desFile = f.Path, f.Path
		err = nil

		if strings.EqualFold(filepath.Ext(srcFile), ".gz") {
			desFile = srcFile[:len(srcFile)-3]
			err = network.GunzipFile(srcFile, desFile)

			if err != nil {
				os.Remove(srcFile)
				os.Remove(desFile)
				continue
			}

			os.Remove(srcFile)
		}

		// rename
		if desFile != job.DataSet.Path {
			err = os.Rename(desFile, job.DataSet.Path)

			if err != nil {
				os.Remove(desFile)
				continue
			}
		}

		break
	}

	return
}

/***********************************************/

// process downloads every configured dataset through a bounded worker pool,
// retrying temporary failures. It returns the names of the datasets that
// could not be brought up to date.
func process() []string {
	workerNum := cfg.Workers

	if workerNum > len(cfg.DataSets) {
		workerNum = len(cfg.DataSets)
	}

	chJobQue := make(chan Job, workerNum)
	chJobFail := make(chan string, len(cfg.DataSets))

	go func() {
		for _, ds := range cfg.DataSets {
			chJobQue <- Job{DataSet: ds}
		}

		close(chJobQue)
	}()

	var wg sync.WaitGroup

	for i := 0; i < workerNum; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			var count int

			for job := range chJobQue {
				var err error

				for count = 0; count <= cfg.Retries; count++ {
					if err = doJob(&job); err == nil {
						log.Info().
							Str("dataset", job.DataSet.Name).
							Str("path", job.DataSet.Path).
							Int("source_index", job.Index).
							Int("attempt_num", count+1).
							Msg("finished to download")
						break
					} else if err == io.EOF {
						log.Info().
							Str("dataset", job.DataSet.Name).
							Str("path", job.DataSet.Path).
							Msg("already exists")
						err = nil
						break
					} else if !job.IsTmp {
						// No source failed in a retryable way.
						break
					}
				}

				if err != nil {
					log.Error().
						Err(fmt.Errorf("%w: %s", datetime.ErrParseDownload, err.Error())).
						Str("dataset", job.DataSet.Name).
						Int("attempt_num", count).
						Msg("failed to download")
					chJobFail <- job.DataSet.Name
				}
			}
		}()
	}

	wg.Wait()
	close(chJobFail)

	var failed []string

	for name := range chJobFail {
		failed = append(failed, name)
	}

	return failed
}
