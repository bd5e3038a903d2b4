package network

import (
	"compress/gzip"
	"io"
	"os"
)

/***** FUNCTION ********************************/

// GunzipFile decompresses a downloaded .gz payload into desFile.
func GunzipFile(srcFile, desFile string) error {
	srcFilePt, err := os.Open(srcFile)

	if err != nil {
		return err
	}

	defer srcFilePt.Close()

	srcReader, err := gzip.NewReader(srcFilePt)

	if err != nil {
		return err
	}

	defer srcReader.Close()

	desFilePt, err := os.Create(desFile)

	if err != nil {
		return err
	}

	defer desFilePt.Close()

	_, err = io.Copy(desFilePt, srcReader)

	if err != nil && err != io.EOF {
		return err
	}

	return nil
}
