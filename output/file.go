package output

import (
	"fmt"
	"io/ioutil"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var reIndexSuffix = regexp.MustCompile(`\.(\d+)$`)

// FileWriter saves a response body for --download.
type FileWriter struct {
	fullPath string
}

// NewFileWriter picks the destination: the --output path, or the last
// segment of the request URL in the working directory.
func NewFileWriter(rawURL string, options *Options) *FileWriter {
	var fullPath string
	if options.OutputFile == "" {
		fullPath = "./" + defaultFilename(rawURL)
	} else {
		fullPath = options.OutputFile
	}

	if !options.Overwrite {
		fullPath = makeNonOverlappingFilename(fullPath)
	}

	return &FileWriter{
		fullPath: fullPath,
	}
}

func defaultFilename(rawURL string) string {
	name := ""
	if u, err := url.Parse(rawURL); err == nil {
		name = path.Base(u.Path)
	}
	if name == "" || name == "/" || name == "." {
		name = "index"
	}
	return name
}

func makeNonOverlappingFilename(path string) string {
	_, err := os.Stat(path)
	if err == nil {
		newPath := reIndexSuffix.ReplaceAllStringFunc(path, func(index string) string {
			i, err := strconv.Atoi(strings.TrimPrefix(index, "."))
			if err != nil {
				panic(err)
			}
			i++
			return fmt.Sprintf(".%d", i)
		})
		if path == newPath {
			path = fmt.Sprintf("%s.%d", path, 1)
		} else {
			path = newPath
		}
		path = makeNonOverlappingFilename(path)
	}
	return path
}

// Write stores data at the chosen path.
func (f *FileWriter) Write(data string) error {
	if err := ioutil.WriteFile(f.fullPath, []byte(data), 0644); err != nil {
		return errors.Wrapf(err, "writing response body to '%s'", f.fullPath)
	}
	return nil
}

func (f *FileWriter) Path() string {
	return f.fullPath
}

func (f *FileWriter) Filename() string {
	return filepath.Base(f.fullPath)
}
