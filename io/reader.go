package io

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"io"
	"os"
	"runtime"
	"sqltok/lexer"
	"time"
)

// Source is a named piece of SQL text, usually the content of a file.
type Source struct {
	Name string
	Text string
}

// TokenizedSource is a source together with all of its tokens including the final Eof token.
type TokenizedSource struct {
	Source
	Tokens []lexer.ScannedToken
}

func ReadSource(filename string) (Source, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Source{}, errors.Wrapf(err, "Unable to open SQL input file %s", filename)
	}
	defer file.Close()

	return ReadSourceFrom(filename, file)
}

func ReadSourceFrom(name string, reader io.Reader) (Source, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return Source{}, errors.Wrapf(err, "Unable to read SQL input %s", name)
	}

	sigolo.Debugf("Read %d bytes from %s", len(content), name)
	return Source{Name: name, Text: string(content)}, nil
}

func TokenizeSource(source Source) TokenizedSource {
	return TokenizedSource{
		Source: source,
		Tokens: lexer.New(source.Text).ScanAll(),
	}
}

// ReadSources reads all files concurrently. The result has the order of the given file names. The first file that
// cannot be read aborts the whole operation.
func ReadSources(filenames []string) ([]Source, error) {
	result := make([]Source, len(filenames))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, filename := range filenames {
		g.Go(func() error {
			source, err := ReadSource(filename)
			if err != nil {
				return err
			}
			result[i] = source
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// TokenizeSources tokenizes all sources concurrently, each source with its own lexer. The result has the order of the
// given sources.
func TokenizeSources(sources []Source) []TokenizedSource {
	result := make([]TokenizedSource, len(sources))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, source := range sources {
		g.Go(func() error {
			result[i] = TokenizeSource(source)
			sigolo.Debugf("Found %d token in %s", len(result[i].Tokens), source.Name)
			return nil
		})
	}

	// Tokenizing never fails, the group is only used to bound and await the workers.
	_ = g.Wait()
	return result
}

// TokenizeFiles reads and tokenizes all files, see ReadSources and TokenizeSources.
func TokenizeFiles(filenames []string) ([]TokenizedSource, error) {
	sigolo.Infof("Tokenize %d file(s)", len(filenames))
	startTime := time.Now()

	sources, err := ReadSources(filenames)
	if err != nil {
		return nil, errors.Wrap(err, "Tokenizing files failed")
	}

	result := TokenizeSources(sources)

	sigolo.Debugf("Tokenized %d file(s) in %s", len(filenames), time.Since(startTime))
	return result, nil
}
