// Command aoskit extracts, decodes, repacks, and encodes AOS archives from
// the command line. It is the thin ambient front-end around internal/aos:
// all format logic lives in the internal packages, this file only walks the
// filesystem and wires flags to them.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kamiyado/aoskit/internal/aos"
)

const toolVersion = "aoskit/0.1"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	cmd := args[0]
	if cmd == "help" {
		usage()
		return 0
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	nodecode := fs.Bool("nodecode", false, "suppress inner script/ABM decoding during extract")
	noencode := fs.Bool("noencode", false, "suppress inner script/ABM encoding during repack")
	include := fs.String("include", "", "glob pattern restricting which files repack/encode picks up")
	// Flags may appear anywhere after the command, including between
	// <input> and <output>, so parsing resumes after each positional.
	var rest []string
	remaining := args[1:]
	for {
		if err := fs.Parse(remaining); err != nil {
			return 1
		}
		remaining = fs.Args()
		if len(remaining) == 0 {
			break
		}
		rest = append(rest, remaining[0])
		remaining = remaining[1:]
	}
	if len(rest) != 2 {
		fmt.Fprintln(os.Stderr, "aoskit: expected <input> <output>")
		usage()
		return 1
	}
	input, output := rest[0], rest[1]

	var err error
	switch cmd {
	case "extract":
		err = doExtract(input, output, !*nodecode)
	case "decode":
		err = doExtract(input, output, true)
	case "repack":
		err = doRepack(input, output, !*noencode, *include)
	case "encode":
		err = doRepack(input, output, true, *include)
	default:
		fmt.Fprintf(os.Stderr, "aoskit: unknown command %q\n", cmd)
		usage()
		return 1
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "aoskit:", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: aoskit <extract|decode|repack|encode|help> <input> [--nodecode|--noencode] [--include PATTERN] <output>")
}

func doExtract(archivePath, outDir string, decode bool) error {
	data, err := os.ReadFile(archivePath)
	if err != nil {
		return fmt.Errorf("reading archive: %w", err)
	}

	files, err := aos.Unpack(data, decode, toolVersion)
	if err != nil {
		return fmt.Errorf("unpacking %s: %w", archivePath, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, f := range files {
		dst := filepath.Join(outDir, filepath.FromSlash(f.Name))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", f.Name, err)
		}
		if err := os.WriteFile(dst, f.Data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		slog.Debug("aoskit: wrote output file", "path", dst, "bytes", len(f.Data))
	}
	return nil
}

func doRepack(inDir, archivePath string, encode bool, includePattern string) error {
	entries, err := walkSorted(inDir, includePattern)
	if err != nil {
		return fmt.Errorf("enumerating %s: %w", inDir, err)
	}

	files := make([]aos.InputFile, 0, len(entries))
	for _, rel := range entries {
		data, err := os.ReadFile(filepath.Join(inDir, rel))
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		files = append(files, aos.InputFile{Name: filepath.ToSlash(rel), Data: data})
	}

	dirPath, err := filepath.Abs(inDir)
	if err != nil {
		dirPath = inDir
	}
	stem := filepath.Base(dirPath)
	out, err := aos.Pack(stem, files, encode)
	if err != nil {
		return fmt.Errorf("packing %s: %w", archivePath, err)
	}

	if err := os.WriteFile(archivePath, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", archivePath, err)
	}
	return nil
}

// walkSorted enumerates the regular files directly inside dir (the AOS
// format has no subdirectory concept, spec.md §3) in a stable, sorted order
// so repack output is reproducible regardless of the host filesystem's
// directory-entry ordering. An includePattern, when set, is matched with
// doublestar against each entry's base name.
func walkSorted(dir, includePattern string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if includePattern != "" {
			matched, err := doublestar.Match(includePattern, e.Name())
			if err != nil {
				return nil, fmt.Errorf("bad --include pattern: %w", err)
			}
			if !matched {
				continue
			}
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, errors.New("no input files matched")
	}
	return names, nil
}
