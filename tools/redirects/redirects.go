// Command redirects patches a linked kernel image so that runtime functions
// annotated with go:redirect-from are routed to their kernel replacements.
//
// The tool scans the kernel sources for annotations, resolves the source and
// destination symbols in the ELF image and writes the address pairs into the
// goruntime redirect table. goruntime.ApplyRedirects installs the jumps at
// boot.
package main

import (
	"bufio"
	"debug/elf"
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// These values must match kernel/goruntime/redirect.go.
	redirectTableSymbol = "/kernel/goruntime.redirectTable"
	redirectTableMagic  = 0x7463657269646572
	redirectSlotSize    = 16
)

type redirect struct {
	src string
	dst string

	srcVMA uint64
	dstVMA uint64
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "[redirects] error: %s\n", err.Error())
	os.Exit(1)
}

// modulePath returns the module path declared in the go.mod file under root.
func modulePath(root string) (string, error) {
	f, err := os.Open(filepath.Join(root, "go.mod"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 2 && fields[0] == "module" {
			return strings.Trim(fields[1], `"`), nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("%s: missing module directive", f.Name())
}

func collectGoFiles(root string) ([]string, error) {
	var goFiles []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		if filepath.Ext(path) == ".go" && !strings.HasSuffix(path, "_test.go") {
			goFiles = append(goFiles, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return goFiles, nil
}

// findRedirects parses the Go files found under root/kernel and returns one
// redirect for every function annotated with go:redirect-from.
func findRedirects(root, modPath string) ([]*redirect, error) {
	goFiles, err := collectGoFiles(filepath.Join(root, "kernel"))
	if err != nil {
		return nil, err
	}

	var redirects []*redirect
	for _, goFile := range goFiles {
		fset := token.NewFileSet()

		f, err := parser.ParseFile(fset, goFile, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", goFile, err)
		}

		relDir, err := filepath.Rel(root, filepath.Dir(goFile))
		if err != nil {
			return nil, err
		}

		for _, decl := range f.Decls {
			fnDecl, ok := decl.(*ast.FuncDecl)
			if !ok || fnDecl.Doc == nil {
				continue
			}

			for _, comment := range fnDecl.Doc.List {
				if !strings.Contains(comment.Text, "go:redirect-from") {
					continue
				}

				// build qualified name to fn
				fqName := fmt.Sprintf("%s/%s.%s", modPath, filepath.ToSlash(relDir), fnDecl.Name.Name)

				fields := strings.Fields(comment.Text)
				if len(fields) != 2 || fields[0] != "//go:redirect-from" {
					return nil, fmt.Errorf("malformed go:redirect-from syntax for %q", fqName)
				}

				redirects = append(redirects, &redirect{
					src: fields[1],
					dst: fqName,
				})
			}
		}
	}

	return redirects, nil
}

// resolveSymbols fills in the addresses of the redirect sources and
// destinations and returns the file offset of the redirect table.
func resolveSymbols(f *elf.File, redirects []*redirect, tableSymbol string) (int64, error) {
	symbols, err := f.Symbols()
	if err != nil {
		return 0, err
	}

	var table *elf.Symbol
	for i, symbol := range symbols {
		if symbol.Name == tableSymbol {
			table = &symbols[i]
		}

		for _, redirect := range redirects {
			if symbol.Name == redirect.src {
				redirect.srcVMA = symbol.Value
			}
			if symbol.Name == redirect.dst {
				redirect.dstVMA = symbol.Value
			}
		}
	}

	for _, redirect := range redirects {
		switch {
		case redirect.srcVMA == 0:
			return 0, fmt.Errorf("could not locate address of %q", redirect.src)
		case redirect.dstVMA == 0:
			return 0, fmt.Errorf("could not locate address of %q", redirect.dst)
		}
	}

	if table == nil {
		return 0, fmt.Errorf("could not locate %q", tableSymbol)
	}

	if int(table.Section) >= len(f.Sections) {
		return 0, fmt.Errorf("%q is not defined in a section", tableSymbol)
	}

	section := f.Sections[table.Section]
	if section.Type != elf.SHT_PROGBITS {
		return 0, fmt.Errorf("%q is stored in section %s which has no file contents", tableSymbol, section.Name)
	}

	return int64(section.Offset + (table.Value - section.Addr)), nil
}

// writeRedirectTable verifies the table header at offset and writes the
// redirect pairs into the slots that follow it.
func writeRedirectTable(rw io.ReadWriteSeeker, offset int64, redirects []*redirect) error {
	if _, err := rw.Seek(offset, io.SeekStart); err != nil {
		return err
	}

	var header [2]uint64
	if err := binary.Read(rw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("reading redirect table header: %w", err)
	}

	switch {
	case header[0] != redirectTableMagic:
		return errors.New("redirect table header has an unexpected magic value")
	case uint64(len(redirects)) > header[1]:
		return fmt.Errorf("redirect table holds %d entries; %d redirects found", header[1], len(redirects))
	}

	if _, err := rw.Seek(offset+redirectSlotSize, io.SeekStart); err != nil {
		return err
	}

	for _, redirect := range redirects {
		if err := binary.Write(rw, binary.LittleEndian, [2]uint64{redirect.srcVMA, redirect.dstVMA}); err != nil {
			return err
		}
	}

	return nil
}

func populateTable(imgFile string, redirects []*redirect, tableSymbol string) error {
	ef, err := elf.Open(imgFile)
	if err != nil {
		return err
	}

	offset, err := resolveSymbols(ef, redirects, tableSymbol)
	ef.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", imgFile, err)
	}

	f, err := os.OpenFile(imgFile, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeRedirectTable(f, offset, redirects)
}

func runTool() error {
	root := flag.String("root", ".", "the module root containing go.mod and the kernel sources")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, "redirects: install go:redirect-from targets into a kernel image\n\n")
		fmt.Fprint(os.Stderr, "Usage: redirects [options] count | populate-table kernel.elf\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		return errors.New("missing command")
	}

	cmd := flag.Arg(0)
	var imgFile string
	switch cmd {
	case "count":
	case "populate-table":
		if flag.NArg() != 2 {
			return errors.New("populate-table requires the path to the kernel image as an argument")
		}
		imgFile = flag.Arg(1)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	modPath, err := modulePath(*root)
	if err != nil {
		return err
	}

	redirects, err := findRedirects(*root, modPath)
	if err != nil {
		return err
	}

	if cmd == "count" {
		fmt.Printf("%d\n", len(redirects))
		return nil
	}

	return populateTable(imgFile, redirects, modPath+redirectTableSymbol)
}

func main() {
	if err := runTool(); err != nil {
		exit(err)
	}
}
