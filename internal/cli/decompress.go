package cli

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/bitio"
	"github.com/chronos-tachyon/huffcode/internal/log"
)

func newDecompressCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <base>",
		Short: "Rebuild a file from its code table and bit file",
		Long: `Read <base>.code and <base>.short and write the decoded bytes to
<base>.new.  An extension on <base> is ignored.

Examples:
  huffcode decompress hamlet
  huffcode decompress hamlet.short`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.decompress(trimExt(args[0]))
			return err
		},
	}
}

// decompress decodes base's bit file and returns the output path.
func (a *app) decompress(base string) (string, error) {
	codePath := base + a.cfg.CodeExt
	shortPath := base + a.cfg.ShortExt
	newPath := base + a.cfg.NewExt

	tree, err := loadTable(codePath)
	if err != nil {
		return "", err
	}
	log.Debugf("loaded %v", tree)
	debugTree(tree)

	in, err := os.Open(shortPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", shortPath)
	}
	defer in.Close()

	src, err := bitio.ReadHeader(bufio.NewReader(in))
	if err != nil {
		return "", errors.Wrapf(err, "%s", shortPath)
	}
	numBits := src.Remaining()

	out, err := os.Create(newPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", newPath)
	}
	bw := bufio.NewWriter(out)
	n, err := tree.Translate(src, bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(newPath)
		return "", errors.Wrapf(err, "failed to decode %s", shortPath)
	}

	if extra, err := src.Trailing(); err != nil {
		log.Warnf("%s: %v", shortPath, err)
	} else if extra != 0 {
		log.Warnf("%s: %d bytes past the %d-bit payload were ignored", shortPath, extra, numBits)
	}

	log.Infof("%s: %d bits -> %d bytes, output %s", shortPath, numBits, n, newPath)
	return newPath, nil
}

func loadTable(path string) (*huffman.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	tree, err := huffman.Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return tree, nil
}
