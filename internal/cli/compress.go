package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	huffman "github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/bitio"
	"github.com/chronos-tachyon/huffcode/internal/log"
)

func newCompressCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compress <file>",
		Short: "Compress a file into a code table and a bit file",
		Long: `Compress <file> into <base>.code (the code table) and <base>.short (the
encoded bits), where <base> is <file> without its extension.

Examples:
  huffcode compress hamlet.txt
  huffcode compress --config huffcode.yaml hamlet.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.compress(args[0])
			return err
		},
	}
}

// compress writes the code table and bit file for input and returns the
// base path they share.
func (a *app) compress(input string) (string, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read %s", input)
	}

	weights, err := huffman.CountWeights(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	tree, err := huffman.NewTree(weights)
	if err != nil {
		return "", errors.Wrapf(err, "cannot compress %s", input)
	}
	log.Debugf("built %v", tree)
	debugTree(tree)

	base := trimExt(input)
	codePath := base + a.cfg.CodeExt
	shortPath := base + a.cfg.ShortExt

	var table bytes.Buffer
	if _, err := tree.Save(&table); err != nil {
		return "", err
	}
	if err := writeFile(codePath, table.Bytes()); err != nil {
		return "", err
	}

	var payload bytes.Buffer
	bw := bitio.NewWriter(&payload)
	numBits, err := huffman.NewEncoder(tree).EncodeAll(data, bw)
	if err != nil {
		return "", err
	}
	if err := bw.Flush(); err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := bitio.WriteHeader(&out, numBits); err != nil {
		return "", err
	}
	payload.WriteTo(&out)
	if err := writeFile(shortPath, out.Bytes()); err != nil {
		return "", err
	}

	log.Infof("%s: %d bytes -> %d bits (%d symbols), table %s, bits %s",
		input, len(data), numBits, tree.NumLeaves(), codePath, shortPath)
	return base, nil
}

// debugTree logs the shape of tree at debug level.
func debugTree(tree *huffman.Tree) {
	log.Enter()
	defer log.Leave()
	log.Debugf("leaves: %d, internal nodes: %d", tree.NumLeaves(), tree.NumInternal())
	log.Debugf("code lengths: %d .. %d bits", tree.MinDepth(), tree.MaxDepth())
	log.Debugf("root weight: %d", tree.Weight())
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	log.Debugf("wrote %s (%d bytes)", path, len(data))
	return nil
}
