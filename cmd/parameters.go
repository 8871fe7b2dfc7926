/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"bufio"
	"encoding/hex"
	"io"
	"io/ioutil"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/dmt/crypto/hashing"
	"github.com/bbva/dmt/merkle"
)

var (
	ErrMalformedDigest  = errors.New("malformed digest")
	ErrMissingProof     = errors.New("missing proof, use either --proof or --proof-hex")
	ErrHasherMismatch   = errors.New("proof was generated with a different hasher")
	ErrProofNotVerified = errors.New("proof does not verify")
)

// treeInput collects the elements of a tree from the command line: the
// lines of a file followed by inline values. Appended elements are
// inserted one by one after building the tree from the rest.
type treeInput struct {
	input   string
	values  []string
	appends []string
}

func (in *treeInput) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.input, "input", "i", "", "File with one element per line, - for stdin")
	cmd.Flags().StringSliceVar(&in.values, "values", []string{}, "Comma-delimited list of elements")
	cmd.Flags().StringSliceVarP(&in.appends, "append", "a", []string{}, "Comma-delimited list of elements to insert after building the tree")
}

func (in treeInput) elements() ([][]byte, error) {
	var elements [][]byte

	if in.input != "" {
		lines, err := readLines(in.input)
		if err != nil {
			return nil, err
		}
		elements = append(elements, lines...)
	}
	for _, value := range in.values {
		elements = append(elements, []byte(value))
	}

	return elements, nil
}

// buildTree builds the tree from the input and applies the appends. The
// callback, if any, is called with the root after every insertion.
func (in treeInput) buildTree(hasher hashing.TreeHasher, inserted func(index uint64, root hashing.Digest)) (*merkle.Tree, error) {
	elements, err := in.elements()
	if err != nil {
		return nil, err
	}

	tree, err := merkle.NewTree(hasher, elements)
	if err != nil {
		return nil, err
	}

	for _, value := range in.appends {
		root := tree.Insert([]byte(value))
		if inserted != nil {
			inserted(tree.LeafCount()-1, root)
		}
	}

	return tree, nil
}

// readLines returns every line of the file at path as an element,
// without the line terminator. Paths starting with ~ are expanded.
func readLines(path string) ([][]byte, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot expand path %q", path)
		}
		f, err := os.Open(expanded)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot open input file %s", expanded)
		}
		defer f.Close()
		r = f
	}

	var lines [][]byte
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		lines = append(lines, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "cannot read input %s", path)
	}
	return lines, nil
}

// parseDigest decodes a hex digest and checks it has the size of the
// hasher output.
func parseDigest(s string, hasher hashing.TreeHasher) (hashing.Digest, error) {
	digest, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedDigest, "%q is not hexadecimal", s)
	}
	if len(digest) != hasher.Size() {
		return nil, errors.Wrapf(ErrMalformedDigest, "got %d bytes, hasher %s produces %d", len(digest), hasher.ID(), hasher.Size())
	}
	return digest, nil
}

// readProof decodes a msgpack proof either from a file or from its hex
// encoding. Exactly one of both must be given.
func readProof(path, encoded string) (*merkle.Proof, error) {
	var msg []byte
	switch {
	case path != "" && encoded != "":
		return nil, errors.New("use either --proof or --proof-hex, not both")
	case path != "":
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot expand path %q", path)
		}
		msg, err = ioutil.ReadFile(expanded)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read proof file %s", expanded)
		}
	case encoded != "":
		var err error
		msg, err = hex.DecodeString(strings.TrimSpace(encoded))
		if err != nil {
			return nil, errors.Wrap(err, "cannot decode proof")
		}
	default:
		return nil, ErrMissingProof
	}

	var proof merkle.Proof
	if err := proof.Decode(msg); err != nil {
		return nil, errors.Wrap(err, "cannot decode proof")
	}
	return &proof, nil
}
